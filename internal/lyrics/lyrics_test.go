package lyrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) *Resolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewResolver(srv.URL, 2*time.Second)
}

func lyricsHandler(known map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artist, _ := url.PathUnescape(r.URL.Path[1:])
		text, ok := known[artist]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":"No lyrics found"}`)
			return
		}
		fmt.Fprintf(w, `{"lyrics":%q}`, text)
	}
}

func TestSearchDirectHit(t *testing.T) {
	r := newTestResolver(t, lyricsHandler(map[string]string{
		"Queen/Under Pressure": "Pressure pushing down on me",
	}))

	got, err := r.Search(context.Background(), "Queen", "Under Pressure")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	want := "Queen - Under Pressure\n\nPressure pushing down on me"
	if got != want {
		t.Errorf("Search() = %q, want %q", got, want)
	}
}

func TestSearchFallsBackToFirstCommaSegment(t *testing.T) {
	var paths []string
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		p, _ := url.PathUnescape(req.URL.Path[1:])
		paths = append(paths, p)
		if p == "Queen/Under Pressure" {
			fmt.Fprint(w, `{"lyrics":"Pressure"}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	got, err := r.Search(context.Background(), "Queen, David Bowie", "Under Pressure")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	// Header keeps the original artist even when a fallback candidate hit.
	want := "Queen, David Bowie - Under Pressure\n\nPressure"
	if got != want {
		t.Errorf("Search() = %q, want %q", got, want)
	}
	if len(paths) != 2 || paths[0] != "Queen, David Bowie/Under Pressure" {
		t.Errorf("unexpected request order: %v", paths)
	}
}

func TestSearchFallsBackToCatchAllArtists(t *testing.T) {
	r := newTestResolver(t, lyricsHandler(map[string]string{
		"Various Artists/Happy Birthday": "Happy birthday to you",
	}))

	got, err := r.Search(context.Background(), "Unknown Artist", "Happy Birthday")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	want := "Unknown Artist - Happy Birthday\n\nHappy birthday to you"
	if got != want {
		t.Errorf("Search() = %q, want %q", got, want)
	}
}

func TestSearchAllMisses(t *testing.T) {
	var requests int
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := r.Search(context.Background(), "Queen, David Bowie", "Nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Search() error = %v, want ErrNotFound", err)
	}
	// Full chain, minus nothing: artist, comma segment, title, 4 catch-alls.
	if requests != 7 {
		t.Errorf("requests = %d, want 7", requests)
	}
}

func TestSearchSkipsDuplicateCandidates(t *testing.T) {
	var requests int
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := r.Search(context.Background(), "Popular", "Popular")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Search() error = %v, want ErrNotFound", err)
	}
	// "Popular" covers the artist, the title candidate and one catch-all.
	if requests != 4 {
		t.Errorf("requests = %d, want 4", requests)
	}
}

func TestSearchCollapsesBlankLines(t *testing.T) {
	r := newTestResolver(t, lyricsHandler(map[string]string{
		"Queen/Song": "line one\n\n\n\nline two\n\n",
	}))

	got, err := r.Search(context.Background(), "Queen", "Song")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	want := "Queen - Song\n\nline one\n\nline two"
	if got != want {
		t.Errorf("Search() = %q, want %q", got, want)
	}
}

func TestSearchTreatsBadPayloadAsMiss(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"lyrics":`},
		{name: "empty lyrics", body: `{"lyrics":""}`},
		{name: "whitespace lyrics", body: `{"lyrics":"\n\n  \n"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, tc.body)
			})

			_, err := r.Search(context.Background(), "Queen", "Song")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Search() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestSearchHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		cancel()
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := r.Search(ctx, "Queen", "Song")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Search() error = %v, want context.Canceled", err)
	}
}

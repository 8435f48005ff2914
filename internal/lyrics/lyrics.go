// Package lyrics fetches song lyrics from the lyrics.ovh API. The API is
// strict about artist names, so a single lookup rarely succeeds for tracks
// whose metadata came out of a video title. The resolver therefore walks a
// fixed chain of artist candidates and returns the first hit.
package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/thomasboyle/jackybot/pkg/retrylimit"
)

// ErrNotFound is returned when every candidate lookup missed.
var ErrNotFound = errors.New("no lyrics found for the given track")

var multiNewlineRegex = regexp.MustCompile(`\n{3,}`)

// Fallback artists tried after the track's own metadata is exhausted.
// They match the catch-all credits the API files many songs under.
var fallbackArtists = []string{"Various Artists", "Various", "Classic", "Popular"}

type Resolver struct {
	BaseURL string
	Client  *http.Client

	limiter *retrylimit.AdaptiveLimiter
}

func NewResolver(baseURL string, timeout time.Duration) *Resolver {
	return &Resolver{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: timeout,
		},
		limiter: retrylimit.NewAdaptiveLimiter(4, 1, 8, 1, 0.5),
	}
}

// Search resolves lyrics for the given artist and title. Candidates are
// tried in order until one lookup succeeds:
//
//  1. the artist as given
//  2. the segment before the artist's first comma
//  3. the title itself as the artist
//  4. each catch-all fallback artist
//
// The returned text carries an "Artist - Title" header and has runs of
// blank lines collapsed. A transport error, a non-200 status, a malformed
// response or an empty lyrics field all count as a miss for that candidate.
func (r *Resolver) Search(ctx context.Context, artist, title string) (string, error) {
	candidates := make([]string, 0, 3+len(fallbackArtists))
	candidates = append(candidates, artist)
	if first, _, found := strings.Cut(artist, ","); found {
		candidates = append(candidates, strings.TrimSpace(first))
	}
	candidates = append(candidates, title)
	candidates = append(candidates, fallbackArtists...)

	tried := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		if candidate == "" || tried[candidate] {
			continue
		}
		tried[candidate] = true

		text, err := r.fetch(ctx, candidate, title)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			continue
		}
		return fmt.Sprintf("%s - %s\n\n%s", artist, title, text), nil
	}

	return "", ErrNotFound
}

func (r *Resolver) fetch(ctx context.Context, artist, title string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}

	reqURL := fmt.Sprintf("%s/%s/%s", r.BaseURL, url.PathEscape(artist), url.PathEscape(title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "JackyBot/1.0")

	resp, err := r.Client.Do(req)
	if err != nil {
		r.limiter.Observe(err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := &retrylimit.StatusError{Code: resp.StatusCode}
		r.limiter.Observe(statusErr)
		return "", fmt.Errorf("lyrics lookup failed with status code %v", resp.StatusCode)
	}
	r.limiter.Observe(nil)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var payload struct {
		Lyrics string `json:"lyrics"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", err
	}

	text := multiNewlineRegex.ReplaceAllString(payload.Lyrics, "\n\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("empty lyrics in response")
	}
	return text, nil
}

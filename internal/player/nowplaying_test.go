package player

import (
	"strings"
	"testing"

	"github.com/thomasboyle/jackybot/internal/metadata"
)

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		current int64
		total   int64
		want    string
	}{
		{
			name:    "zero total renders empty",
			current: 0,
			total:   0,
			want:    strings.Repeat("░", 20) + " 0%",
		},
		{
			name:    "start of track",
			current: 0,
			total:   100000,
			want:    strings.Repeat("░", 20) + " 0%",
		},
		{
			name:    "halfway",
			current: 50000,
			total:   100000,
			want:    strings.Repeat("▓", 10) + strings.Repeat("░", 10) + " 50%",
		},
		{
			name:    "complete",
			current: 100000,
			total:   100000,
			want:    strings.Repeat("▓", 20) + " 100%",
		},
		{
			name:    "position past total clamps",
			current: 150000,
			total:   100000,
			want:    strings.Repeat("▓", 20) + " 100%",
		},
		{
			name:    "negative position clamps",
			current: -5,
			total:   100000,
			want:    strings.Repeat("░", 20) + " 0%",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RenderProgressBar(tc.current, tc.total); got != tc.want {
				t.Errorf("RenderProgressBar(%d, %d) = %q, want %q", tc.current, tc.total, got, tc.want)
			}
		})
	}
}

func TestNowPlayingEmbedStatus(t *testing.T) {
	track := metadata.Track{
		Artist:     "Queen",
		Title:      "Under Pressure",
		DurationMS: 240000,
		ArtworkURL: "https://img.youtube.com/vi/abc/maxresdefault.jpg",
	}

	playing := NowPlayingEmbed(track, 60000, false, false, "alice")
	if playing.Color != ColorPlaying {
		t.Errorf("playing color = %#x, want %#x", playing.Color, ColorPlaying)
	}
	if !strings.Contains(playing.Title, "Playing") {
		t.Errorf("playing title = %q", playing.Title)
	}
	if playing.Footer == nil || !strings.Contains(playing.Footer.Text, "alice") {
		t.Error("requester footer missing")
	}

	paused := NowPlayingEmbed(track, 60000, true, true, "")
	if paused.Color != ColorPaused {
		t.Errorf("paused color = %#x, want %#x", paused.Color, ColorPaused)
	}
	if !strings.Contains(paused.Title, "Paused") {
		t.Errorf("paused title = %q", paused.Title)
	}
	if paused.Footer != nil {
		t.Error("footer present without requester")
	}

	var loopField string
	for _, f := range paused.Fields {
		if f.Name == "Loop" {
			loopField = f.Value
		}
	}
	if loopField != "On" {
		t.Errorf("loop field = %q, want \"On\"", loopField)
	}
}

func TestControlRowsLayout(t *testing.T) {
	track := metadata.Track{Artist: "Queen", Title: "Under Pressure"}

	rows := ControlRows(track)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
}

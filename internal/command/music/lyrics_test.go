package music

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLyricsEmbedPreviewTruncation(t *testing.T) {
	// The leading byte shifts every two-byte rune onto an odd offset, so a
	// naive byte cut at the limit would land mid-rune.
	text := "a" + strings.Repeat("é", lyricsPreviewLimit)

	e := lyricsEmbed("Artist - Song - Lyrics.txt", text)

	if !utf8.ValidString(e.Description) {
		t.Error("truncated preview is not valid UTF-8")
	}
	if !strings.HasSuffix(e.Description, "…") {
		t.Error("truncated preview is missing the ellipsis marker")
	}
	if got := len(e.Description); got > lyricsPreviewLimit+len("…") {
		t.Errorf("preview is %d bytes, want at most %d", got, lyricsPreviewLimit+len("…"))
	}
	if e.Title != "📜 Artist - Song" {
		t.Errorf("embed title = %q, want %q", e.Title, "📜 Artist - Song")
	}
}

func TestLyricsEmbedShortTextKeptWhole(t *testing.T) {
	text := "Verse one\n\nVerse two"

	e := lyricsEmbed("Artist - Song - Lyrics.txt", text)

	if e.Description != text {
		t.Errorf("short lyrics were altered: %q", e.Description)
	}
}

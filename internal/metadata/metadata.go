// Package metadata recovers display metadata (artist, title, duration,
// artwork) from the audio backend's track objects. Backends frequently
// deliver everything mashed into the title ("Artist - Song (Official Video)"),
// so a heuristic parser recovers the artist when the author field is missing.
package metadata

import (
	"regexp"
	"strings"

	"github.com/disgoorg/disgolink/v3/lavalink"
)

const (
	UnknownArtist = "Unknown Artist"
	UnknownTitle  = "Unknown Title"
)

var (
	bracketRegexp    = regexp.MustCompile(`[\[\(\{].*?[\]\)\}]`)
	whitespaceRegexp = regexp.MustCompile(`\s+`)
	youtubeIDRegexp  = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)([a-zA-Z0-9_-]{11})`)
)

// Separators between artist and title, checked in priority order.
// The dash variants are distinct separators; plain hyphen wins over
// en-dash and em-dash.
var separators = []string{" - ", " – ", " — ", " | ", " : "}

// Track is the ephemeral display metadata derived from a playable item.
// It is recomputed on demand and never stored.
type Track struct {
	Artist     string
	Title      string
	DurationMS int64
	ArtworkURL string
	SourceURL  string
}

// FromLavalink derives display metadata from a backend track.
func FromLavalink(track lavalink.Track) Track {
	info := track.Info

	artist, title := ResolveArtistTitle(info.Author, info.Title)

	t := Track{
		Artist:     artist,
		Title:      title,
		DurationMS: info.Length.Milliseconds(),
	}
	if info.URI != nil {
		t.SourceURL = *info.URI
	}
	if info.ArtworkURL != nil {
		t.ArtworkURL = *info.ArtworkURL
	} else if thumb := YouTubeThumbnail(t.SourceURL); thumb != "" {
		t.ArtworkURL = thumb
	}
	return t
}

// ResolveArtistTitle returns the best-effort (artist, title) pair for a track.
// A known, non-sentinel artist is trusted as-is; otherwise the raw title is
// parsed heuristically.
func ResolveArtistTitle(knownArtist, rawTitle string) (string, string) {
	if rawTitle == "" {
		rawTitle = UnknownTitle
	}
	if knownArtist != "" && knownArtist != UnknownArtist {
		return knownArtist, rawTitle
	}
	return ParseArtistTitle(rawTitle)
}

// ParseArtistTitle splits a raw title like "Artist - Song (Official Video)"
// into an (artist, title) pair.
//
// Bracketed annotations are stripped and whitespace collapsed first. The
// cleaned string is then split on the first separator found, in priority
// order. A split is plausible as "Artist - Title" when both sides are
// non-empty, the left side is shorter than 40 characters, the right side is
// shorter than 100, and the left side has no comma (a comma usually marks a
// multi-artist credit list, not a leading artist). An implausible split still
// uses the same cut but swaps the roles. Without any separator the whole
// cleaned string is the title.
func ParseArtistTitle(raw string) (string, string) {
	cleaned := bracketRegexp.ReplaceAllString(raw, "")
	cleaned = whitespaceRegexp.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	for _, sep := range separators {
		left, right, found := strings.Cut(cleaned, sep)
		if !found {
			continue
		}

		left = strings.TrimSpace(left)
		right = strings.TrimSpace(right)

		plausible := left != "" && right != "" &&
			len(left) < 40 && len(right) < 100 &&
			!strings.Contains(left, ",")

		if plausible {
			return left, right
		}
		return right, left
	}

	return UnknownArtist, cleaned
}

// YouTubeThumbnail derives the max-resolution thumbnail URL from a YouTube
// watch URL, or returns "" when the URL is not recognizably YouTube.
func YouTubeThumbnail(url string) string {
	m := youtubeIDRegexp.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return "https://img.youtube.com/vi/" + m[1] + "/maxresdefault.jpg"
}

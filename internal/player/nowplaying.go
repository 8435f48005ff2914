package player

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/thomasboyle/jackybot/internal/metadata"
	"github.com/thomasboyle/jackybot/pkg/util"
)

const (
	ColorPlaying = 0x57F287
	ColorPaused  = 0xFEE75C
	ColorNeutral = 0x5865F2
)

const progressBarWidth = 20

// Control row custom IDs. The component dispatcher routes on ButtonPrefix.
const (
	ButtonPrefix = "np_"

	ButtonBack    = "np_back"
	ButtonPause   = "np_pause"
	ButtonForward = "np_fwd"
	ButtonSkip    = "np_skip"
	ButtonLoop    = "np_loop"
	ButtonLyrics  = "np_lyrics"
	ButtonSpotify = "np_spotify"
	ButtonYouTube = "np_youtube"
	ButtonQueue   = "np_queue"
)

// RenderProgressBar draws a fixed-width playback bar with a percentage.
// A zero total renders as empty rather than dividing by it.
func RenderProgressBar(currentMS, totalMS int64) string {
	if currentMS < 0 {
		currentMS = 0
	}
	if totalMS <= 0 {
		return strings.Repeat("░", progressBarWidth) + " 0%"
	}
	if currentMS > totalMS {
		currentMS = totalMS
	}

	filled := int(currentMS * progressBarWidth / totalMS)
	percent := currentMS * 100 / totalMS

	return strings.Repeat("▓", filled) +
		strings.Repeat("░", progressBarWidth-filled) +
		fmt.Sprintf(" %d%%", percent)
}

// NowPlayingEmbed renders the live status embed for the current track.
func NowPlayingEmbed(track metadata.Track, positionMS int64, paused, loop bool, requester string) *discordgo.MessageEmbed {
	color := ColorPlaying
	status := "Playing"
	if paused {
		color = ColorPaused
		status = "Paused"
	}

	loopState := "Off"
	if loop {
		loopState = "On"
	}

	e := embed.NewEmbed().
		SetTitle(fmt.Sprintf("🎶 %s", status)).
		SetDescription(fmt.Sprintf("**%s**\n%s", track.Title, track.Artist)).
		SetColor(color).
		AddField("Duration", fmt.Sprintf("%s / %s",
			util.FormatTrackDuration(positionMS),
			util.FormatTrackDuration(track.DurationMS))).
		AddField("Loop", loopState).
		AddField("Progress", RenderProgressBar(positionMS, track.DurationMS))

	if track.ArtworkURL != "" {
		e = e.SetImage(track.ArtworkURL)
	}
	if requester != "" {
		e = e.SetFooter(fmt.Sprintf("Requested by %s", requester))
	}

	return e.MessageEmbed
}

// ControlRows builds the two button rows attached to the now-playing
// message. Spotify and YouTube are link buttons prefilled with a search for
// the current track.
func ControlRows(track metadata.Track) []discordgo.MessageComponent {
	searchTerm := url.QueryEscape(track.Artist + " " + track.Title)

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Emoji:    &discordgo.ComponentEmoji{Name: "⏪"},
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonBack,
				},
				discordgo.Button{
					Emoji:    &discordgo.ComponentEmoji{Name: "⏯"},
					Style:    discordgo.PrimaryButton,
					CustomID: ButtonPause,
				},
				discordgo.Button{
					Emoji:    &discordgo.ComponentEmoji{Name: "⏩"},
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonForward,
				},
				discordgo.Button{
					Emoji:    &discordgo.ComponentEmoji{Name: "⏭️"},
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonSkip,
				},
				discordgo.Button{
					Emoji:    &discordgo.ComponentEmoji{Name: "🔁"},
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonLoop,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Emoji:    &discordgo.ComponentEmoji{Name: "📜"},
					Label:    "Lyrics",
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonLyrics,
				},
				discordgo.Button{
					Label: "Spotify",
					Style: discordgo.LinkButton,
					URL:   "https://open.spotify.com/search/" + searchTerm,
				},
				discordgo.Button{
					Label: "YouTube",
					Style: discordgo.LinkButton,
					URL:   "https://www.youtube.com/results?search_query=" + searchTerm,
				},
				discordgo.Button{
					Emoji:    &discordgo.ComponentEmoji{Name: "📋"},
					Label:    "Queue",
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonQueue,
				},
			},
		},
	}
}

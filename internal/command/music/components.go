package music

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/thomasboyle/jackybot/internal/core"
	"github.com/thomasboyle/jackybot/internal/player"
	"github.com/thomasboyle/jackybot/pkg/util"
)

const buttonSeekStepSeconds = 10

// ControlsComponent handles the button row under the now-playing message.
// It is never invoked as a command; only its Component hook is used.
type ControlsComponent struct{}

func (c *ControlsComponent) Name() string        { return "np-controls" }
func (c *ControlsComponent) Description() string { return "Now-playing button controls" }
func (c *ControlsComponent) Aliases() []string   { return []string{} }

func (c *ControlsComponent) Run(ctx interface{}) error {
	return fmt.Errorf("np-controls is component-only")
}

func (c *ControlsComponent) Component(ctx *core.ComponentInteractionContext) error {
	s := ctx.Session
	e := ctx.Event
	p := ctx.Player
	guildID := e.GuildID

	customID := e.MessageComponentData().CustomID

	switch customID {
	case player.ButtonBack:
		posMS, lengthMS, err := p.SeekBy(context.Background(), guildID, -buttonSeekStepSeconds)
		if err != nil {
			return core.RespondEphemeral(s, e, errorText(err))
		}
		return core.RespondEphemeral(s, e, fmt.Sprintf("⏪ Position: %s / %s",
			util.FormatTrackDuration(posMS), util.FormatTrackDuration(lengthMS)))

	case player.ButtonForward:
		posMS, lengthMS, err := p.SeekBy(context.Background(), guildID, buttonSeekStepSeconds)
		if err != nil {
			return core.RespondEphemeral(s, e, errorText(err))
		}
		return core.RespondEphemeral(s, e, fmt.Sprintf("⏩ Position: %s / %s",
			util.FormatTrackDuration(posMS), util.FormatTrackDuration(lengthMS)))

	case player.ButtonPause:
		paused, err := p.TogglePause(context.Background(), guildID)
		if err != nil {
			return core.RespondEphemeral(s, e, errorText(err))
		}
		if paused {
			return core.RespondEphemeral(s, e, "⏸️ Paused")
		}
		return core.RespondEphemeral(s, e, "▶️ Resumed")

	case player.ButtonSkip:
		skipped, err := p.Skip(context.Background(), guildID)
		if err != nil {
			return core.RespondEphemeral(s, e, errorText(err))
		}
		return core.RespondEphemeral(s, e, fmt.Sprintf("⏭️ Skipped **%s**", skipped.Title))

	case player.ButtonLoop:
		loop, err := p.ToggleLoop(guildID)
		if err != nil {
			return core.RespondEphemeral(s, e, errorText(err))
		}
		if loop {
			return core.RespondEphemeral(s, e, "🔁 Loop enabled")
		}
		return core.RespondEphemeral(s, e, "🔁 Loop disabled")

	case player.ButtonLyrics:
		if err := core.DeferEphemeral(s, e); err != nil {
			return err
		}
		fileName, text, err := p.Lyrics(context.Background(), guildID)
		if err != nil {
			return core.FollowupEphemeral(s, e, errorText(err))
		}
		return core.FollowupFileEphemeral(s, e, lyricsEmbed(fileName, text), &discordgo.File{
			Name:        fileName,
			ContentType: "text/plain",
			Reader:      strings.NewReader(text),
		})

	case player.ButtonQueue:
		queueEmbed, err := buildQueueEmbed(p, guildID)
		if err != nil {
			return core.RespondEphemeral(s, e, errorText(err))
		}
		return core.RespondEmbedEphemeral(s, e, queueEmbed)
	}

	return core.RespondEphemeral(s, e, "🎵 Unknown control.")
}

func init() {
	core.RegisterCommand(&ControlsComponent{})
}

// Package music implements the playback command surface: thirteen commands
// reachable both as slash commands and as prefix messages, plus the button
// controls attached to the now-playing message.
package music

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/thomasboyle/jackybot/internal/core"
	"github.com/thomasboyle/jackybot/internal/lyrics"
	"github.com/thomasboyle/jackybot/internal/player"
	"github.com/thomasboyle/jackybot/internal/session"
)

// invocation folds the slash and prefix entry paths into one shape so each
// command has a single handler body.
type invocation struct {
	session   *discordgo.Session
	player    *player.Orchestrator
	guildID   string
	channelID string
	userID    string
	username  string

	args        []string
	interaction *discordgo.InteractionCreate
	deferred    bool
}

func newInvocation(ctx interface{}) (*invocation, error) {
	switch v := ctx.(type) {
	case *core.SlashInteractionContext:
		user := v.Event.Member.User
		name := user.Username
		if user.GlobalName != "" {
			name = user.GlobalName
		}
		return &invocation{
			session:     v.Session,
			player:      v.Player,
			guildID:     v.Event.GuildID,
			channelID:   v.Event.ChannelID,
			userID:      user.ID,
			username:    name,
			interaction: v.Event,
		}, nil
	case *core.MessageContext:
		user := v.Event.Author
		name := user.Username
		if user.GlobalName != "" {
			name = user.GlobalName
		}
		return &invocation{
			session:   v.Session,
			player:    v.Player,
			guildID:   v.Event.GuildID,
			channelID: v.Event.ChannelID,
			userID:    user.ID,
			username:  name,
			args:      v.Args,
		}, nil
	default:
		return nil, fmt.Errorf("wrong context type")
	}
}

// deferReply acknowledges a slash interaction before slow work. No-op on the
// message path.
func (inv *invocation) deferReply() error {
	if inv.interaction == nil {
		return nil
	}
	inv.deferred = true
	return core.Defer(inv.session, inv.interaction)
}

// deferReplyEphemeral is the ephemeral variant, for replies only the caller
// should see.
func (inv *invocation) deferReplyEphemeral() error {
	if inv.interaction == nil {
		return nil
	}
	inv.deferred = true
	return core.DeferEphemeral(inv.session, inv.interaction)
}

func (inv *invocation) reply(content string) error {
	if inv.interaction == nil {
		return core.MessageRespond(inv.session, inv.channelID, content)
	}
	if inv.deferred {
		return core.FollowupEphemeral(inv.session, inv.interaction, content)
	}
	return core.Respond(inv.session, inv.interaction, content)
}

func (inv *invocation) replyEphemeral(content string) error {
	if inv.interaction == nil {
		return core.MessageRespond(inv.session, inv.channelID, content)
	}
	if inv.deferred {
		return core.FollowupEphemeral(inv.session, inv.interaction, content)
	}
	return core.RespondEphemeral(inv.session, inv.interaction, content)
}

func (inv *invocation) replyFile(embed *discordgo.MessageEmbed, file *discordgo.File) error {
	if inv.interaction == nil {
		_, err := inv.session.ChannelMessageSendComplex(inv.channelID, &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{embed},
			Files:  []*discordgo.File{file},
		})
		return err
	}
	return core.FollowupFileEphemeral(inv.session, inv.interaction, embed, file)
}

func (inv *invocation) replyEmbed(embed *discordgo.MessageEmbed) error {
	if inv.interaction == nil {
		return core.MessageRespondEmbed(inv.session, inv.channelID, embed)
	}
	return core.RespondEmbedEphemeral(inv.session, inv.interaction, embed)
}

// stringOption reads a slash option, or the joined prefix arguments.
func (inv *invocation) stringOption(name string) string {
	if inv.interaction == nil {
		return strings.TrimSpace(strings.Join(inv.args, " "))
	}
	for _, opt := range inv.interaction.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// intOption reads an integer slash option, or the first prefix argument.
func (inv *invocation) intOption(name string) (int, bool) {
	if inv.interaction == nil {
		if len(inv.args) == 0 {
			return 0, false
		}
		n, err := strconv.Atoi(inv.args[0])
		if err != nil {
			return 0, false
		}
		return n, true
	}
	for _, opt := range inv.interaction.ApplicationCommandData().Options {
		if opt.Name == name {
			return int(opt.IntValue()), true
		}
	}
	return 0, false
}

// errorText converts playback errors into the user-facing message.
func errorText(err error) string {
	switch {
	case errors.Is(err, player.ErrEmptyQuery):
		return "🎵 Give me something to play."
	case errors.Is(err, player.ErrBackendUnavailable):
		return "🎵 The audio backend is unavailable right now. Try again shortly."
	case errors.Is(err, player.ErrNotInVoice):
		return "🎵 You need to be in a voice channel first."
	case errors.Is(err, player.ErrNoResults):
		return "🎵 No results found."
	case errors.Is(err, player.ErrNoTrackPlaying):
		return "🎵 Nothing is playing right now."
	case errors.Is(err, player.ErrNoSession):
		return "🎵 Nothing has been played here yet."
	case errors.Is(err, player.ErrInvalidIndex):
		return "🎵 There is no track at that position."
	case errors.Is(err, session.ErrVolumeRange):
		return "🎵 Volume must be between 0 and 100."
	case errors.Is(err, lyrics.ErrNotFound):
		return "🎵 No lyrics found for this track."
	default:
		return fmt.Sprintf("🎵 Error: %v", err)
	}
}

func register(cmd core.Command) {
	core.RegisterCommand(
		core.ApplyMiddlewares(cmd,
			core.WithCommandLogger(),
			core.WithGuildOnly(),
		),
	)
}

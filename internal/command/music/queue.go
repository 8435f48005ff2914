package music

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/thomasboyle/jackybot/internal/core"
	"github.com/thomasboyle/jackybot/internal/metadata"
	"github.com/thomasboyle/jackybot/internal/player"
	"github.com/thomasboyle/jackybot/pkg/util"
)

const queuePageSize = 10

type QueueCommand struct{}

func (c *QueueCommand) Name() string        { return "queue" }
func (c *QueueCommand) Description() string { return "Show the upcoming tracks" }
func (c *QueueCommand) Aliases() []string   { return []string{"q"} }

func (c *QueueCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *QueueCommand) Run(ctx interface{}) error {
	inv, err := newInvocation(ctx)
	if err != nil {
		return err
	}

	queueEmbed, err := buildQueueEmbed(inv.player, inv.guildID)
	if err != nil {
		return inv.replyEphemeral(errorText(err))
	}
	return inv.replyEmbed(queueEmbed)
}

// buildQueueEmbed renders the first page of the queue. Shared with the
// queue button on the now-playing message.
func buildQueueEmbed(p *player.Orchestrator, guildID string) (*discordgo.MessageEmbed, error) {
	tracks, err := p.Queue(guildID)
	if err != nil {
		return nil, err
	}

	e := embed.NewEmbed().
		SetTitle("📋 Queue").
		SetColor(core.EmbedColor)

	if np, err := p.NowPlaying(guildID); err == nil {
		e = e.AddField("Now playing", fmt.Sprintf("%s - %s", np.Track.Artist, np.Track.Title))
	}

	if len(tracks) == 0 {
		return e.SetDescription("The queue is empty.").MessageEmbed, nil
	}

	shown := tracks
	if len(shown) > queuePageSize {
		shown = shown[:queuePageSize]
	}

	var lines []string
	for i, t := range shown {
		meta := metadata.FromLavalink(t)
		lines = append(lines, fmt.Sprintf("%d. %s - %s [%s]",
			i+1, meta.Artist, meta.Title, util.FormatTrackDuration(meta.DurationMS)))
	}

	e = e.SetDescription(strings.Join(lines, "\n")).
		SetFooter(fmt.Sprintf("Showing %d of %d tracks", len(shown), len(tracks)))
	return e.MessageEmbed, nil
}

func init() {
	register(&QueueCommand{})
}

package music

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/thomasboyle/jackybot/pkg/util"
)

type SeekCommand struct{}

func (c *SeekCommand) Name() string        { return "seek" }
func (c *SeekCommand) Description() string { return "Move the position by a number of seconds" }
func (c *SeekCommand) Aliases() []string   { return []string{} }

func (c *SeekCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "seconds",
				Description: "Seconds to jump, negative to rewind",
				Required:    true,
			},
		},
	}
}

func (c *SeekCommand) Run(ctx interface{}) error {
	inv, err := newInvocation(ctx)
	if err != nil {
		return err
	}

	seconds, ok := inv.intOption("seconds")
	if !ok {
		return inv.replyEphemeral("🎵 Usage: seek <±seconds>")
	}

	posMS, lengthMS, err := inv.player.SeekBy(context.Background(), inv.guildID, seconds)
	if err != nil {
		return inv.replyEphemeral(errorText(err))
	}
	return inv.reply(fmt.Sprintf("⏩ Position: %s / %s",
		util.FormatTrackDuration(posMS), util.FormatTrackDuration(lengthMS)))
}

func init() {
	register(&SeekCommand{})
}

package music

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type SkipCommand struct{}

func (c *SkipCommand) Name() string        { return "skip" }
func (c *SkipCommand) Description() string { return "Skip the current track" }
func (c *SkipCommand) Aliases() []string   { return []string{"s", "next"} }

func (c *SkipCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *SkipCommand) Run(ctx interface{}) error {
	inv, err := newInvocation(ctx)
	if err != nil {
		return err
	}

	skipped, err := inv.player.Skip(context.Background(), inv.guildID)
	if err != nil {
		return inv.replyEphemeral(errorText(err))
	}
	return inv.reply(fmt.Sprintf("⏭️ Skipped **%s**", skipped.Title))
}

func init() {
	register(&SkipCommand{})
}

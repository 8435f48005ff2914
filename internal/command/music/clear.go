package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type ClearCommand struct{}

func (c *ClearCommand) Name() string        { return "clear" }
func (c *ClearCommand) Description() string { return "Clear the queue without stopping playback" }
func (c *ClearCommand) Aliases() []string   { return []string{} }

func (c *ClearCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *ClearCommand) Run(ctx interface{}) error {
	inv, err := newInvocation(ctx)
	if err != nil {
		return err
	}

	dropped, err := inv.player.Clear(inv.guildID)
	if err != nil {
		return inv.replyEphemeral(errorText(err))
	}
	return inv.reply(fmt.Sprintf("🗑️ Cleared %d track(s) from the queue", dropped))
}

func init() {
	register(&ClearCommand{})
}

package music

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type PauseCommand struct{}

func (c *PauseCommand) Name() string        { return "pause" }
func (c *PauseCommand) Description() string { return "Pause the current track" }
func (c *PauseCommand) Aliases() []string   { return []string{} }

func (c *PauseCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *PauseCommand) Run(ctx interface{}) error {
	inv, err := newInvocation(ctx)
	if err != nil {
		return err
	}

	if err := inv.player.SetPaused(context.Background(), inv.guildID, true); err != nil {
		return inv.replyEphemeral(errorText(err))
	}
	return inv.reply("⏸️ Paused")
}

func init() {
	register(&PauseCommand{})
}

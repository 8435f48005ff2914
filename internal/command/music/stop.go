package music

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type StopCommand struct{}

func (c *StopCommand) Name() string        { return "stop" }
func (c *StopCommand) Description() string { return "Stop playback and clear the queue" }
func (c *StopCommand) Aliases() []string   { return []string{} }

func (c *StopCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *StopCommand) Run(ctx interface{}) error {
	inv, err := newInvocation(ctx)
	if err != nil {
		return err
	}

	if err := inv.player.Stop(context.Background(), inv.guildID); err != nil {
		return inv.replyEphemeral(errorText(err))
	}
	return inv.reply("⏹️ Playback stopped")
}

func init() {
	register(&StopCommand{})
}

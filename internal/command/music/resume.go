package music

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type ResumeCommand struct{}

func (c *ResumeCommand) Name() string        { return "resume" }
func (c *ResumeCommand) Description() string { return "Resume the paused track" }
func (c *ResumeCommand) Aliases() []string   { return []string{"unpause"} }

func (c *ResumeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *ResumeCommand) Run(ctx interface{}) error {
	inv, err := newInvocation(ctx)
	if err != nil {
		return err
	}

	if err := inv.player.SetPaused(context.Background(), inv.guildID, false); err != nil {
		return inv.replyEphemeral(errorText(err))
	}
	return inv.reply("▶️ Resumed")
}

func init() {
	register(&ResumeCommand{})
}

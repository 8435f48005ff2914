package music

import (
	"github.com/bwmarrin/discordgo"
)

type LoopCommand struct{}

func (c *LoopCommand) Name() string        { return "loop" }
func (c *LoopCommand) Description() string { return "Toggle replaying the current track" }
func (c *LoopCommand) Aliases() []string   { return []string{} }

func (c *LoopCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *LoopCommand) Run(ctx interface{}) error {
	inv, err := newInvocation(ctx)
	if err != nil {
		return err
	}

	loop, err := inv.player.ToggleLoop(inv.guildID)
	if err != nil {
		return inv.replyEphemeral(errorText(err))
	}
	if loop {
		return inv.reply("🔁 Loop enabled")
	}
	return inv.reply("🔁 Loop disabled")
}

func init() {
	register(&LoopCommand{})
}

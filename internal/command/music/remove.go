package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type RemoveCommand struct{}

func (c *RemoveCommand) Name() string        { return "remove" }
func (c *RemoveCommand) Description() string { return "Remove a track from the queue by position" }
func (c *RemoveCommand) Aliases() []string   { return []string{"rm"} }

func (c *RemoveCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minValue := float64(1)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "position",
				Description: "Queue position, starting at 1",
				Required:    true,
				MinValue:    &minValue,
			},
		},
	}
}

func (c *RemoveCommand) Run(ctx interface{}) error {
	inv, err := newInvocation(ctx)
	if err != nil {
		return err
	}

	position, ok := inv.intOption("position")
	if !ok {
		return inv.replyEphemeral("🎵 Usage: remove <position>")
	}

	removed, err := inv.player.Remove(inv.guildID, position)
	if err != nil {
		return inv.replyEphemeral(errorText(err))
	}
	return inv.reply(fmt.Sprintf("🗑️ Removed **%s - %s**", removed.Artist, removed.Title))
}

func init() {
	register(&RemoveCommand{})
}

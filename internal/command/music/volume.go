package music

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type VolumeCommand struct{}

func (c *VolumeCommand) Name() string        { return "volume" }
func (c *VolumeCommand) Description() string { return "Set playback volume (0-100)" }
func (c *VolumeCommand) Aliases() []string   { return []string{"vol"} }

func (c *VolumeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minValue := float64(0)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "level",
				Description: "Volume percentage",
				Required:    true,
				MinValue:    &minValue,
				MaxValue:    100,
			},
		},
	}
}

func (c *VolumeCommand) Run(ctx interface{}) error {
	inv, err := newInvocation(ctx)
	if err != nil {
		return err
	}

	level, ok := inv.intOption("level")
	if !ok {
		return inv.replyEphemeral("🎵 Usage: volume <0-100>")
	}

	if err := inv.player.SetVolume(context.Background(), inv.guildID, level); err != nil {
		return inv.replyEphemeral(errorText(err))
	}
	return inv.reply(fmt.Sprintf("🔊 Volume set to %d%%", level))
}

func init() {
	register(&VolumeCommand{})
}

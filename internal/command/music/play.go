package music

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type PlayCommand struct{}

func (c *PlayCommand) Name() string        { return "play" }
func (c *PlayCommand) Description() string { return "Play a track or playlist by name or URL" }
func (c *PlayCommand) Aliases() []string   { return []string{"p"} }

func (c *PlayCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "query",
				Description: "Song name or a youtube/soundcloud/spotify URL",
				Required:    true,
			},
		},
	}
}

func (c *PlayCommand) Run(ctx interface{}) error {
	inv, err := newInvocation(ctx)
	if err != nil {
		return err
	}

	query := inv.stringOption("query")

	// The search can take up to its full timeout, too long for the
	// three-second interaction window.
	if err := inv.deferReply(); err != nil {
		return err
	}

	reply, err := inv.player.Play(context.Background(), inv.guildID, inv.userID, inv.channelID, query, inv.username)
	if err != nil {
		return inv.replyEphemeral(errorText(err))
	}
	return inv.reply("🎵 " + reply)
}

func init() {
	register(&PlayCommand{})
}

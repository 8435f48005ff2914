package music

import (
	"github.com/bwmarrin/discordgo"

	"github.com/thomasboyle/jackybot/internal/player"
)

type NowPlayingCommand struct{}

func (c *NowPlayingCommand) Name() string        { return "np" }
func (c *NowPlayingCommand) Description() string { return "Show the current track" }
func (c *NowPlayingCommand) Aliases() []string   { return []string{"nowplaying"} }

func (c *NowPlayingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *NowPlayingCommand) Run(ctx interface{}) error {
	inv, err := newInvocation(ctx)
	if err != nil {
		return err
	}

	np, err := inv.player.NowPlaying(inv.guildID)
	if err != nil {
		return inv.replyEphemeral(errorText(err))
	}
	return inv.replyEmbed(player.NowPlayingEmbed(np.Track, np.PositionMS, np.Paused, np.Loop, np.Requester))
}

func init() {
	register(&NowPlayingCommand{})
}

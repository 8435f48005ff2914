package music

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/thomasboyle/jackybot/internal/core"
)

const lyricsPreviewLimit = 2000

type LyricsCommand struct{}

func (c *LyricsCommand) Name() string        { return "lyrics" }
func (c *LyricsCommand) Description() string { return "Look up lyrics for the current track" }
func (c *LyricsCommand) Aliases() []string   { return []string{"ly"} }

func (c *LyricsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *LyricsCommand) Run(ctx interface{}) error {
	inv, err := newInvocation(ctx)
	if err != nil {
		return err
	}

	// The fallback chain can issue several HTTP lookups.
	if err := inv.deferReplyEphemeral(); err != nil {
		return err
	}

	fileName, text, err := inv.player.Lyrics(context.Background(), inv.guildID)
	if err != nil {
		return inv.replyEphemeral(errorText(err))
	}

	return inv.replyFile(lyricsEmbed(fileName, text), &discordgo.File{
		Name:        fileName,
		ContentType: "text/plain",
		Reader:      strings.NewReader(text),
	})
}

func lyricsEmbed(fileName, text string) *discordgo.MessageEmbed {
	preview := text
	if len(preview) > lyricsPreviewLimit {
		// Back up to a rune boundary so the cut never leaves invalid UTF-8.
		cut := lyricsPreviewLimit
		for cut > 0 && !utf8.RuneStart(preview[cut]) {
			cut--
		}
		preview = preview[:cut] + "…"
	}
	return embed.NewEmbed().
		SetTitle("📜 " + strings.TrimSuffix(fileName, " - Lyrics.txt")).
		SetDescription(preview).
		SetColor(core.EmbedColor).
		MessageEmbed
}

func init() {
	register(&LyricsCommand{})
}

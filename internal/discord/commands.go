package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/thomasboyle/jackybot/internal/core"
)

// registerCommands overwrites the guild's slash commands with the current
// registry. Commands without a slash definition (component-only handlers)
// are skipped.
func (b *Bot) registerCommands(guildID string) error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return err
		}
		appID = user.ID
	}

	var wanted []*discordgo.ApplicationCommand
	for _, cmd := range core.AllCommands() {
		if slash, ok := cmd.(core.SlashProvider); ok {
			if def := slash.SlashDefinition(); def != nil {
				wanted = append(wanted, def)
			}
		}
	}

	if _, err := b.dg.ApplicationCommandBulkOverwrite(appID, guildID, wanted); err != nil {
		return err
	}

	log.Printf("[INFO] [%s] Registered %d slash commands", guildID, len(wanted))
	return nil
}

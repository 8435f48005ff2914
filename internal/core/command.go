package core

import (
	"github.com/bwmarrin/discordgo"

	"github.com/thomasboyle/jackybot/internal/player"
)

type Command interface {
	Name() string
	Description() string
	Aliases() []string
	Run(ctx interface{}) error
}

// SlashProvider - how this command should be registered with Discord
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// Contexts - what runtime hands you when executing a command
// Slash command
type SlashInteractionContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Player  *player.Orchestrator
}

// Button or other message component
type ComponentInteractionContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Player  *player.Orchestrator
}

// Hook for component handling beyond Run
type ComponentInteractionHandler interface {
	Component(*ComponentInteractionContext) error
}

// Prefix-invoked message command
type MessageContext struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Args    []string
	Player  *player.Orchestrator
}

// Hook for the prefix message path beyond Run
type MessageHandler interface {
	Message(*MessageContext) error
}

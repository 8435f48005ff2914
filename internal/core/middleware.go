package core

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(Command) Command

func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if v, ok := ctx.(*SlashInteractionContext); ok && v.Event.GuildID == "" {
					return RespondEphemeral(v.Session, v.Event, "This command only works inside a server.")
				}
				if v, ok := ctx.(*MessageContext); ok && v.Event.GuildID == "" {
					return nil
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithCommandLogger wraps a command to log its execution
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				switch v := ctx.(type) {
				case *SlashInteractionContext:
					log.Printf("[INFO] /%s | guild=%s user=%s", cmd.Name(), v.Event.GuildID, v.Event.Member.User.Username)
				case *ComponentInteractionContext:
					log.Printf("[INFO] component %s | guild=%s user=%s", cmd.Name(), v.Event.GuildID, v.Event.Member.User.Username)
				case *MessageContext:
					log.Printf("[INFO] !%s | guild=%s user=%s", cmd.Name(), v.Event.GuildID, v.Event.Author.Username)
				}
				return cmd.Run(ctx)
			},
		}
	}
}

type wrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func (w *wrappedCommand) Message(ctx *MessageContext) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	if mh, ok := w.Command.(MessageHandler); ok {
		return mh.Message(ctx)
	}
	return nil
}

func (w *wrappedCommand) Component(ctx *ComponentInteractionContext) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	if ch, ok := w.Command.(ComponentInteractionHandler); ok {
		return ch.Component(ctx)
	}
	return nil
}

func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

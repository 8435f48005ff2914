// Package discord wires the gateway session, the audio backend client and
// the command registry into a running bot.
package discord

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/disgolink/v3/disgolink"
	"github.com/disgoorg/snowflake/v2"

	"github.com/thomasboyle/jackybot/internal/config"
	"github.com/thomasboyle/jackybot/internal/core"
	"github.com/thomasboyle/jackybot/internal/lyrics"
	"github.com/thomasboyle/jackybot/internal/player"
	"github.com/thomasboyle/jackybot/internal/session"
	"github.com/thomasboyle/jackybot/pkg/jobmgr"
)

// Bot is the running Discord bot
type Bot struct {
	dg     *discordgo.Session
	cfg    *config.Config
	store  *session.Store
	jobs   *jobmgr.Manager
	player *player.Orchestrator

	linkOnce sync.Once
	link     disgolink.Client
}

// StartBot runs the bot until the context is cancelled
func StartBot(ctx context.Context, cfg *config.Config) error {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	store := session.NewStore()
	jobs := jobmgr.NewManager(func(msg string) {
		log.Printf("[JOB] %s", msg)
	})
	lyricsResolver := lyrics.NewResolver(cfg.LyricsBaseURL, cfg.SearchTimeout)

	b := &Bot{
		dg:     dg,
		cfg:    cfg,
		store:  store,
		jobs:   jobs,
		player: player.New(dg, store, jobs, lyricsResolver, cfg.SearchTimeout, cfg.IdleTimeout, cfg.UpdateInterval),
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onVoiceServerUpdate)
	dg.AddHandler(b.onVoiceStateUpdate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")

	// Timers and updaters must not outlive the session.
	jobs.StopAll()
	if b.link != nil {
		b.link.Close()
	}
	return nil
}

// onReady connects the audio backend and registers the slash commands
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.linkOnce.Do(func() {
		if err := b.connectAudioNode(r.User.ID); err != nil {
			log.Printf("[ERR] Failed to connect audio node: %v", err)
		}
	})

	for _, g := range r.Guilds {
		if err := b.registerCommands(g.ID); err != nil {
			log.Printf("[ERR] Error registering slash commands for guild %s: %v", g.ID, err)
		}
	}

	log.Printf("[INFO] ✅ Discord bot %v is running.", r.User.Username)
}

// connectAudioNode builds the backend client and adds the configured node
func (b *Bot) connectAudioNode(botUserID string) error {
	link := disgolink.New(snowflake.MustParse(botUserID),
		disgolink.WithListenerFunc(b.player.OnTrackStart),
		disgolink.WithListenerFunc(b.player.OnTrackEnd),
		disgolink.WithListenerFunc(b.player.OnTrackException),
	)
	b.link = link
	b.player.SetLink(link)

	ctx, cancel := context.WithTimeout(context.Background(), b.cfg.SearchTimeout)
	defer cancel()

	_, err := link.AddNode(ctx, disgolink.NodeConfig{
		Name:     "main",
		Address:  fmt.Sprintf("%s:%d", b.cfg.LavalinkHost, b.cfg.LavalinkPort),
		Password: b.cfg.LavalinkPassword,
		Secure:   false,
	})
	if err != nil {
		return err
	}

	log.Printf("[INFO] Audio node connected | address=%s:%d", b.cfg.LavalinkHost, b.cfg.LavalinkPort)
	return nil
}

// onGuildCreate registers commands for guilds joined after startup
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)
	if err := b.registerCommands(g.Guild.ID); err != nil {
		log.Printf("[ERR] Failed to register commands for new guild %s: %v", g.Guild.ID, err)
	}
}

// onMessageCreate dispatches prefix commands
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}
	if !strings.HasPrefix(m.Content, b.cfg.CommandPrefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(m.Content, b.cfg.CommandPrefix))
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])

	cmd, ok := core.GetCommand(name)
	if !ok {
		return
	}

	ctx := &core.MessageContext{
		Session: s,
		Event:   m,
		Args:    fields[1:],
		Player:  b.player,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Printf("[ERR] Error running message command %s: %v", name, err)
	}
}

// onInteractionCreate dispatches slash commands and button clicks
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		cmdName := i.ApplicationCommandData().Name

		cmd, ok := core.GetCommand(cmdName)
		if !ok {
			log.Printf("[WARN] Unknown command: %s", cmdName)
			return
		}

		ctx := &core.SlashInteractionContext{
			Session: s,
			Event:   i,
			Player:  b.player,
		}
		if err := cmd.Run(ctx); err != nil {
			log.Printf("[ERR] Error running slash command %s: %v", cmdName, err)
		}

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID

		if !strings.HasPrefix(customID, player.ButtonPrefix) {
			log.Printf("[WARN] No matching component for customID: %s", customID)
			return
		}

		matched, ok := core.GetCommand("np-controls")
		if !ok {
			return
		}
		handler, ok := matched.(core.ComponentInteractionHandler)
		if !ok {
			log.Printf("[WARN] Command %s has no component handler", matched.Name())
			return
		}

		ctx := &core.ComponentInteractionContext{
			Session: s,
			Event:   i,
			Player:  b.player,
		}
		if err := handler.Component(ctx); err != nil {
			log.Printf("[ERR] Error running component %s: %v", matched.Name(), err)
		}
	}
}

// onVoiceServerUpdate forwards voice credentials to the audio backend
func (b *Bot) onVoiceServerUpdate(s *discordgo.Session, e *discordgo.VoiceServerUpdate) {
	if b.link == nil {
		return
	}
	b.link.OnVoiceServerUpdate(context.Background(), snowflake.MustParse(e.GuildID), e.Token, e.Endpoint)
}

// onVoiceStateUpdate forwards the bot's own voice session to the backend
func (b *Bot) onVoiceStateUpdate(s *discordgo.Session, e *discordgo.VoiceStateUpdate) {
	if b.link == nil || e.UserID != s.State.User.ID {
		return
	}
	var channelID *snowflake.ID
	if e.ChannelID != "" {
		id := snowflake.MustParse(e.ChannelID)
		channelID = &id
	}
	b.link.OnVoiceStateUpdate(context.Background(), snowflake.MustParse(e.GuildID), channelID, e.SessionID)
}

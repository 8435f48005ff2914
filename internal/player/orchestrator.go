package player

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/disgolink/v3/disgolink"
	"github.com/disgoorg/disgolink/v3/lavalink"
	"github.com/disgoorg/snowflake/v2"

	"github.com/thomasboyle/jackybot/internal/lyrics"
	"github.com/thomasboyle/jackybot/internal/metadata"
	"github.com/thomasboyle/jackybot/internal/session"
	"github.com/thomasboyle/jackybot/pkg/jobmgr"
)

var (
	ErrEmptyQuery         = errors.New("search query is empty")
	ErrNotInVoice         = errors.New("you must be in a voice channel")
	ErrNoResults          = errors.New("no results found for the given query")
	ErrNoTrackPlaying     = errors.New("no track is currently playing")
	ErrNoSession          = errors.New("nothing has been played in this guild yet")
	ErrInvalidIndex       = errors.New("no track at the given queue position")
	ErrBackendUnavailable = errors.New("audio backend is unavailable")
)

// Orchestrator ties guild sessions to the voice gateway and the audio
// backend. Every playback command goes through it.
type Orchestrator struct {
	dg     *discordgo.Session
	link   disgolink.Client
	store  *session.Store
	jobs   *jobmgr.Manager
	lyrics *lyrics.Resolver

	searchTimeout  time.Duration
	idleTimeout    time.Duration
	updateInterval time.Duration
}

func New(dg *discordgo.Session, store *session.Store, jobs *jobmgr.Manager, lyricsResolver *lyrics.Resolver, searchTimeout, idleTimeout, updateInterval time.Duration) *Orchestrator {
	return &Orchestrator{
		dg:             dg,
		store:          store,
		jobs:           jobs,
		lyrics:         lyricsResolver,
		searchTimeout:  searchTimeout,
		idleTimeout:    idleTimeout,
		updateInterval: updateInterval,
	}
}

// SetLink installs the audio backend client. The client is built after the
// orchestrator because its event listeners point back here.
func (o *Orchestrator) SetLink(link disgolink.Client) {
	o.link = link
}

func idleKey(guildID string) string   { return "idle:" + guildID }
func updateKey(guildID string) string { return "npupdate:" + guildID }

// Play resolves the query and starts or extends playback for the guild.
// The returned string is the user-facing confirmation.
func (o *Orchestrator) Play(ctx context.Context, guildID, userID, textChannelID, rawQuery, requester string) (string, error) {
	rawQuery = strings.TrimSpace(rawQuery)
	if rawQuery == "" {
		return "", ErrEmptyQuery
	}
	if !o.backendReady() {
		return "", ErrBackendUnavailable
	}

	voiceState, err := o.dg.State.VoiceState(guildID, userID)
	if err != nil || voiceState.ChannelID == "" {
		return "", ErrNotInVoice
	}

	sess := o.store.GetOrCreate(guildID)
	sess.SetTextChannel(textChannelID)

	// Joins the member's channel, or moves there if connected elsewhere.
	if err := o.dg.ChannelVoiceJoinManual(guildID, voiceState.ChannelID, false, true); err != nil {
		return "", fmt.Errorf("failed to join voice channel: %w", err)
	}

	// New activity supersedes a pending disconnect.
	_ = o.jobs.Stop(idleKey(guildID))

	identifier := BuildSearchQuery(rawQuery)
	log.Printf("[Player] Searching | guild=%s query=%q", guildID, identifier)

	searchCtx, cancel := context.WithTimeout(ctx, o.searchTimeout)
	defer cancel()

	var (
		tracks     []lavalink.Track
		isPlaylist bool
		loadErr    error
	)
	o.link.BestNode().LoadTracksHandler(searchCtx, identifier, disgolink.NewResultHandler(
		func(track lavalink.Track) {
			tracks = []lavalink.Track{track}
		},
		func(playlist lavalink.Playlist) {
			tracks = playlist.Tracks
			isPlaylist = true
		},
		func(results []lavalink.Track) {
			// A search list resolves to its top hit.
			if len(results) > 0 {
				tracks = results[:1]
			}
		},
		func() {},
		func(err error) {
			loadErr = err
		},
	))
	if loadErr != nil {
		return "", fmt.Errorf("track search failed: %w", loadErr)
	}
	if err := searchCtx.Err(); err != nil {
		return "", fmt.Errorf("track search timed out: %w", err)
	}
	if len(tracks) == 0 {
		return "", ErrNoResults
	}

	if isPlaylist {
		sess.Enqueue(tracks...)
	} else {
		sess.Enqueue(tracks[0])
		sess.SetLastRequester(requester)
	}
	log.Printf("[Player] Added %d track(s) | guild=%s queueLen=%d", len(tracks), guildID, sess.QueueLen())

	if err := o.playNextIfIdle(ctx, guildID, sess); err != nil {
		return "", err
	}

	if isPlaylist {
		return fmt.Sprintf("Queued playlist with %d tracks", len(tracks)), nil
	}
	return fmt.Sprintf("Queued: %s", rawQuery), nil
}

// playNextIfIdle starts the next queued track unless one is already playing.
func (o *Orchestrator) playNextIfIdle(ctx context.Context, guildID string, sess *session.Session) error {
	player := o.link.Player(snowflake.MustParse(guildID))
	if player.Track() != nil {
		return nil
	}
	next, ok := sess.Dequeue()
	if !ok {
		return nil
	}
	if err := player.Update(ctx, lavalink.WithTrack(next), lavalink.WithVolume(sess.Volume())); err != nil {
		return fmt.Errorf("failed to start playback: %w", err)
	}
	return nil
}

// Skip ends the current track and starts the next queued one, if any.
func (o *Orchestrator) Skip(ctx context.Context, guildID string) (metadata.Track, error) {
	player, err := o.activePlayer(guildID)
	if err != nil {
		return metadata.Track{}, err
	}
	skipped := metadata.FromLavalink(*player.Track())

	sess := o.store.GetOrCreate(guildID)
	if next, ok := sess.Dequeue(); ok {
		if err := player.Update(ctx, lavalink.WithTrack(next)); err != nil {
			return metadata.Track{}, fmt.Errorf("failed to start next track: %w", err)
		}
		return skipped, nil
	}

	if err := player.Update(ctx, lavalink.WithNullTrack()); err != nil {
		return metadata.Track{}, fmt.Errorf("failed to stop playback: %w", err)
	}
	o.armIdleTimer(guildID)
	return skipped, nil
}

// Stop drops the whole queue and ends playback.
func (o *Orchestrator) Stop(ctx context.Context, guildID string) error {
	player, err := o.activePlayer(guildID)
	if err != nil {
		return err
	}
	sess := o.store.GetOrCreate(guildID)
	dropped := sess.Clear()
	log.Printf("[Player] Stopped | guild=%s droppedTracks=%d", guildID, dropped)

	if err := player.Update(ctx, lavalink.WithNullTrack()); err != nil {
		return fmt.Errorf("failed to stop playback: %w", err)
	}
	o.armIdleTimer(guildID)
	return nil
}

// SetPaused pauses or resumes the current track explicitly. Asking for the
// state it is already in is a no-op rather than a toggle.
func (o *Orchestrator) SetPaused(ctx context.Context, guildID string, paused bool) error {
	player, err := o.activePlayer(guildID)
	if err != nil {
		return err
	}
	if player.Paused() == paused {
		return nil
	}
	if err := player.Update(ctx, lavalink.WithPaused(paused)); err != nil {
		return fmt.Errorf("failed to update pause state: %w", err)
	}
	o.refreshNowPlaying(guildID)
	return nil
}

// TogglePause inverts the pause state and returns the new one. Used by the
// combined play/pause button.
func (o *Orchestrator) TogglePause(ctx context.Context, guildID string) (bool, error) {
	player, err := o.activePlayer(guildID)
	if err != nil {
		return false, err
	}
	paused := !player.Paused()
	if err := player.Update(ctx, lavalink.WithPaused(paused)); err != nil {
		return false, fmt.Errorf("failed to update pause state: %w", err)
	}
	o.refreshNowPlaying(guildID)
	return paused, nil
}

// SetVolume validates and applies a new volume. The session keeps the value
// even across tracks.
func (o *Orchestrator) SetVolume(ctx context.Context, guildID string, volume int) error {
	sess, ok := o.store.Get(guildID)
	if !ok {
		return ErrNoSession
	}
	if err := sess.SetVolume(volume); err != nil {
		return err
	}
	if o.link != nil {
		if player := o.link.ExistingPlayer(snowflake.MustParse(guildID)); player != nil {
			if err := player.Update(ctx, lavalink.WithVolume(volume)); err != nil {
				return fmt.Errorf("failed to apply volume: %w", err)
			}
		}
	}
	return nil
}

// SeekBy moves the current position by a signed number of seconds, clamped
// into the track bounds. It returns the new position and the track length.
func (o *Orchestrator) SeekBy(ctx context.Context, guildID string, deltaSeconds int) (int64, int64, error) {
	player, err := o.activePlayer(guildID)
	if err != nil {
		return 0, 0, err
	}
	lengthMS := player.Track().Info.Length.Milliseconds()

	newPosMS := player.Position().Milliseconds() + int64(deltaSeconds)*1000
	if newPosMS < 0 {
		newPosMS = 0
	}
	if newPosMS > lengthMS {
		newPosMS = lengthMS
	}

	if err := player.Update(ctx, lavalink.WithPosition(lavalink.Duration(newPosMS)*lavalink.Millisecond)); err != nil {
		return 0, 0, fmt.Errorf("failed to seek: %w", err)
	}
	return newPosMS, lengthMS, nil
}

// ToggleLoop flips the loop flag for the guild and returns the new value.
func (o *Orchestrator) ToggleLoop(guildID string) (bool, error) {
	sess, ok := o.store.Get(guildID)
	if !ok {
		return false, ErrNoSession
	}
	loop := sess.ToggleLoop()
	o.refreshNowPlaying(guildID)
	return loop, nil
}

// Remove drops the track at the given one-based queue position.
func (o *Orchestrator) Remove(guildID string, position int) (metadata.Track, error) {
	sess, ok := o.store.Get(guildID)
	if !ok {
		return metadata.Track{}, ErrNoSession
	}
	removed, ok := sess.RemoveAt(position - 1)
	if !ok {
		return metadata.Track{}, ErrInvalidIndex
	}
	return metadata.FromLavalink(removed), nil
}

// Clear empties the queue without touching the current track.
func (o *Orchestrator) Clear(guildID string) (int, error) {
	sess, ok := o.store.Get(guildID)
	if !ok {
		return 0, ErrNoSession
	}
	return sess.Clear(), nil
}

// Queue returns the queued tracks in play order.
func (o *Orchestrator) Queue(guildID string) ([]lavalink.Track, error) {
	sess, ok := o.store.Get(guildID)
	if !ok {
		return nil, ErrNoSession
	}
	return sess.Queue(), nil
}

// NowPlaying describes the current track for status rendering.
type NowPlaying struct {
	Track      metadata.Track
	PositionMS int64
	Paused     bool
	Loop       bool
	Requester  string
}

func (o *Orchestrator) NowPlaying(guildID string) (NowPlaying, error) {
	player, err := o.activePlayer(guildID)
	if err != nil {
		return NowPlaying{}, err
	}
	sess := o.store.GetOrCreate(guildID)
	return NowPlaying{
		Track:      metadata.FromLavalink(*player.Track()),
		PositionMS: player.Position().Milliseconds(),
		Paused:     player.Paused(),
		Loop:       sess.Loop(),
		Requester:  sess.LastRequester(),
	}, nil
}

// Lyrics fetches lyrics for the current track. It returns the attachment
// file name alongside the text.
func (o *Orchestrator) Lyrics(ctx context.Context, guildID string) (string, string, error) {
	player, err := o.activePlayer(guildID)
	if err != nil {
		return "", "", err
	}
	track := metadata.FromLavalink(*player.Track())

	text, err := o.lyrics.Search(ctx, track.Artist, track.Title)
	if err != nil {
		return "", "", err
	}
	fileName := fmt.Sprintf("%s - %s - Lyrics.txt", track.Artist, track.Title)
	return fileName, text, nil
}

// backendReady reports whether the audio backend client has a usable node.
// The client is installed after startup and its node can fail to connect, so
// command paths check before touching it.
func (o *Orchestrator) backendReady() bool {
	return o.link != nil && o.link.BestNode() != nil
}

// activePlayer returns the guild's backend player when a track is live.
func (o *Orchestrator) activePlayer(guildID string) (disgolink.Player, error) {
	if o.link == nil {
		return nil, ErrBackendUnavailable
	}
	player := o.link.ExistingPlayer(snowflake.MustParse(guildID))
	if player == nil || player.Track() == nil {
		return nil, ErrNoTrackPlaying
	}
	return player, nil
}

// OnTrackStart posts the now-playing message and starts the periodic
// refresher. Registered as a backend event listener.
func (o *Orchestrator) OnTrackStart(player disgolink.Player, event lavalink.TrackStartEvent) {
	guildID := player.GuildID().String()
	sess, ok := o.store.Get(guildID)
	if !ok {
		return
	}

	track := metadata.FromLavalink(event.Track)
	log.Printf("[Player] Track started | guild=%s track=%q", guildID, track.Title)

	channelID := sess.TextChannel()
	if channelID == "" {
		return
	}

	msg, err := o.dg.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{NowPlayingEmbed(track, 0, false, sess.Loop(), sess.LastRequester())},
		Components: ControlRows(track),
	})
	if err != nil {
		log.Printf("[WARN] Failed to post now-playing message | guild=%s: %v", guildID, err)
		return
	}
	sess.SetCurrentMessage(msg.ID)

	o.jobs.StartReplace(updateKey(guildID), func(ctx context.Context) error {
		ticker := time.NewTicker(o.updateInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if p := o.link.ExistingPlayer(snowflake.MustParse(guildID)); p != nil && !p.Paused() {
					o.refreshNowPlaying(guildID)
				}
			}
		}
	})
}

// OnTrackEnd advances playback: replay on loop, dequeue the next track, or
// arm the idle-disconnect timer. Registered as a backend event listener.
func (o *Orchestrator) OnTrackEnd(player disgolink.Player, event lavalink.TrackEndEvent) {
	guildID := player.GuildID().String()
	_ = o.jobs.Stop(updateKey(guildID))

	sess, ok := o.store.Get(guildID)
	if !ok {
		return
	}
	sess.SetCurrentMessage("")

	if !event.Reason.MayStartNext() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Loop replays only a naturally finished track, never a failed load.
	if event.Reason == lavalink.TrackEndReasonFinished && sess.Loop() {
		if err := player.Update(ctx, lavalink.WithTrack(event.Track)); err != nil {
			log.Printf("[ERR] Failed to replay looped track | guild=%s: %v", guildID, err)
		}
		return
	}

	if next, ok := sess.Dequeue(); ok {
		if err := player.Update(ctx, lavalink.WithTrack(next)); err != nil {
			log.Printf("[ERR] Failed to start next track | guild=%s: %v", guildID, err)
		}
		return
	}

	o.armIdleTimer(guildID)
}

// OnTrackException logs playback failures. The backend follows up with a
// TrackEnd event, which handles advancement.
func (o *Orchestrator) OnTrackException(player disgolink.Player, event lavalink.TrackExceptionEvent) {
	log.Printf("[WARN] Track playback failed | guild=%s: %s", player.GuildID(), event.Exception.Error())
}

// armIdleTimer schedules a voice disconnect after the idle timeout. Any
// previous timer for the guild is replaced.
func (o *Orchestrator) armIdleTimer(guildID string) {
	o.jobs.StartReplace(idleKey(guildID), func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(o.idleTimeout):
		}
		o.disconnectIfIdle(guildID)
		return nil
	})
}

// disconnectIfIdle leaves the voice channel if nothing started playing while
// the timer ran.
func (o *Orchestrator) disconnectIfIdle(guildID string) {
	if player := o.link.ExistingPlayer(snowflake.MustParse(guildID)); player != nil && player.Track() != nil {
		return
	}
	if sess, ok := o.store.Get(guildID); ok && sess.QueueLen() > 0 {
		return
	}

	log.Printf("[Player] Idle timeout reached, disconnecting | guild=%s", guildID)
	if err := o.dg.ChannelVoiceJoinManual(guildID, "", false, true); err != nil {
		log.Printf("[WARN] Failed to leave voice channel | guild=%s: %v", guildID, err)
	}
}

// refreshNowPlaying re-renders the live status message in place.
func (o *Orchestrator) refreshNowPlaying(guildID string) {
	sess, ok := o.store.Get(guildID)
	if !ok {
		return
	}
	messageID := sess.CurrentMessage()
	channelID := sess.TextChannel()
	if messageID == "" || channelID == "" {
		return
	}

	player := o.link.ExistingPlayer(snowflake.MustParse(guildID))
	if player == nil || player.Track() == nil {
		return
	}

	track := metadata.FromLavalink(*player.Track())
	embeds := []*discordgo.MessageEmbed{
		NowPlayingEmbed(track, player.Position().Milliseconds(), player.Paused(), sess.Loop(), sess.LastRequester()),
	}
	_, err := o.dg.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel: channelID,
		ID:      messageID,
		Embeds:  &embeds,
	})
	if err != nil {
		log.Printf("[WARN] Failed to refresh now-playing message | guild=%s: %v", guildID, err)
	}
}

// Package session holds the per-guild playback state. A session tracks the
// queue mirror, loop flag, volume and message bindings for one guild, and is
// mutated concurrently from slash commands, prefix commands and button
// clicks.
package session

import (
	"errors"
	"sync"

	"github.com/disgoorg/disgolink/v3/lavalink"
)

const DefaultVolume = 100

// ErrVolumeRange is returned for volume values outside [0, 100].
var ErrVolumeRange = errors.New("volume must be between 0 and 100")

// Session is the playback state for one guild. All fields are guarded by the
// session's own mutex; callers never hold it across network calls.
type Session struct {
	mu sync.Mutex

	guildID       string
	queue         []lavalink.Track
	loop          bool
	volume        int
	textChannelID string
	messageID     string
	lastRequester string
}

func newSession(guildID string) *Session {
	return &Session{
		guildID: guildID,
		volume:  DefaultVolume,
	}
}

func (s *Session) GuildID() string {
	return s.guildID
}

// Enqueue appends tracks to the local queue mirror in play order.
func (s *Session) Enqueue(tracks ...lavalink.Track) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, tracks...)
}

// Dequeue pops the next track off the queue mirror.
func (s *Session) Dequeue() (lavalink.Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return lavalink.Track{}, false
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	return next, true
}

// RemoveAt removes the track at the given zero-based queue position.
func (s *Session) RemoveAt(index int) (lavalink.Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.queue) {
		return lavalink.Track{}, false
	}
	removed := s.queue[index]
	s.queue = append(s.queue[:index], s.queue[index+1:]...)
	return removed, true
}

// Clear empties the queue mirror and returns how many tracks were dropped.
func (s *Session) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.queue)
	s.queue = nil
	return n
}

// Queue returns a copy of the queue mirror in play order.
func (s *Session) Queue() []lavalink.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]lavalink.Track, len(s.queue))
	copy(out, s.queue)
	return out
}

func (s *Session) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

func (s *Session) Loop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loop
}

// ToggleLoop flips the loop flag and returns the new value.
func (s *Session) ToggleLoop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loop = !s.loop
	return s.loop
}

func (s *Session) Volume() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// SetVolume stores the new volume. Out-of-range values are rejected without
// touching the current setting.
func (s *Session) SetVolume(volume int) error {
	if volume < 0 || volume > 100 {
		return ErrVolumeRange
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = volume
	return nil
}

func (s *Session) TextChannel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.textChannelID
}

// SetTextChannel rebinds the channel status messages are posted to. Every
// play call overwrites it, so messages follow the user.
func (s *Session) SetTextChannel(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textChannelID = channelID
}

func (s *Session) CurrentMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messageID
}

func (s *Session) SetCurrentMessage(messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messageID = messageID
}

func (s *Session) LastRequester() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRequester
}

func (s *Session) SetLastRequester(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRequester = userID
}

package session

import "sync"

// Store maps guild IDs to sessions. Sessions are created lazily on first
// access and live for the rest of the process; idle guilds keep their
// session so settings like volume and loop survive between plays.
//
// The store is injected into every handler rather than held as a package
// global, so tests can start from a fresh one.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for the guild, if one exists.
func (st *Store) Get(guildID string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[guildID]
	return s, ok
}

// GetOrCreate returns the guild's session, creating it on first access.
func (st *Store) GetOrCreate(guildID string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[guildID]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[guildID]; ok {
		return s
	}
	s = newSession(guildID)
	st.sessions[guildID] = s
	return s
}

// GuildIDs returns the IDs of every guild with a session.
func (st *Store) GuildIDs() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	ids := make([]string, 0, len(st.sessions))
	for id := range st.sessions {
		ids = append(ids, id)
	}
	return ids
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

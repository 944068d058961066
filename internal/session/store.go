package session

import "sync"

// Store holds one session per authenticated user, created lazily. Sessions
// are in-memory only; nothing survives a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[int]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int]*Session)}
}

// Get returns the user's session, creating a fresh one on first use.
func (st *Store) Get(userID int) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[userID]
	if !ok {
		s = New()
		st.sessions[userID] = s
	}
	return s
}

// Drop discards the user's session entirely.
func (st *Store) Drop(userID int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}

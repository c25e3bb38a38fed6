package usecase

import (
	"sync"
	"time"
)

const defaultSessionTTL = 12 * time.Hour

type sessionEntry struct {
	editor     *QuoteEditor
	expiration int64
}

// SessionStore keeps open editor drafts in memory. Drafts exist only inside
// the process until the operator saves; an abandoned session is evicted
// after the TTL so a closed browser tab does not leak drafts forever.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	s := &SessionStore{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
	}
	go s.cleanupExpired()
	return s
}

func (s *SessionStore) Put(e *QuoteEditor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[e.SessionID()] = sessionEntry{
		editor:     e,
		expiration: time.Now().Add(s.ttl).UnixNano(),
	}
}

// Get returns the session and refreshes its expiration; every operator
// interaction keeps the draft alive.
func (s *SessionStore) Get(id string) (*QuoteEditor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Now().UnixNano() > entry.expiration {
		delete(s.sessions, id)
		return nil, false
	}
	entry.expiration = time.Now().Add(s.ttl).UnixNano()
	s.sessions[id] = entry
	return entry.editor, true
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *SessionStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now().UnixNano()
		for id, entry := range s.sessions {
			if now > entry.expiration {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}

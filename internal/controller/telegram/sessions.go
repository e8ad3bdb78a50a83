package telegram

import (
	"sync"
	"time"
)

// Upload flow states. The flow is strictly linear: idle → waiting for a
// URL → waiting for a platform choice → idle.
type UploadState int

const (
	StateIdle UploadState = iota
	StateWaitingURL
	StateWaitingPlatform
)

// DefaultSessionTTL evicts upload sessions the admin walked away from.
const DefaultSessionTTL = 15 * time.Minute

type uploadSession struct {
	state   UploadState
	url     string
	touched time.Time
}

// SessionStore holds per-chat upload sessions. Sessions expire after the
// TTL so abandoned flows do not leak.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[int64]*uploadSession
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[int64]*uploadSession),
		now:      time.Now,
	}
}

// State reports the current upload state for a chat. Expired sessions read
// as idle.
func (s *SessionStore) State(chatID int64) UploadState {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.get(chatID)
	if !ok {
		return StateIdle
	}
	return session.state
}

// Begin starts a fresh upload session waiting for a URL, discarding any
// previous session for the chat.
func (s *SessionStore) Begin(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[chatID] = &uploadSession{
		state:   StateWaitingURL,
		touched: s.now(),
	}
}

// SetURL stores the pending URL and advances to the platform step.
func (s *SessionStore) SetURL(chatID int64, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.get(chatID)
	if !ok || session.state != StateWaitingURL {
		return
	}
	session.url = url
	session.state = StateWaitingPlatform
	session.touched = s.now()
}

// URL returns the pending URL held for the chat.
func (s *SessionStore) URL(chatID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.get(chatID)
	if !ok || session.state != StateWaitingPlatform {
		return "", false
	}
	return session.url, true
}

// Clear drops the session, returning the chat to idle.
func (s *SessionStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// get returns the live session for a chat, evicting it when expired.
// Callers must hold the lock.
func (s *SessionStore) get(chatID int64) (*uploadSession, bool) {
	session, ok := s.sessions[chatID]
	if !ok {
		return nil, false
	}
	if s.now().Sub(session.touched) > s.ttl {
		delete(s.sessions, chatID)
		return nil, false
	}
	return session, true
}

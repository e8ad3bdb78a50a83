package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionFlowTransitions(t *testing.T) {
	s := NewSessionStore(DefaultSessionTTL)
	chatID := int64(100)

	assert.Equal(t, StateIdle, s.State(chatID))

	s.Begin(chatID)
	assert.Equal(t, StateWaitingURL, s.State(chatID))

	// URL is only readable once the platform step is reached.
	_, ok := s.URL(chatID)
	assert.False(t, ok)

	s.SetURL(chatID, "https://youtube.com/shorts/abc123")
	assert.Equal(t, StateWaitingPlatform, s.State(chatID))

	url, ok := s.URL(chatID)
	assert.True(t, ok)
	assert.Equal(t, "https://youtube.com/shorts/abc123", url)

	s.Clear(chatID)
	assert.Equal(t, StateIdle, s.State(chatID))
	_, ok = s.URL(chatID)
	assert.False(t, ok)
}

func TestSetURLIgnoredOutsideURLStep(t *testing.T) {
	s := NewSessionStore(DefaultSessionTTL)
	chatID := int64(100)

	// No session at all: nothing to advance.
	s.SetURL(chatID, "https://youtube.com/shorts/abc123")
	assert.Equal(t, StateIdle, s.State(chatID))

	// Already past the URL step: a second URL must not overwrite.
	s.Begin(chatID)
	s.SetURL(chatID, "https://youtube.com/shorts/first")
	s.SetURL(chatID, "https://youtube.com/shorts/second")

	url, ok := s.URL(chatID)
	assert.True(t, ok)
	assert.Equal(t, "https://youtube.com/shorts/first", url)
}

func TestSessionsAreIndependentPerChat(t *testing.T) {
	s := NewSessionStore(DefaultSessionTTL)

	s.Begin(1)
	assert.Equal(t, StateWaitingURL, s.State(1))
	assert.Equal(t, StateIdle, s.State(2))

	s.Clear(2)
	assert.Equal(t, StateWaitingURL, s.State(1))
}

func TestSessionTTLEviction(t *testing.T) {
	s := NewSessionStore(time.Minute)
	chatID := int64(100)

	current := time.Now()
	s.now = func() time.Time { return current }

	s.Begin(chatID)
	s.SetURL(chatID, "https://youtube.com/shorts/abc123")
	assert.Equal(t, StateWaitingPlatform, s.State(chatID))

	// Abandoned session expires back to idle and drops its URL.
	current = current.Add(2 * time.Minute)
	assert.Equal(t, StateIdle, s.State(chatID))
	_, ok := s.URL(chatID)
	assert.False(t, ok)
}

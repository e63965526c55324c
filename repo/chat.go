package repo

import (
	"fmt"
	"sync"
	"time"

	"prototype-creator/model"
)

// ChatSessionStore keeps chat transcripts in memory for the lifetime of the
// process. Sessions are not persisted.
type ChatSessionStore struct {
	mu       sync.Mutex
	sessions map[string][]model.ChatMessage
}

// NewChatSessionStore creates an empty session store.
func NewChatSessionStore() *ChatSessionStore {
	return &ChatSessionStore{sessions: make(map[string][]model.ChatMessage)}
}

// NewSession creates a fresh session and returns its identifier.
func (s *ChatSessionStore) NewSession() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("chat_%d", time.Now().UnixMilli())
	s.sessions[id] = nil
	return id
}

// Append adds a message to the session transcript.
func (s *ChatSessionStore) Append(sessionID string, msg model.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], msg)
}

// Messages returns a copy of the session transcript in append order.
func (s *ChatSessionStore) Messages(sessionID string) []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.sessions[sessionID]
	out := make([]model.ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}

// Clear empties the session transcript but keeps the session alive.
func (s *ChatSessionStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = nil
}

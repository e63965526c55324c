package model

import (
	"fmt"
	"math/rand"
	"time"
)

// ChatMessage is a single entry in a chat session. Messages live only for
// the session's in-memory lifetime; nothing is persisted.
type ChatMessage struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	IsFromUser bool   `json:"isFromUser"`
	Timestamp  int64  `json:"timestamp"`
	IsError    bool   `json:"isError,omitempty"`
}

// NewChatMessage creates a message with a generated id and current timestamp.
func NewChatMessage(content string, fromUser bool) ChatMessage {
	return ChatMessage{
		ID:         generateMessageID(),
		Content:    content,
		IsFromUser: fromUser,
		Timestamp:  time.Now().UnixMilli(),
	}
}

// NewErrorMessage creates an assistant-side message flagged as an error.
func NewErrorMessage(content string) ChatMessage {
	msg := NewChatMessage(content, false)
	msg.IsError = true
	return msg
}

func generateMessageID() string {
	return fmt.Sprintf("msg_%d_%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// Package ai contains the chat backends that turn a conversation into an
// assistant reply. The primary backend is an n8n webhook workflow; a direct
// OpenAI backend is available as an alternative.
package ai

import (
	"context"

	"prototype-creator/model"
)

// Service is a chat backend. SendMessage submits the full conversation and
// returns the assistant's reply text.
type Service interface {
	SendMessage(ctx context.Context, messages []model.ChatMessage) (string, error)
	Name() string
}

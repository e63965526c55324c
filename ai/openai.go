package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"prototype-creator/model"
	"prototype-creator/utils"
)

const defaultOpenAIModel = openai.GPT4TurboPreview

const systemPrompt = "Eres un asistente que ayuda a convertir ideas de aplicaciones " +
	"en prototipos HTML. Haz preguntas para entender la idea del usuario y " +
	"responde en el idioma en que te escriban."

// OpenAIService talks to the OpenAI chat completion API directly. It is used
// when no webhook workflow is configured.
type OpenAIService struct {
	client *openai.Client
	model  string
	logger *utils.Logger
}

// NewOpenAIService creates a direct OpenAI chat service. model may be empty,
// in which case a default is used.
func NewOpenAIService(apiKey, model string, logger *utils.Logger) *OpenAIService {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIService{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

// Name identifies the backend in logs and the settings screen.
func (s *OpenAIService) Name() string {
	return "openai"
}

// SendMessage submits the conversation to the chat completion endpoint.
func (s *OpenAIService) SendMessage(ctx context.Context, messages []model.ChatMessage) (string, error) {
	openaiMessages := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	openaiMessages = append(openaiMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range messages {
		role := openai.ChatMessageRoleAssistant
		if m.IsFromUser {
			role = openai.ChatMessageRoleUser
		}
		openaiMessages = append(openaiMessages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	s.logger.Debug("OpenAI request: model=%s messages=%d", s.model, len(openaiMessages))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: openaiMessages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

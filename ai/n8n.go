package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"prototype-creator/model"
	"prototype-creator/utils"
)

// ErrEmptyResponse is returned when the webhook answers 2xx with a blank body.
// Callers show it differently from transport failures.
var ErrEmptyResponse = errors.New("empty webhook response")

// N8NService sends the conversation to an n8n webhook workflow and extracts
// the assistant reply from whatever JSON shape the workflow returns.
type N8NService struct {
	baseURL     string
	webhookPath string
	apiKey      string
	client      *http.Client
	logger      *utils.Logger
}

// NewN8NService creates a webhook-backed chat service. apiKey may be empty,
// in which case no Authorization header is sent.
func NewN8NService(baseURL, webhookPath, apiKey string, logger *utils.Logger) *N8NService {
	// Workflows can take minutes: they call an LLM and generate a full HTML
	// document before answering.
	client := &http.Client{
		Timeout: 300 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 300 * time.Second,
		},
	}

	return &N8NService{
		baseURL:     baseURL,
		webhookPath: webhookPath,
		apiKey:      apiKey,
		client:      client,
		logger:      logger,
	}
}

// Name identifies the backend in logs and the settings screen.
func (s *N8NService) Name() string {
	return "n8n"
}

// webhookURL joins the base URL and webhook path. An absolute http(s) path
// overrides the base entirely, so a full URL can be pasted into either field.
func (s *N8NService) webhookURL() string {
	if strings.HasPrefix(s.webhookPath, "http://") || strings.HasPrefix(s.webhookPath, "https://") {
		return s.webhookPath
	}
	return strings.TrimRight(s.baseURL, "/") + "/" + strings.TrimLeft(s.webhookPath, "/")
}

type webhookMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type webhookRequest struct {
	Messages []webhookMessage `json:"messages"`
}

// SendMessage posts the conversation to the webhook and returns the extracted
// reply text. Non-2xx responses become errors embedding the status and body.
func (s *N8NService) SendMessage(ctx context.Context, messages []model.ChatMessage) (string, error) {
	payload := webhookRequest{Messages: make([]webhookMessage, 0, len(messages))}
	for _, m := range messages {
		role := "assistant"
		if m.IsFromUser {
			role = "user"
		}
		payload.Messages = append(payload.Messages, webhookMessage{Role: role, Content: m.Content})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	url := s.webhookURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	s.logger.Debug("Webhook request: POST %s (%d messages)", url, len(payload.Messages))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read webhook response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error("Webhook returned %d: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("webhook request failed with status %d: %s", resp.StatusCode, string(body))
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", ErrEmptyResponse
	}

	return ExtractResponseText(text), nil
}

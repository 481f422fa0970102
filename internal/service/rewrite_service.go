package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "focusflow/backend/internal/errors"
)

// RewriteService proxies one text-rewrite call to an OpenAI-compatible
// chat-completions endpoint. No streaming, no history; one prompt in, one
// rewritten text out.
type RewriteService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewRewriteService(baseURL, apiKey, model string, timeout time.Duration) *RewriteService {
	return &RewriteService{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *RewriteService) Rewrite(ctx context.Context, text, tone string) (string, *apperrors.APIError) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.BadRequest("invalid_text", "text is required")
	}
	if len(text) > 4000 {
		return "", apperrors.BadRequest("text_too_long", "text must be at most 4000 characters")
	}
	if s.apiKey == "" {
		return "", apperrors.BadGateway("rewrite service is not configured")
	}

	if tone == "" {
		tone = "clear and friendly"
	}
	prompt := fmt.Sprintf("Rewrite the following text in a %s tone. Reply with only the rewritten text.\n\n%s", tone, text)

	payload, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", apperrors.Internal("failed to encode rewrite request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.Internal("failed to build rewrite request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperrors.BadGateway("rewrite upstream unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", apperrors.BadGateway("failed to read rewrite response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperrors.BadGateway(fmt.Sprintf("rewrite upstream returned %d", resp.StatusCode))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", apperrors.BadGateway("invalid rewrite response")
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", apperrors.BadGateway("empty rewrite response")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

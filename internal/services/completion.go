package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rebateatlas-backend/internal/middleware"
	"rebateatlas-backend/internal/models"
)

const (
	completionTimeout = 60 * time.Second

	// Fixed sampling parameters for rebate answers.
	completionTemperature = 0.5
	completionMaxTokens   = 1200

	fallbackReply = "Sorry — I could not generate a response at this time."
)

// CompletionService calls an OpenAI-compatible chat-completions API. The
// provider is opaque to the rest of the system: messages in, reply text out.
type CompletionService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewCompletionService(apiKey, model, baseURL string) *CompletionService {
	return &CompletionService{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: completionTimeout,
		},
	}
}

type completionRequest struct {
	Model       string               `json:"model"`
	Messages    []models.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
	MaxTokens   int                  `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the system prompt plus conversation upstream and returns the
// generated reply. Any failure is returned as an error for the gateway to
// convert into an opaque 500; upstream detail never reaches the client.
func (s *CompletionService) Complete(ctx context.Context, systemPrompt string, conversation []models.ChatMessage) (string, error) {
	messages := make([]models.ChatMessage, 0, 1+len(conversation))
	messages = append(messages, models.ChatMessage{Role: "system", Content: systemPrompt})
	messages = append(messages, conversation...)

	body, err := json.Marshal(completionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		middleware.RecordUpstreamRequest(s.model, "transport_error", time.Since(start))
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()
	middleware.RecordUpstreamRequest(s.model, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return fallbackReply, nil
	}
	return completion.Choices[0].Message.Content, nil
}

package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rebateatlas-backend/internal/models"
)

func TestCompleteSendsSystemPromptFirst(t *testing.T) {
	var got completionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"Here are your rebates."}}]}`))
	}))
	defer server.Close()

	svc := NewCompletionService("sk-test", "gpt-4o-mini", server.URL)

	reply, err := svc.Complete(context.Background(), "SYSTEM PROMPT", []models.ChatMessage{
		{Role: "user", Content: "What rebates can I get?"},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if reply != "Here are your rebates." {
		t.Errorf("unexpected reply %q", reply)
	}

	if got.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", got.Model)
	}
	if got.Temperature != 0.5 || got.MaxTokens != 1200 {
		t.Errorf("sampling parameters = %v / %v, want 0.5 / 1200", got.Temperature, got.MaxTokens)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || got.Messages[0].Content != "SYSTEM PROMPT" {
		t.Errorf("first message should carry the system prompt, got %+v", got.Messages[0])
	}
	if got.Messages[1].Role != "user" {
		t.Errorf("conversation should follow the system prompt, got %+v", got.Messages[1])
	}
}

func TestCompleteUpstreamErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewCompletionService("sk-test", "gpt-4o-mini", server.URL)

	_, err := svc.Complete(context.Background(), "p", []models.ChatMessage{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatal("expected error on non-200 upstream status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry the status for server-side logging: %v", err)
	}
}

func TestCompleteEmptyChoicesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	svc := NewCompletionService("sk-test", "gpt-4o-mini", server.URL)

	reply, err := svc.Complete(context.Background(), "p", nil)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if reply != fallbackReply {
		t.Errorf("expected fallback reply, got %q", reply)
	}
}

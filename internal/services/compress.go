package services

import (
	"strings"

	"rebateatlas-backend/internal/models"
)

const (
	// maxRecentMessages is how many trailing messages survive verbatim.
	maxRecentMessages = 6
	// summaryTruncateAt bounds each summarized message's contribution.
	summaryTruncateAt = 200
)

// CompressConversation bounds upstream token cost on long conversations.
// Up to six messages pass through untouched; anything older is collapsed
// into one synthetic user message summarizing each turn in order. Recency
// stays exact, older context stays approximate.
func CompressConversation(messages []models.ChatMessage) []models.ChatMessage {
	if len(messages) <= maxRecentMessages {
		return messages
	}

	older := messages[:len(messages)-maxRecentMessages]
	recent := messages[len(messages)-maxRecentMessages:]

	parts := make([]string, 0, len(older))
	for _, m := range older {
		role := "AI"
		if m.Role == "user" {
			role = "User"
		}
		content := m.Content
		// Character count, not bytes; slicing bytes could split a rune.
		if runes := []rune(content); len(runes) > summaryTruncateAt {
			content = string(runes[:summaryTruncateAt]) + "..."
		}
		parts = append(parts, role+": "+content)
	}

	summary := models.ChatMessage{
		Role:    "user",
		Content: "[Previous conversation summary: " + strings.Join(parts, " | ") + "]",
	}

	out := make([]models.ChatMessage, 0, 1+len(recent))
	out = append(out, summary)
	out = append(out, recent...)
	return out
}

package models

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint. The conversation is
// entirely client-supplied; nothing is persisted between requests.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Zip      string        `json:"zip,omitempty"`
	State    string        `json:"state,omitempty"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

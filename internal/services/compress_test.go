package services

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"rebateatlas-backend/internal/models"
)

func makeConversation(n int) []models.ChatMessage {
	msgs := make([]models.ChatMessage, 0, n)
	for i := 0; i < n; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		msgs = append(msgs, models.ChatMessage{Role: role, Content: fmt.Sprintf("message %d", i)})
	}
	return msgs
}

func TestCompressShortConversationUnchanged(t *testing.T) {
	for _, n := range []int{0, 1, 3, 6} {
		msgs := makeConversation(n)
		out := CompressConversation(msgs)
		if len(out) != n {
			t.Errorf("conversation of %d messages should pass through, got %d", n, len(out))
		}
		for i := range msgs {
			if out[i] != msgs[i] {
				t.Errorf("message %d altered: %+v", i, out[i])
			}
		}
	}
}

func TestCompressLongConversation(t *testing.T) {
	msgs := makeConversation(10)
	out := CompressConversation(msgs)

	if len(out) != 7 {
		t.Fatalf("expected 1 summary + 6 recent = 7 messages, got %d", len(out))
	}

	summary := out[0]
	if summary.Role != "user" {
		t.Errorf("summary role = %q, want user", summary.Role)
	}
	if !strings.HasPrefix(summary.Content, "[Previous conversation summary: ") {
		t.Errorf("summary content missing prefix: %q", summary.Content)
	}
	if !strings.HasSuffix(summary.Content, "]") {
		t.Errorf("summary content missing closing bracket: %q", summary.Content)
	}
	// The four replaced messages appear in order with role labels.
	for i := 0; i < 4; i++ {
		role := "User"
		if i%2 == 1 {
			role = "AI"
		}
		want := fmt.Sprintf("%s: message %d", role, i)
		if !strings.Contains(summary.Content, want) {
			t.Errorf("summary missing %q", want)
		}
	}
	if strings.Count(summary.Content, " | ") != 3 {
		t.Errorf("expected 3 separators between 4 summarized turns, got %d", strings.Count(summary.Content, " | "))
	}

	// Last six survive verbatim in order.
	for i := 0; i < 6; i++ {
		if out[i+1] != msgs[i+4] {
			t.Errorf("recent message %d altered: got %+v, want %+v", i, out[i+1], msgs[i+4])
		}
	}
}

func TestCompressTruncatesOldMessages(t *testing.T) {
	msgs := makeConversation(7)
	msgs[0].Content = strings.Repeat("x", 300)
	out := CompressConversation(msgs)

	want := "User: " + strings.Repeat("x", 200) + "..."
	if !strings.Contains(out[0].Content, want) {
		t.Error("old message should be truncated to 200 chars with ellipsis")
	}
	if strings.Contains(out[0].Content, strings.Repeat("x", 201)) {
		t.Error("more than 200 chars of the old message leaked into the summary")
	}
}

func TestCompressTruncatesOldMessagesByCharacter(t *testing.T) {
	msgs := makeConversation(7)
	msgs[0].Content = strings.Repeat("é", 300)
	out := CompressConversation(msgs)

	if !utf8.ValidString(out[0].Content) {
		t.Fatal("truncation split a rune in the summary")
	}
	want := "User: " + strings.Repeat("é", 200) + "..."
	if !strings.Contains(out[0].Content, want) {
		t.Error("old message should keep 200 whole characters, not 200 bytes")
	}
}

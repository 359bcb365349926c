package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

var testOrigins = []string{
	"https://rebateatlas.netlify.app",
	"https://rebateatlas.org",
	"https://www.rebateatlas.org",
}

func runCORS(t *testing.T, method, origin string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	reached := false
	handler := CORS(testOrigins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/api/v1/chat", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr, reached
}

func TestCORSOriginSelection(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		expected string
	}{
		{"primary origin", "https://rebateatlas.netlify.app", "https://rebateatlas.netlify.app"},
		{"apex custom domain", "https://rebateatlas.org", "https://rebateatlas.org"},
		{"www custom domain", "https://www.rebateatlas.org", "https://www.rebateatlas.org"},
		{"deploy preview", "https://fix-chat-widget--rebateatlas.netlify.app", "https://fix-chat-widget--rebateatlas.netlify.app"},
		{"unknown origin gets primary", "https://evil.example.com", "https://rebateatlas.netlify.app"},
		{"no origin header gets primary", "", "https://rebateatlas.netlify.app"},
		{"http preview rejected", "http://fix-chat--rebateatlas.netlify.app", "https://rebateatlas.netlify.app"},
		{"preview lookalike rejected", "https://x--rebateatlas.netlify.app.evil.com", "https://rebateatlas.netlify.app"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr, _ := runCORS(t, http.MethodPost, tc.origin)
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tc.expected {
				t.Errorf("Allow-Origin = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestCORSPreflightTerminates(t *testing.T) {
	rr, reached := runCORS(t, http.MethodOptions, "https://rebateatlas.org")

	if reached {
		t.Error("OPTIONS must not reach the inner handler")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("preflight body should be empty, got %q", rr.Body.String())
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); got != "POST, OPTIONS" {
		t.Errorf("Allow-Methods = %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
		t.Errorf("Allow-Headers = %q", got)
	}
}

func TestCORSHeadersOnActualRequest(t *testing.T) {
	rr, reached := runCORS(t, http.MethodPost, "https://rebateatlas.org")

	if !reached {
		t.Fatal("POST should pass through to the inner handler")
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://rebateatlas.org" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

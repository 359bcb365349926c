package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"rebateatlas-backend/internal/location"
	"rebateatlas-backend/internal/middleware"
	"rebateatlas-backend/internal/models"
	"rebateatlas-backend/internal/services"
)

const (
	maxMessages      = 20
	maxMessageLength = 2000
)

type completionService interface {
	Complete(ctx context.Context, systemPrompt string, conversation []models.ChatMessage) (string, error)
}

type enrichmentService interface {
	FetchAffiliateCatalog(ctx context.Context) (models.AffiliateCatalog, bool)
	FetchStateProfile(ctx context.Context, stateCode string) (*models.StateRebateProfile, bool)
}

type rateLimiter interface {
	Allow(ctx context.Context, clientID string) bool
}

type ChatHandler struct {
	limiter    rateLimiter
	enrichment enrichmentService
	completion completionService
	log        *logrus.Logger
}

func NewChatHandler(limiter rateLimiter, enrichment enrichmentService, completion completionService, log *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		limiter:    limiter,
		enrichment: enrichment,
		completion: completion,
		log:        log,
	}
}

// rawChatRequest defers message decoding so individually malformed entries
// can be dropped instead of failing the whole request.
type rawChatRequest struct {
	Messages []json.RawMessage `json:"messages"`
	Zip      string            `json:"zip"`
	State    string            `json:"state"`
}

func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rawChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if len(req.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "No messages provided", r))
		return
	}
	if len(req.Messages) > maxMessages {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Conversation too long. Please start a new chat.", r))
		return
	}

	sanitized := sanitizeMessages(req.Messages)
	if len(sanitized) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "No messages provided", r))
		return
	}

	clientIP := clientIP(r)
	if !h.limiter.Allow(ctx, clientIP) {
		middleware.RecordRateLimited()
		h.log.WithField("client_ip", clientIP).Warn("rate limit exceeded")
		w.Header().Set("Retry-After", "60")
		writeJSON(w, http.StatusTooManyRequests, errorResp("RATE_LIMITED", "Too many requests. Please wait a moment before trying again.", r))
		return
	}

	// The affiliate catalog and the location-dependent state profile are
	// independent; fetch them in parallel. Either can fail without aborting
	// the request.
	var (
		wg      sync.WaitGroup
		catalog models.AffiliateCatalog
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		catalog, _ = h.enrichment.FetchAffiliateCatalog(ctx)
	}()
	locCtx := h.resolveLocation(ctx, req.Zip, req.State)
	wg.Wait()

	conversation := services.CompressConversation(sanitized)
	systemPrompt := services.BuildSystemPrompt(catalog, locCtx)

	reply, err := h.completion.Complete(ctx, systemPrompt, conversation)
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"client_ip":  clientIP,
			"request_id": r.Header.Get("X-Request-ID"),
		}).WithError(err).Error("upstream completion failed")
		writeJSON(w, http.StatusInternalServerError, errorResp("UPSTREAM_ERROR", "An unexpected error occurred. Please try again.", r))
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

// sanitizeMessages keeps only well-formed user/assistant messages and bounds
// their length. Invalid entries are dropped silently.
func sanitizeMessages(raw []json.RawMessage) []models.ChatMessage {
	out := make([]models.ChatMessage, 0, len(raw))
	for _, data := range raw {
		var m models.ChatMessage
		if err := json.Unmarshal(data, &m); err != nil {
			continue
		}
		if m.Role != "user" && m.Role != "assistant" {
			continue
		}
		// Bound in characters, not bytes; a byte slice could split a rune.
		if runes := []rune(m.Content); len(runes) > maxMessageLength {
			m.Content = string(runes[:maxMessageLength])
		}
		out = append(out, m)
	}
	return out
}

// resolveLocation classifies the request into one of the five location
// outcomes and loads the matching state profile when one exists.
func (h *ChatHandler) resolveLocation(ctx context.Context, zip, state string) services.LocationContext {
	zip = strings.TrimSpace(zip)
	state = strings.ToUpper(strings.TrimSpace(state))

	// Malformed ZIPs never reach the resolver; they degrade to the
	// state-parameter path as if no ZIP was given.
	if zip != "" && !location.ValidZip(zip) {
		zip = ""
	}

	if zip == "" {
		if state != "" {
			if profile, ok := h.enrichment.FetchStateProfile(ctx, state); ok {
				return services.LocationContext{
					Outcome: services.LocationStateParam,
					State:   state,
					Profile: profile,
				}
			}
		}
		return services.LocationContext{Outcome: services.LocationNone}
	}

	if loc, ok := location.Resolve(zip); ok {
		if profile, ok := h.enrichment.FetchStateProfile(ctx, loc.State); ok {
			return services.LocationContext{
				Outcome: services.LocationCityState,
				Zip:     zip,
				City:    loc.City,
				State:   loc.State,
				Profile: profile,
			}
		}
	}

	// Prefix lookup or profile fetch fell through; a client-supplied state
	// is the last resort before the honest "no local data" instruction.
	if state != "" {
		if profile, ok := h.enrichment.FetchStateProfile(ctx, state); ok {
			return services.LocationContext{
				Outcome: services.LocationStateOnly,
				Zip:     zip,
				State:   state,
				Profile: profile,
			}
		}
	}

	return services.LocationContext{Outcome: services.LocationZipUnknown, Zip: zip}
}

// clientIP walks the forwarded-for chain the way the edge populates it:
// first X-Forwarded-For hop, then X-Real-IP, then "unknown". RemoteAddr is
// not consulted; behind the platform proxy it is never the caller.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.Index(xff, ","); i >= 0 {
			xff = xff[:i]
		}
		if ip := strings.TrimSpace(xff); ip != "" {
			return ip
		}
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return "unknown"
}

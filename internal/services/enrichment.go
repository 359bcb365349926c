package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"rebateatlas-backend/internal/middleware"
	"rebateatlas-backend/internal/models"
)

const (
	enrichmentTimeout  = 10 * time.Second
	enrichmentCacheTTL = 5 * time.Minute
	maxEnrichmentBody  = 2 << 20 // static JSON documents are small
)

// EnrichmentService fetches the affiliate catalog and per-state rebate
// profiles from the site's own static JSON. Every failure is tolerated: the
// caller gets a not-found result and the prompt simply loses a section.
type EnrichmentService struct {
	siteURL    string
	httpClient *http.Client
	cache      *redis.Client // nil disables caching
	log        *logrus.Logger
}

func NewEnrichmentService(siteURL string, cache *redis.Client, log *logrus.Logger) *EnrichmentService {
	return &EnrichmentService{
		siteURL: strings.TrimRight(siteURL, "/"),
		httpClient: &http.Client{
			Timeout: enrichmentTimeout,
		},
		cache: cache,
		log:   log,
	}
}

// FetchAffiliateCatalog loads /affiliates.json. ok=false means the chat
// proceeds without affiliate suggestions.
func (e *EnrichmentService) FetchAffiliateCatalog(ctx context.Context) (models.AffiliateCatalog, bool) {
	var catalog models.AffiliateCatalog
	if !e.fetchJSON(ctx, "affiliates", e.siteURL+"/affiliates.json", &catalog) {
		return nil, false
	}
	return catalog, true
}

// FetchStateProfile loads /data/states/{xx}.json for a two-letter state code.
// ok=false covers both missing data and fetch failure; the gateway treats
// them the same.
func (e *EnrichmentService) FetchStateProfile(ctx context.Context, stateCode string) (*models.StateRebateProfile, bool) {
	code := strings.ToLower(strings.TrimSpace(stateCode))
	if len(code) != 2 {
		return nil, false
	}

	var profile models.StateRebateProfile
	url := fmt.Sprintf("%s/data/states/%s.json", e.siteURL, code)
	if !e.fetchJSON(ctx, "state:"+code, url, &profile) {
		return nil, false
	}
	return &profile, true
}

// fetchJSON retrieves and decodes one document, consulting the cache first
// when one is configured. Cache errors are ignored; the origin fetch is the
// source of truth.
func (e *EnrichmentService) fetchJSON(ctx context.Context, cacheKey, url string, out interface{}) bool {
	if e.cache != nil {
		if raw, err := e.cache.Get(ctx, "enrich:"+cacheKey).Bytes(); err == nil {
			if json.Unmarshal(raw, out) == nil {
				return true
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		e.warn(cacheKey, err)
		return false
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.warn(cacheKey, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e.warn(cacheKey, fmt.Errorf("unexpected status %d", resp.StatusCode))
		return false
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxEnrichmentBody))
	if err != nil {
		e.warn(cacheKey, err)
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		e.warn(cacheKey, fmt.Errorf("decoding body: %w", err))
		return false
	}

	if e.cache != nil {
		e.cache.Set(ctx, "enrich:"+cacheKey, raw, enrichmentCacheTTL)
	}
	return true
}

func (e *EnrichmentService) warn(source string, err error) {
	middleware.RecordEnrichmentFailure(source)
	e.log.WithFields(logrus.Fields{
		"source": source,
	}).WithError(err).Warn("enrichment fetch failed")
}

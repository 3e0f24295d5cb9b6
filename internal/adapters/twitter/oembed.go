package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"contributorsboard/internal/domain"
)

// DefaultOEmbedEndpoint is the public X/Twitter oEmbed API.
const DefaultOEmbedEndpoint = "https://publish.twitter.com/oembed"

// OEmbedConfig configures the oEmbed fetcher.
type OEmbedConfig struct {
	Endpoint    string
	MaxAttempts int
	RetryDelay  time.Duration
}

type oembedResponse struct {
	HTML string `json:"html"`
}

type oembedFetcher struct {
	client *http.Client
	logger *slog.Logger
	cfg    OEmbedConfig

	mu    sync.RWMutex
	cache map[string]string
}

// NewOEmbedFetcher returns a domain.EmbedFetcher backed by the oEmbed API.
// Each Fetch makes up to cfg.MaxAttempts requests, cfg.RetryDelay apart, and
// caches successful markup per URL.
func NewOEmbedFetcher(client *http.Client, logger *slog.Logger, cfg OEmbedConfig) domain.EmbedFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultOEmbedEndpoint
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &oembedFetcher{
		client: client,
		logger: logger,
		cfg:    cfg,
		cache:  make(map[string]string),
	}
}

func (f *oembedFetcher) Fetch(ctx context.Context, postURL string) (string, error) {
	f.mu.RLock()
	html, ok := f.cache[postURL]
	f.mu.RUnlock()
	if ok {
		return html, nil
	}

	var lastErr error
	for attempt := 1; attempt <= f.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %w", domain.ErrEmbedUnavailable, ctx.Err())
			case <-time.After(f.cfg.RetryDelay):
			}
		}
		html, lastErr = f.fetchOnce(ctx, postURL)
		if lastErr == nil {
			f.mu.Lock()
			f.cache[postURL] = html
			f.mu.Unlock()
			return html, nil
		}
		f.logger.DebugContext(ctx, "oembed attempt failed", "url", postURL, "attempt", attempt, "err", lastErr)
	}
	return "", fmt.Errorf("%w: %w", domain.ErrEmbedUnavailable, lastErr)
}

func (f *oembedFetcher) fetchOnce(ctx context.Context, postURL string) (string, error) {
	q := url.Values{}
	q.Set("url", postURL)
	q.Set("theme", "dark")
	q.Set("align", "center")
	q.Set("dnt", "true")
	q.Set("omit_script", "true")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.Endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch oembed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oembed api returned status: %d", resp.StatusCode)
	}

	var data oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode oembed response: %w", err)
	}
	if data.HTML == "" {
		return "", fmt.Errorf("oembed response has no html")
	}
	return data.HTML, nil
}

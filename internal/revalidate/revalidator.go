// Package revalidate signals the rendering layer that a cached path is
// stale. The signal is fire-and-forget: failures are logged, never
// propagated to the caller.
package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/portfolio-cms-api/internal/config"
	"github.com/rs/zerolog"
)

// WebhookRevalidator POSTs stale paths to the site's revalidation webhook
type WebhookRevalidator struct {
	httpClient *http.Client
	url        string
	secret     string
	log        zerolog.Logger
}

// New creates a webhook revalidator. An empty webhook URL yields a no-op
// revalidator, which keeps local development free of a rendering layer.
func New(cfg *config.SiteConfig, log zerolog.Logger) *WebhookRevalidator {
	return &WebhookRevalidator{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		url:        cfg.RevalidateURL,
		secret:     cfg.RevalidateSecret,
		log:        log.With().Str("component", "revalidate").Logger(),
	}
}

type revalidatePayload struct {
	Path   string `json:"path"`
	Secret string `json:"secret,omitempty"`
}

// Revalidate marks each path as stale. No return value: the next scheduled
// run retries implicitly and the rendering layer re-fetches on demand
// anyway.
func (r *WebhookRevalidator) Revalidate(ctx context.Context, paths ...string) {
	if r.url == "" {
		return
	}

	for _, path := range paths {
		body, err := json.Marshal(revalidatePayload{Path: path, Secret: r.secret})
		if err != nil {
			continue
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
		if err != nil {
			r.log.Warn().Err(err).Str("path", path).Msg("Failed to build revalidation request")
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := r.httpClient.Do(req)
		if err != nil {
			r.log.Warn().Err(err).Str("path", path).Msg("Revalidation call failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 400 {
			r.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("Revalidation rejected")
			continue
		}

		r.log.Debug().Str("path", path).Msg("Path revalidated")
	}
}

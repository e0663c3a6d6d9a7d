// Package client is the consumer-side wrapper around the discovery
// endpoint: bounded retry with linear backoff and a per-attempt timeout.
// Attempts are strictly sequential; the inter-attempt wait respects
// cancellation instead of blocking.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"moodtunes/internal/models"
	"moodtunes/shared/apperrors"
)

const (
	maxAttempts    = 3
	attemptTimeout = 10 * time.Second
	baseBackoff    = time.Second
)

type Client struct {
	baseURL    string
	httpClient *http.Client

	attempts int
	timeout  time.Duration
	backoff  time.Duration

	// waitFn sits between attempts; swapped out in tests.
	waitFn func(ctx context.Context, d time.Duration) error
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		attempts:   maxAttempts,
		timeout:    attemptTimeout,
		backoff:    baseBackoff,
		waitFn:     ctxWait,
	}
}

func ctxWait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Discover submits the mood text, retrying transient failures. Retryable
// failures are re-attempted up to three times with waits of backoff*n in
// between; non-retryable failures are terminal on the first attempt.
func (c *Client) Discover(ctx context.Context, mood, language string) (*models.DiscoveryResponse, error) {
	var lastErr error

	for attempt := 1; attempt <= c.attempts; attempt++ {
		response, err := c.attempt(ctx, mood, language)
		if err == nil {
			return response, nil
		}
		lastErr = err

		if !apperrors.IsRetryable(err) {
			return nil, err
		}
		if attempt == c.attempts {
			break
		}

		wait := c.backoff * time.Duration(attempt)
		slog.WarnContext(ctx, "retrying discovery",
			"attempt", attempt,
			"max_attempts", c.attempts,
			"backoff_ms", wait.Milliseconds(),
			"error", err)
		if err := c.waitFn(ctx, wait); err != nil {
			return nil, apperrors.Network("Discovery was cancelled.", err)
		}
	}

	return nil, apperrors.Network("Discovery failed after repeated attempts.", lastErr)
}

func (c *Client) attempt(ctx context.Context, mood, language string) (*models.DiscoveryResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(map[string]string{
		"mood":     mood,
		"language": language,
	})
	if err != nil {
		return nil, apperrors.Server(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/discover", bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.Server(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	defer resp.Body.Close()

	var body models.DiscoveryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.New(kindFromStatus(resp.StatusCode),
			"", fmt.Errorf("undecodable response (status %d): %w", resp.StatusCode, err))
	}

	if !body.Success {
		kind := apperrors.Kind(body.Code)
		if kind == "" {
			kind = kindFromStatus(resp.StatusCode)
		}
		return nil, apperrors.New(kind, body.Error, nil)
	}

	return &body, nil
}

// kindFromStatus maps a bare transport status onto the taxonomy, for
// responses whose body carries no machine-readable code.
func kindFromStatus(status int) apperrors.Kind {
	switch status {
	case http.StatusBadRequest:
		return apperrors.KindValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.KindAuth
	case http.StatusTooManyRequests:
		return apperrors.KindRateLimit
	case http.StatusBadGateway, http.StatusGatewayTimeout:
		return apperrors.KindNetwork
	case http.StatusServiceUnavailable:
		return apperrors.KindAPI
	default:
		return apperrors.KindServer
	}
}

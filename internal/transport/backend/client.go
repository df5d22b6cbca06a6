// Package backend implements HTTP clients for the search, QA and entity linking services.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/domain"
	"github.com/kailas-cloud/cardex/internal/logger"
)

// Backend names used in logs and metric labels.
const (
	NameArticles    = "articles"
	NameQA          = "qa"
	NameRestaurants = "restaurants"
	NameLinker      = "entity_linker"
)

// Options holds what every backend client shares.
type Options struct {
	// Timeout bounds one request. Zero keeps the transport default.
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
	// RequestsTotal is a counter vec with labels backend and status, may be nil.
	RequestsTotal *prometheus.CounterVec
	// RequestDuration is a histogram vec with label backend, may be nil.
	RequestDuration *prometheus.HistogramVec
}

type caller struct {
	http     *http.Client
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newCaller(opts Options) caller {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return caller{http: hc, total: opts.RequestsTotal, duration: opts.RequestDuration}
}

// postJSON sends body to endpoint and decodes a 200 response into out.
// Any failure wraps domain.ErrBackendUnavailable and is logged at Warn.
func (c caller) postJSON(ctx context.Context, backend, endpoint string, body, out any) error {
	start := time.Now()
	status, err := c.do(ctx, endpoint, body, out)
	c.observe(backend, status, time.Since(start))
	if err != nil {
		logger.FromContext(ctx).Warn("Backend request failed",
			zap.String("backend", backend),
			zap.String("endpoint", endpoint),
			zap.String("status", status),
			zap.Error(err),
		)
		return fmt.Errorf("%s: %w: %w", backend, domain.ErrBackendUnavailable, err)
	}
	return nil
}

func (c caller) do(ctx context.Context, endpoint string, body, out any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "encode_error", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "request_error", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "transport_error", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	status := strconv.Itoa(resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		return status, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return "decode_error", fmt.Errorf("failed to decode response: %w", err)
	}
	return status, nil
}

func (c caller) observe(backend, status string, elapsed time.Duration) {
	if c.total != nil {
		c.total.WithLabelValues(backend, status).Inc()
	}
	if c.duration != nil {
		c.duration.WithLabelValues(backend).Observe(elapsed.Seconds())
	}
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/metrics"
)

// Endpoint names used in logs, metrics and errors.
const (
	endpointSearch   = "search"
	endpointEpisodes = "episodes"
)

// getJSON performs a GET against the catalog and decodes the JSON body into target.
// It returns the raw status for the caller to map 404s to a domain error.
func (c *client) getJSON(ctx context.Context, endpoint, rawURL string, target interface{}) (int, error) {
	logger := config.GetLogger()
	start := time.Now()
	status := "error"
	defer func() {
		metrics.CatalogRequestsTotal.WithLabelValues(endpoint, status).Inc()
		metrics.CatalogRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)
	logger.Debug().
		Str("endpoint", endpoint).
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Catalog responded")

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, &apperrors.ErrUpstreamStatus{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return resp.StatusCode, apperrors.NewMalformedPayloadError(endpoint, "invalid JSON", err)
	}

	return resp.StatusCode, nil
}

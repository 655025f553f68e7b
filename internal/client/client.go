package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// Client defines the interface for querying the show catalog
type Client interface {
	// SearchShows returns the shows matching term, in catalog order.
	// The term is forwarded as-is; the catalog defines matching semantics.
	SearchShows(ctx context.Context, term string) ([]models.Show, error)

	// GetEpisodes returns the episodes of the given show, in catalog order.
	GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error)

	// Close releases idle connections held by the client.
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient       *http.Client
	baseURL          string
	fallbackImageURL string
	userAgent        string
}

// NewClient creates a new catalog client with proxy configuration if provided
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	// No timeout unless configured: requests are bound to the caller's context instead.
	var timeout time.Duration
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, requests will not time out")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve its pooling and HTTP/2 settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	baseURL := cfg.CatalogURL
	if baseURL == "" {
		baseURL = config.DefaultCatalogURL
	}
	fallback := cfg.FallbackImageURL
	if fallback == "" {
		fallback = config.DefaultFallbackImageURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.GetUserAgent()
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newCompressionTransport(baseTransport),
		},
		baseURL:          baseURL,
		fallbackImageURL: fallback,
		userAgent:        userAgent,
	}
}

// Close releases idle connections held by the underlying transport.
func (c *client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

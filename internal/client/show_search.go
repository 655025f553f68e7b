package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// SearchShows queries the catalog search endpoint and normalizes every match.
// Any failure (transport, status, payload) is returned without retry.
func (c *client) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	logger := config.GetLogger()

	params := url.Values{}
	params.Set("q", term)
	searchURL := fmt.Sprintf("%s/search/shows?%s", c.baseURL, params.Encode())

	var results []catalogSearchResult
	if _, err := c.getJSON(ctx, endpointSearch, searchURL, &results); err != nil {
		logger.Error().Err(err).Str("term", term).Msg("Show search failed")
		return nil, fmt.Errorf("search shows %q: %w", term, err)
	}

	shows := make([]models.Show, 0, len(results))
	for i, result := range results {
		show, err := result.toShow(i, c.fallbackImageURL)
		if err != nil {
			logger.Error().Err(err).Str("term", term).Msg("Rejected show search payload")
			return nil, fmt.Errorf("search shows %q: %w", term, err)
		}
		shows = append(shows, show)
	}

	logger.Info().Str("term", term).Int("count", len(shows)).Msg("Show search completed")
	return shows, nil
}

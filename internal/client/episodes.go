package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// GetEpisodes fetches the episode list of a show. The show id is not validated
// locally; an id unknown to the catalog yields an apperrors.ErrNotFound.
func (c *client) GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error) {
	logger := config.GetLogger()
	episodesURL := fmt.Sprintf("%s/shows/%d/episodes", c.baseURL, showID)

	var payload []catalogEpisode
	status, err := c.getJSON(ctx, endpointEpisodes, episodesURL, &payload)
	if err != nil {
		if status == http.StatusNotFound {
			err = errors.Join(apperrors.NewShowNotFoundError(showID), err)
		}
		logger.Error().Err(err).Int("show_id", showID).Msg("Episode lookup failed")
		return nil, fmt.Errorf("get episodes of show %d: %w", showID, err)
	}

	episodes := make([]models.Episode, 0, len(payload))
	for i, ep := range payload {
		episode, err := ep.toEpisode(i)
		if err != nil {
			logger.Error().Err(err).Int("show_id", showID).Msg("Rejected episode payload")
			return nil, fmt.Errorf("get episodes of show %d: %w", showID, err)
		}
		episodes = append(episodes, episode)
	}

	logger.Info().Int("show_id", showID).Int("count", len(episodes)).Msg("Episode lookup completed")
	return episodes, nil
}

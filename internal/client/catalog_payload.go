package client

import (
	"fmt"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// Wire types for the TVmaze payloads. Pointers mark the fields that must be
// present: a nil pointer after decoding means the catalog omitted the field or sent null.

// catalogSearchResult is one element of the /search/shows array
type catalogSearchResult struct {
	Score float64      `json:"score"`
	Show  *catalogShow `json:"show"`
}

type catalogShow struct {
	ID      *int          `json:"id"`
	Name    string        `json:"name"`
	Summary *string       `json:"summary"`
	Image   *catalogImage `json:"image"`
}

type catalogImage struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// catalogEpisode is one element of the /shows/{id}/episodes array
type catalogEpisode struct {
	ID     *int                `json:"id"`
	Name   *string             `json:"name"`
	Season *models.SeasonLabel `json:"season"`
	Number *int                `json:"number"`
}

// toShow normalizes a search result, substituting the fallback image when the
// catalog has none. index is only used to point at the offending element.
func (r catalogSearchResult) toShow(index int, fallbackImage string) (models.Show, error) {
	if r.Show == nil {
		return models.Show{}, apperrors.NewMalformedPayloadError(endpointSearch, fmt.Sprintf("result %d has no show", index), nil)
	}
	if r.Show.ID == nil {
		return models.Show{}, apperrors.NewMalformedPayloadError(endpointSearch, fmt.Sprintf("result %d show has no id", index), nil)
	}

	image := fallbackImage
	if r.Show.Image != nil && r.Show.Image.Medium != "" {
		image = r.Show.Image.Medium
	}

	summary := ""
	if r.Show.Summary != nil {
		summary = *r.Show.Summary
	}

	return models.Show{
		ID:      *r.Show.ID,
		Name:    r.Show.Name,
		Summary: summary,
		Image:   image,
	}, nil
}

// toEpisode copies the episode fields verbatim; a missing field fails the element.
func (e catalogEpisode) toEpisode(index int) (models.Episode, error) {
	missing := ""
	switch {
	case e.ID == nil:
		missing = "id"
	case e.Name == nil:
		missing = "name"
	case e.Season == nil:
		missing = "season"
	case e.Number == nil:
		missing = "number"
	}
	if missing != "" {
		return models.Episode{}, apperrors.NewMalformedPayloadError(endpointEpisodes, fmt.Sprintf("episode %d has no %s", index, missing), nil)
	}

	return models.Episode{
		ID:     *e.ID,
		Name:   *e.Name,
		Season: *e.Season,
		Number: *e.Number,
	}, nil
}

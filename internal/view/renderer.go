package view

import (
	"fmt"
	"html/template"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/metrics"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// Renderer projects record lists onto the regions it was given. Both render
// operations are idempotent: a call fully determines the region's content.
type Renderer struct {
	tpl          *Templates
	showsList    *Region
	episodesList *Region
	episodesArea *Region
}

// NewRenderer creates a renderer writing into the given regions
func NewRenderer(tpl *Templates, showsList, episodesList, episodesArea *Region) *Renderer {
	return &Renderer{
		tpl:          tpl,
		showsList:    showsList,
		episodesList: episodesList,
		episodesArea: episodesArea,
	}
}

// RenderShows replaces the show list with one fragment per show and hides the
// episode area, since a new search invalidates whatever episodes were shown.
// On error no region is modified.
func (r *Renderer) RenderShows(shows []models.Show) error {
	fragments := make([]template.HTML, 0, len(shows))
	for _, show := range shows {
		fragment, err := r.tpl.Show(show)
		if err != nil {
			return fmt.Errorf("render show %d: %w", show.ID, err)
		}
		fragments = append(fragments, fragment)
	}

	replace(r.showsList, fragments)
	r.episodesArea.Hide()

	logger := config.GetLogger()
	logger.Debug().Int("count", len(fragments)).Str("region", r.showsList.ID()).Msg("Rendered shows")
	return nil
}

// RenderEpisodes replaces the episode list with one item per episode and
// reveals the episode area. On error no region is modified.
func (r *Renderer) RenderEpisodes(episodes []models.Episode) error {
	fragments := make([]template.HTML, 0, len(episodes))
	for _, episode := range episodes {
		fragment, err := r.tpl.Episode(episode)
		if err != nil {
			return fmt.Errorf("render episode %d: %w", episode.ID, err)
		}
		fragments = append(fragments, fragment)
	}

	replace(r.episodesList, fragments)
	r.episodesArea.Show()

	logger := config.GetLogger()
	logger.Debug().Int("count", len(fragments)).Str("region", r.episodesList.ID()).Msg("Rendered episodes")
	return nil
}

func replace(region *Region, fragments []template.HTML) {
	region.Empty()
	for _, fragment := range fragments {
		region.Append(fragment)
	}
	metrics.FragmentsRenderedTotal.WithLabelValues(region.ID()).Add(float64(len(fragments)))
}

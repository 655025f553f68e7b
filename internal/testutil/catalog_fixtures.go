package testutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// IntPtr is a helper for creating *int values in tests
func IntPtr(v int) *int {
	return &v
}

// BoolPtr is a helper for creating *bool values in tests
func BoolPtr(v bool) *bool {
	return &v
}

// SearchResultOptions describes one wrapper of a /search/shows response
type SearchResultOptions struct {
	ShowID       int
	Name         string
	Summary      string
	NullSummary  bool
	ImageMedium  string
	IncludeImage *bool // defaults to true when ImageMedium is set
	NullImage    bool  // sends "image": null, as TVmaze does for shows without artwork
	OmitShow     bool
}

// GenerateSearchJSON renders a /search/shows payload shaped like the real TVmaze API
func GenerateSearchJSON(results []SearchResultOptions) string {
	items := make([]map[string]interface{}, 0, len(results))

	for i, r := range results {
		item := map[string]interface{}{
			"score": 0.9 - float64(i)*0.1,
		}
		if r.OmitShow {
			items = append(items, item)
			continue
		}

		if r.ShowID == 0 {
			r.ShowID = i + 1
		}
		if r.Name == "" {
			r.Name = fmt.Sprintf("Show %d", r.ShowID)
		}

		show := map[string]interface{}{
			"id":       r.ShowID,
			"url":      fmt.Sprintf("https://www.tvmaze.com/shows/%d", r.ShowID),
			"name":     r.Name,
			"type":     "Scripted",
			"language": "English",
			"genres":   []string{"Drama"},
		}
		if r.NullSummary {
			show["summary"] = nil
		} else {
			show["summary"] = r.Summary
		}

		includeImage := r.ImageMedium != ""
		if r.IncludeImage != nil {
			includeImage = *r.IncludeImage
		}
		switch {
		case r.NullImage:
			show["image"] = nil
		case includeImage:
			show["image"] = map[string]string{
				"medium":   r.ImageMedium,
				"original": strings.Replace(r.ImageMedium, "medium", "original", 1),
			}
		}

		item["show"] = show
		items = append(items, item)
	}

	return mustMarshal(items)
}

// EpisodeOptions describes one element of a /shows/{id}/episodes response.
// Season may be an int or a string; nil fields are omitted from the payload.
type EpisodeOptions struct {
	ID     *int
	Name   *string
	Season interface{}
	Number *int
}

// NewEpisode is a shortcut for a fully populated episode
func NewEpisode(id int, name string, season interface{}, number int) EpisodeOptions {
	return EpisodeOptions{ID: &id, Name: &name, Season: season, Number: &number}
}

// GenerateEpisodesJSON renders a /shows/{id}/episodes payload
func GenerateEpisodesJSON(episodes []EpisodeOptions) string {
	items := make([]map[string]interface{}, 0, len(episodes))
	for _, e := range episodes {
		item := map[string]interface{}{
			"runtime": 60,
			"type":    "regular",
		}
		if e.ID != nil {
			item["id"] = *e.ID
			item["url"] = fmt.Sprintf("https://www.tvmaze.com/episodes/%d", *e.ID)
		}
		if e.Name != nil {
			item["name"] = *e.Name
		}
		if e.Season != nil {
			item["season"] = e.Season
		}
		if e.Number != nil {
			item["number"] = *e.Number
		}
		items = append(items, item)
	}
	return mustMarshal(items)
}

func mustMarshal(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("testutil: marshal fixture: %v", err))
	}
	return string(data)
}

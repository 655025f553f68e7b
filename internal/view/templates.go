package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Belphemur/ShowFinder/internal/models"
)

//go:embed templates/*.html
var templateFiles embed.FS

// PageData feeds the full page template
type PageData struct {
	Term     string
	Document *Document
}

// areaData feeds the episode area template
type areaData struct {
	Area *Region
	List *Region
	OOB  bool // marks the area for an out-of-band swap when sent alongside another region
}

// Templates holds the parsed page and fragment templates
type Templates struct {
	set *template.Template
}

// LoadTemplates parses the embedded templates
func LoadTemplates() (*Templates, error) {
	set, err := template.New("showfinder").Funcs(template.FuncMap{
		// Summaries come from the catalog as HTML and are inserted as such.
		"rawHTML": func(s string) template.HTML { return template.HTML(s) },
		"area": func(doc *Document, oob bool) areaData {
			return areaData{Area: doc.EpisodesArea, List: doc.EpisodesList, OOB: oob}
		},
	}).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Templates{set: set}, nil
}

// MustLoadTemplates is LoadTemplates for program start-up
func MustLoadTemplates() *Templates {
	tpl, err := LoadTemplates()
	if err != nil {
		panic(err)
	}
	return tpl
}

// Show renders the fragment of a single show
func (t *Templates) Show(show models.Show) (template.HTML, error) {
	return t.fragment("show", show)
}

// Episode renders the list item of a single episode
func (t *Templates) Episode(episode models.Episode) (template.HTML, error) {
	return t.fragment("episode", episode)
}

func (t *Templates) fragment(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.set.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// WritePage writes the whole page
func (t *Templates) WritePage(w io.Writer, data PageData) error {
	return t.set.ExecuteTemplate(w, "page", data)
}

// WriteShowsList writes the show-list region followed by the episode area as
// an out-of-band swap, so hiding the episodes reaches the browser together with the shows.
func (t *Templates) WriteShowsList(w io.Writer, doc *Document) error {
	if err := t.set.ExecuteTemplate(w, "showsList", doc.ShowsList); err != nil {
		return err
	}
	return t.set.ExecuteTemplate(w, "episodesArea", areaData{Area: doc.EpisodesArea, List: doc.EpisodesList, OOB: true})
}

// WriteEpisodesArea writes the episode area, list included
func (t *Templates) WriteEpisodesArea(w io.Writer, doc *Document) error {
	return t.set.ExecuteTemplate(w, "episodesArea", areaData{Area: doc.EpisodesArea, List: doc.EpisodesList})
}

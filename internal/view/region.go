package view

import (
	"html/template"
	"strings"
)

// Identifiers of the regions the page is built from. The page markup and the
// htmx targets refer to them, so they are part of the contract with the browser.
const (
	ShowsListID    = "showsList"
	EpisodesListID = "episodesList"
	EpisodesAreaID = "episodesArea"
)

// Region is an addressable container of rendered fragments. The renderer that
// owns a region replaces its content wholesale; it is never patched.
type Region struct {
	id       string
	children []template.HTML
	hidden   bool
}

// NewRegion creates an empty, visible region
func NewRegion(id string) *Region {
	return &Region{id: id}
}

// ID returns the element id the region is addressed by
func (r *Region) ID() string {
	return r.id
}

// Empty removes every child fragment
func (r *Region) Empty() {
	r.children = nil
}

// Append adds a fragment after the existing ones
func (r *Region) Append(fragment template.HTML) {
	r.children = append(r.children, fragment)
}

// Children returns a copy of the fragments in display order
func (r *Region) Children() []template.HTML {
	out := make([]template.HTML, len(r.children))
	copy(out, r.children)
	return out
}

// Len returns the number of child fragments
func (r *Region) Len() int {
	return len(r.children)
}

// Content concatenates the fragments for insertion into the page
func (r *Region) Content() template.HTML {
	var sb strings.Builder
	for _, child := range r.children {
		sb.WriteString(string(child))
	}
	return template.HTML(sb.String())
}

func (r *Region) Show() {
	r.hidden = false
}

func (r *Region) Hide() {
	r.hidden = true
}

func (r *Region) Visible() bool {
	return !r.hidden
}

// Document groups the three regions a page is made of. The episode area wraps
// the episode list and only controls its visibility.
type Document struct {
	ShowsList    *Region
	EpisodesList *Region
	EpisodesArea *Region
}

// NewDocument returns the regions of a freshly loaded page: nothing listed and
// the episode area hidden until episodes are requested.
func NewDocument() *Document {
	doc := &Document{
		ShowsList:    NewRegion(ShowsListID),
		EpisodesList: NewRegion(EpisodesListID),
		EpisodesArea: NewRegion(EpisodesAreaID),
	}
	doc.EpisodesArea.Hide()
	return doc
}

// NewRenderer returns a renderer bound to the document's regions
func (d *Document) NewRenderer(tpl *Templates) *Renderer {
	return NewRenderer(tpl, d.ShowsList, d.EpisodesList, d.EpisodesArea)
}

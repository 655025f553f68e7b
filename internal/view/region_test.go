package view

import (
	"html/template"
	"testing"
)

func TestNewDocument_InitialState(t *testing.T) {
	doc := NewDocument()

	if doc.ShowsList.ID() != ShowsListID || doc.EpisodesList.ID() != EpisodesListID || doc.EpisodesArea.ID() != EpisodesAreaID {
		t.Error("Unexpected region ids")
	}
	if doc.EpisodesArea.Visible() {
		t.Error("Expected episode area to start hidden")
	}
	if !doc.ShowsList.Visible() {
		t.Error("Expected show list to start visible")
	}
	if doc.ShowsList.Len() != 0 || doc.EpisodesList.Len() != 0 {
		t.Error("Expected regions to start empty")
	}
}

func TestRegion_ChildrenIsACopy(t *testing.T) {
	region := NewRegion("r")
	region.Append(template.HTML("<li>a</li>"))

	children := region.Children()
	children[0] = "<li>changed</li>"

	if region.Content() != "<li>a</li>" {
		t.Errorf("Expected region to be unaffected, got %q", region.Content())
	}
}

func TestRegion_EmptyThenAppend(t *testing.T) {
	region := NewRegion("r")
	region.Append("<li>a</li>")
	region.Append("<li>b</li>")
	region.Empty()
	region.Append("<li>c</li>")

	if region.Len() != 1 || region.Content() != "<li>c</li>" {
		t.Errorf("Unexpected content %q", region.Content())
	}
}

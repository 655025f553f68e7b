package view

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/Belphemur/ShowFinder/internal/models"
)

func parseOutput(t *testing.T, buf *bytes.Buffer) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(buf)
	if err != nil {
		t.Fatalf("Failed to parse output: %v", err)
	}
	return doc
}

func TestWritePage_InitialPage(t *testing.T) {
	tpl := MustLoadTemplates()

	var buf bytes.Buffer
	if err := tpl.WritePage(&buf, PageData{Term: "girls", Document: NewDocument()}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	page := parseOutput(t, &buf)

	form := page.Find("form#searchForm")
	if form.Length() != 1 {
		t.Fatal("Expected the search form")
	}
	if target, _ := form.Attr("hx-target"); target != "#showsList" {
		t.Errorf("Expected form to target #showsList, got %q", target)
	}
	if value, _ := page.Find("input#searchForm-term").Attr("value"); value != "girls" {
		t.Errorf("Expected term to be prefilled, got %q", value)
	}
	if page.Find("#showsList").Length() != 1 || page.Find("#episodesList").Length() != 1 {
		t.Error("Expected both lists to be present")
	}
	if style, _ := page.Find("#episodesArea").Attr("style"); style != "display: none" {
		t.Errorf("Expected episode area to be hidden, got style %q", style)
	}
	if _, oob := page.Find("#episodesArea").Attr("hx-swap-oob"); oob {
		t.Error("Expected no out-of-band marker on the full page")
	}
}

func TestWriteShowsList_IncludesHiddenAreaOutOfBand(t *testing.T) {
	tpl := MustLoadTemplates()
	doc := NewDocument()
	if err := doc.NewRenderer(tpl).RenderShows([]models.Show{{ID: 1, Name: "One", Image: "http://x/1.png"}}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var buf bytes.Buffer
	if err := tpl.WriteShowsList(&buf, doc); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	out := parseOutput(t, &buf)

	if out.Find("#showsList .Show").Length() != 1 {
		t.Error("Expected one show in the list")
	}
	area := out.Find("#episodesArea")
	if oob, _ := area.Attr("hx-swap-oob"); oob != "true" {
		t.Errorf("Expected out-of-band swap, got %q", oob)
	}
	if style, _ := area.Attr("style"); style != "display: none" {
		t.Errorf("Expected hidden episode area, got style %q", style)
	}
}

func TestWriteEpisodesArea_Visible(t *testing.T) {
	tpl := MustLoadTemplates()
	doc := NewDocument()
	if err := doc.NewRenderer(tpl).RenderEpisodes([]models.Episode{{ID: 1, Name: "Pilot", Season: "1", Number: 1}}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var buf bytes.Buffer
	if err := tpl.WriteEpisodesArea(&buf, doc); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	out := parseOutput(t, &buf)

	area := out.Find("#episodesArea")
	if _, hidden := area.Attr("style"); hidden {
		t.Error("Expected visible episode area")
	}
	if text := area.Find("#episodesList li").Text(); text != "Pilot (season 1, number 1)" {
		t.Errorf("Unexpected item %q", text)
	}
}

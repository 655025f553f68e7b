package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
	"github.com/Belphemur/ShowFinder/internal/testutil"
)

const testFallbackImage = "http://fallback.test/doge.png"

func newTestClient(serverURL string) Client {
	return NewClient(&config.Config{
		CatalogURL:       serverURL,
		FallbackImageURL: testFallbackImage,
	})
}

func TestClient_SearchShows(t *testing.T) {
	body := testutil.GenerateSearchJSON([]testutil.SearchResultOptions{
		{ShowID: 1, Name: "Batman", Summary: "<p>The caped crusader.</p>"},
		{ShowID: 2, Name: "Batman: The Animated Series", Summary: "<p>Animated.</p>", ImageMedium: "http://x/img.png"},
	})

	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	shows, err := newTestClient(server.URL).SearchShows(context.Background(), "batman")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if gotPath != "/search/shows" {
		t.Errorf("Expected path /search/shows, got %s", gotPath)
	}
	if gotQuery != "batman" {
		t.Errorf("Expected q=batman, got %q", gotQuery)
	}

	expected := []models.Show{
		{ID: 1, Name: "Batman", Summary: "<p>The caped crusader.</p>", Image: testFallbackImage},
		{ID: 2, Name: "Batman: The Animated Series", Summary: "<p>Animated.</p>", Image: "http://x/img.png"},
	}
	if len(shows) != len(expected) {
		t.Fatalf("Expected %d shows, got %d", len(expected), len(shows))
	}
	for i := range expected {
		if shows[i] != expected[i] {
			t.Errorf("Show %d: expected %+v, got %+v", i, expected[i], shows[i])
		}
	}
}

func TestClient_SearchShows_ImageNeverEmpty(t *testing.T) {
	body := testutil.GenerateSearchJSON([]testutil.SearchResultOptions{
		{ShowID: 10, IncludeImage: testutil.BoolPtr(false)},
		{ShowID: 11, NullImage: true},
		{ShowID: 12, IncludeImage: testutil.BoolPtr(true), ImageMedium: ""},
		{ShowID: 13, ImageMedium: "http://static.tvmaze.com/medium/13.jpg"},
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	shows, err := newTestClient(server.URL).SearchShows(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(shows) != 4 {
		t.Fatalf("Expected 4 shows, got %d", len(shows))
	}

	for _, show := range shows[:3] {
		if show.Image != testFallbackImage {
			t.Errorf("Show %d: expected fallback image, got %q", show.ID, show.Image)
		}
	}
	if shows[3].Image != "http://static.tvmaze.com/medium/13.jpg" {
		t.Errorf("Expected catalog image for show 13, got %q", shows[3].Image)
	}
}

func TestClient_SearchShows_PreservesOrder(t *testing.T) {
	ids := []int{42, 7, 1000, 3}
	var results []testutil.SearchResultOptions
	for _, id := range ids {
		results = append(results, testutil.SearchResultOptions{ShowID: id})
	}
	body := testutil.GenerateSearchJSON(results)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	shows, err := newTestClient(server.URL).SearchShows(context.Background(), "x")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	for i, id := range ids {
		if shows[i].ID != id {
			t.Errorf("Position %d: expected show %d, got %d", i, id, shows[i].ID)
		}
	}
}

func TestClient_SearchShows_NullSummary(t *testing.T) {
	body := testutil.GenerateSearchJSON([]testutil.SearchResultOptions{{ShowID: 5, NullSummary: true}})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	shows, err := newTestClient(server.URL).SearchShows(context.Background(), "x")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if shows[0].Summary != "" {
		t.Errorf("Expected empty summary, got %q", shows[0].Summary)
	}
}

func TestClient_SearchShows_EmptyTermForwarded(t *testing.T) {
	var sawQ bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawQ = r.URL.Query()["q"]
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	shows, err := newTestClient(server.URL).SearchShows(context.Background(), "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !sawQ {
		t.Error("Expected the empty term to be forwarded as q=")
	}
	if len(shows) != 0 {
		t.Errorf("Expected no shows, got %d", len(shows))
	}
}

func TestClient_SearchShows_SendsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != config.DefaultUserAgent {
			t.Errorf("Expected User-Agent %q, got %q", config.DefaultUserAgent, r.Header.Get("User-Agent"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Expected Accept application/json, got %q", r.Header.Get("Accept"))
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).SearchShows(context.Background(), "x"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestClient_SearchShows_GzipResponse(t *testing.T) {
	body := testutil.GenerateSearchJSON([]testutil.SearchResultOptions{{ShowID: 1, Name: "Batman"}})
	compressed := compressWith(t, "gzip", []byte(body))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write(compressed)
	}))
	defer server.Close()

	shows, err := newTestClient(server.URL).SearchShows(context.Background(), "batman")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(shows) != 1 || shows[0].Name != "Batman" {
		t.Errorf("Unexpected shows: %+v", shows)
	}
}

func TestClient_GetEpisodes(t *testing.T) {
	body := testutil.GenerateEpisodesJSON([]testutil.EpisodeOptions{
		testutil.NewEpisode(10, "Pilot", 1, 1),
		testutil.NewEpisode(11, "Second", 1, 2),
		testutil.NewEpisode(20, "Return", "2", 1),
	})

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	episodes, err := newTestClient(server.URL).GetEpisodes(context.Background(), 1)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if gotPath != "/shows/1/episodes" {
		t.Errorf("Expected path /shows/1/episodes, got %s", gotPath)
	}

	expected := []models.Episode{
		{ID: 10, Name: "Pilot", Season: "1", Number: 1},
		{ID: 11, Name: "Second", Season: "1", Number: 2},
		{ID: 20, Name: "Return", Season: "2", Number: 1},
	}
	if len(episodes) != len(expected) {
		t.Fatalf("Expected %d episodes, got %d", len(expected), len(episodes))
	}
	for i := range expected {
		if episodes[i] != expected[i] {
			t.Errorf("Episode %d: expected %+v, got %+v", i, expected[i], episodes[i])
		}
	}
}

func TestClient_GetEpisodes_NoResorting(t *testing.T) {
	body := testutil.GenerateEpisodesJSON([]testutil.EpisodeOptions{
		testutil.NewEpisode(3, "Late", 2, 5),
		testutil.NewEpisode(1, "Early", 1, 1),
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	episodes, err := newTestClient(server.URL).GetEpisodes(context.Background(), 9)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if episodes[0].ID != 3 || episodes[1].ID != 1 {
		t.Errorf("Expected catalog order [3 1], got [%d %d]", episodes[0].ID, episodes[1].ID)
	}
}

func TestClient_Close(t *testing.T) {
	c := newTestClient("http://127.0.0.1:0")
	if err := c.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got: %v", err)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(&config.Config{ClientTimeout: "not-a-duration"}).(*client)

	if c.baseURL != config.DefaultCatalogURL {
		t.Errorf("Expected default catalog URL, got %q", c.baseURL)
	}
	if c.fallbackImageURL != config.DefaultFallbackImageURL {
		t.Errorf("Expected default fallback image, got %q", c.fallbackImageURL)
	}
	if c.httpClient.Timeout != 0 {
		t.Errorf("Expected no timeout for an invalid duration, got %v", c.httpClient.Timeout)
	}

	timed := NewClient(&config.Config{ClientTimeout: "5s"}).(*client)
	if timed.httpClient.Timeout.String() != "5s" {
		t.Errorf("Expected 5s timeout, got %v", timed.httpClient.Timeout)
	}
}

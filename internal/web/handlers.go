package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/client"
	"github.com/Belphemur/ShowFinder/internal/metrics"
	"github.com/Belphemur/ShowFinder/internal/view"
)

// Query parameters sent by the page
const (
	paramTerm   = "term"
	paramShowID = "showId"
)

// handlers serves the page and its htmx fragments. Every request renders into
// its own document so concurrent requests never share regions.
type handlers struct {
	client    client.Client
	templates *view.Templates
}

// RegisterRoutes wires the page, search, episode and health handlers onto router
func RegisterRoutes(router *mux.Router, c client.Client, tpl *view.Templates) {
	h := &handlers{client: c, templates: tpl}

	router.Handle("/", instrument("page", h.page)).Methods(http.MethodGet)
	router.Handle("/search", instrument("search", h.search)).Methods(http.MethodGet)
	router.Handle("/episodes", instrument("episodes", h.episodes)).Methods(http.MethodGet)
	router.Handle("/healthz", instrument("healthz", healthz)).Methods(http.MethodGet)
}

func instrument(name string, fn http.HandlerFunc) http.Handler {
	counter := metrics.HTTPRequestsTotal.MustCurryWith(prometheus.Labels{"handler": name})
	return promhttp.InstrumentHandlerCounter(counter, fn)
}

// page serves the initial page: nothing listed, episode area hidden
func (h *handlers) page(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, r.URL.Query().Get(paramTerm), view.NewDocument())
}

// search looks the term up and answers with the show list. htmx requests get
// the region alone, plain navigations the whole page.
func (h *handlers) search(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	term := r.URL.Query().Get(paramTerm)

	shows, err := h.client.SearchShows(r.Context(), term)
	if err != nil {
		h.fail(w, r, err, statusFor(err))
		return
	}

	doc := view.NewDocument()
	if err := doc.NewRenderer(h.templates).RenderShows(shows); err != nil {
		h.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	logger.Debug().Str("term", term).Int("count", len(shows)).Msg("Search rendered")

	if !isHTMX(r) {
		h.writePage(w, r, term, doc)
		return
	}
	h.write(w, r, func(buf *bytes.Buffer) error {
		return h.templates.WriteShowsList(buf, doc)
	})
}

// episodes lists the episodes of the show whose control was activated
func (h *handlers) episodes(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	showID, err := strconv.Atoi(r.URL.Query().Get(paramShowID))
	if err != nil {
		logger.Warn().Str("show_id", r.URL.Query().Get(paramShowID)).Msg("Invalid show id")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	episodes, err := h.client.GetEpisodes(r.Context(), showID)
	if err != nil {
		h.fail(w, r, err, statusFor(err))
		return
	}

	doc := view.NewDocument()
	if err := doc.NewRenderer(h.templates).RenderEpisodes(episodes); err != nil {
		h.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	logger.Debug().Int("show_id", showID).Int("count", len(episodes)).Msg("Episodes rendered")

	if !isHTMX(r) {
		h.writePage(w, r, "", doc)
		return
	}
	h.write(w, r, func(buf *bytes.Buffer) error {
		return h.templates.WriteEpisodesArea(buf, doc)
	})
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *handlers) writePage(w http.ResponseWriter, r *http.Request, term string, doc *view.Document) {
	h.write(w, r, func(buf *bytes.Buffer) error {
		return h.templates.WritePage(buf, view.PageData{Term: term, Document: doc})
	})
}

// write renders into a buffer first so a template error never leaves a half-written response
func (h *handlers) write(w http.ResponseWriter, r *http.Request, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		h.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// fail answers with an empty body so htmx leaves the page untouched
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error, status int) {
	zerolog.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg("Request failed")

	// The client going away is not worth reporting
	if !errors.Is(err, context.Canceled) {
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
	}
	w.WriteHeader(status)
}

// statusFor maps a catalog failure to the status answered to the browser
func statusFor(err error) int {
	switch {
	case errors.Is(err, &apperrors.ErrNotFound{}):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

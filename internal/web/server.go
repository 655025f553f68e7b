package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/gorilla/mux"

	"github.com/Belphemur/ShowFinder/internal/client"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/view"
)

// NewRouter creates the router serving the page, with request logging and
// Sentry reporting applied to every route.
func NewRouter(c client.Client, tpl *view.Templates) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogger)
	router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	RegisterRoutes(router, c, tpl)
	return router
}

// Server is the HTTP front end of the page
type Server struct {
	httpServer *http.Server
}

// NewServer creates a server listening on the configured address and port
func NewServer(cfg *config.Config, c client.Client, tpl *view.Templates) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port),
			Handler:           NewRouter(c, tpl),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
		},
	}
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves until Stop is called. It returns http.ErrServerClosed after a clean stop.
func (s *Server) Start() error {
	logger := config.GetLogger()
	logger.Info().Str("address", s.httpServer.Addr).Msg("Starting HTTP server")
	return s.httpServer.ListenAndServe()
}

// Stop waits for in-flight requests, up to the context deadline
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

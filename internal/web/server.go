package web

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/massprop-dedup/internal/normalize"
	"github.com/massprop-dedup/internal/web/handlers"
)

// Server is the normalization preview API.
type Server struct {
	httpServer *http.Server
	log        zerolog.Logger
}

// NewServer wires the routes. The database is optional; without one the
// health endpoint simply omits reference-data counts.
func NewServer(addr string, lookup normalize.CityLookup, db *sql.DB, log zerolog.Logger) *Server {
	router := mux.NewRouter()

	normalizeHandler := &handlers.NormalizeHandler{Lookup: lookup}
	healthHandler := &handlers.HealthHandler{DB: db}

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/normalize", normalizeHandler.Normalize).Methods("POST")
	api.HandleFunc("/workflows", normalizeHandler.Workflows).Methods("GET")
	api.HandleFunc("/health", healthHandler.Health).Methods("GET")

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		log: log,
	}
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("preview API listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info().Msg("shutting down")
	return s.httpServer.Shutdown(ctx)
}

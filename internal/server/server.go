// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

// Package server serves the survey dashboard over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/davetashner/surveyboard/internal/resolver"
	"github.com/davetashner/surveyboard/internal/section"
)

// Config configures a Server.
type Config struct {
	// Addr is the listen address, e.g. ":8501".
	Addr string
	// Settings builds a fresh resolver for every request.
	Settings resolver.Settings
	Catalog  section.Catalog
	// SectionColumn is used when deriving charts.
	SectionColumn string
	// Title overrides the dashboard title.
	Title string
	// MetricsEnabled mounts /metrics.
	MetricsEnabled bool
	// MetricsToken, when set, is required as a bearer token on /metrics.
	MetricsToken string
}

// Server is the HTTP dashboard.
type Server struct {
	cfg     Config
	router  chi.Router
	metrics *metrics

	startedAt time.Time
	nowFunc   func() time.Time
}

// New builds a Server and its routes.
func New(cfg Config) *Server {
	s := &Server{
		cfg:       cfg,
		router:    chi.NewRouter(),
		startedAt: time.Now().UTC(),
		nowFunc:   time.Now,
	}
	if cfg.MetricsEnabled {
		s.metrics = newMetrics(s.startedAt)
	}
	s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.Use(requestID)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.dashboard)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/sections", s.listSections)
		r.Get("/sections/{id}", s.getSection)
	})
	s.router.Get("/charts/{id}/{chart}.svg", s.chartSVG)
	s.router.Get("/healthz", s.healthz)

	if s.metrics != nil {
		s.router.Method(http.MethodGet, "/metrics", s.requireMetricsAuth(s.metrics.handler()))
	}
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("dashboard listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		slog.Info("shutting down dashboard")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/davetashner/surveyboard/internal/chart"
	"github.com/davetashner/surveyboard/internal/output"
	"github.com/davetashner/surveyboard/internal/redact"
	"github.com/davetashner/surveyboard/internal/resolver"
	"github.com/davetashner/surveyboard/internal/section"
)

// sectionResponse is the body of GET /api/sections/{id}.
type sectionResponse struct {
	Record resolver.Record `json:"record"`
	Charts chart.Set       `json:"charts"`
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	selected := ""
	if q := r.URL.Query().Get("section"); q != "" {
		spec, err := s.cfg.Catalog.Parse(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		selected = spec.ID
	}

	start := s.nowFunc()
	res, err := s.cfg.Settings.NewResolver(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	d, err := output.BuildDashboard(r.Context(), res, s.cfg.Catalog, output.Options{
		Title:         s.cfg.Title,
		Selected:      selected,
		SectionColumn: s.cfg.SectionColumn,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	recs := make([]resolver.Record, len(d.Panels))
	for i, p := range d.Panels {
		recs[i] = p.Record
	}
	s.metrics.observe(res.Strategy().Name(), "dashboard", s.nowFunc().Sub(start), recs...)

	var buf bytes.Buffer
	if err := output.NewHTMLFormatter().Format(d, &buf); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) listSections(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sections": s.cfg.Catalog.All()})
}

func (s *Server) getSection(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.resolveParam(w, r, "section")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sectionResponse{
		Record: rec,
		Charts: chart.Build(rec, s.cfg.SectionColumn),
	})
}

func (s *Server) chartSVG(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.resolveParam(w, r, "chart")
	if !ok {
		return
	}
	name := chi.URLParam(r, "chart")
	c, found := chart.Build(rec, s.cfg.SectionColumn).Get(name)
	if !found {
		http.Error(w, "chart "+name+" not available for "+rec.Section.Title(), http.StatusNotFound)
		return
	}
	svg, err := chart.RenderSVG(c)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

// resolveParam resolves the {id} URL parameter. It writes the error
// response itself and reports whether the caller should continue.
func (s *Server) resolveParam(w http.ResponseWriter, r *http.Request, endpoint string) (resolver.Record, bool) {
	spec, err := s.cfg.Catalog.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return resolver.Record{}, false
	}

	start := s.nowFunc()
	res, err := s.cfg.Settings.NewResolver(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return resolver.Record{}, false
	}
	rec, err := res.Resolve(r.Context(), spec)
	if err != nil {
		s.fail(w, r, err)
		return resolver.Record{}, false
	}
	s.metrics.observe(res.Strategy().Name(), endpoint, s.nowFunc().Sub(start), rec)
	return rec, true
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	now := s.nowFunc().UTC()
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"now":        now.Format(time.RFC3339Nano),
		"uptime_sec": int64(now.Sub(s.startedAt).Seconds()),
		"strategy":   string(s.cfg.Settings.Mode),
		"sections":   len(section.IDs),
	})
}

// fail logs err and answers 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	msg := redact.String(err.Error())
	var cerr *resolver.ConfigurationError
	if errors.As(err, &cerr) {
		slog.Error("configuration error while serving", "error", msg, "request_id", RequestID(r.Context()))
	} else {
		slog.Error("request failed", "error", msg, "request_id", RequestID(r.Context()))
	}
	http.Error(w, "internal error (request "+RequestID(r.Context())+")", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

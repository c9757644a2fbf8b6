// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/surveyboard/internal/loader"
	"github.com/davetashner/surveyboard/internal/resolver"
	"github.com/davetashner/surveyboard/internal/section"
	"github.com/davetashner/surveyboard/internal/table"
)

const summaryCSV = "section,f1,f2\nA,Yes,3\nA,No,4\nB,Yes,1\n"

func newTestServer(t *testing.T, withData bool, mutate func(*Config)) *Server {
	t.Helper()
	dir := t.TempDir()
	if withData {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "summary_statistics.csv"), []byte(summaryCSV), 0o600))
	}
	cfg := Config{
		Settings: resolver.Settings{
			Mode:         resolver.ModeFilter,
			SharedSource: "summary_statistics.csv",
			Loader:       loader.NewFSLoader(dir),
		},
		Catalog:        section.DefaultCatalog(),
		MetricsEnabled: true,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg)
}

func get(t *testing.T, s *Server, path string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func TestDashboard(t *testing.T) {
	s := newTestServer(t, true, nil)
	rr := get(t, s, "/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	assert.Contains(t, body, "AgriDrone Farmer Survey Dashboard")
	assert.Contains(t, body, "Section E Overview")
	assert.Contains(t, body, "No data found for Section C")
	assert.Contains(t, body, `<option value="A" selected>`)
	assert.Contains(t, body, "<svg")
}

func TestDashboard_SelectedSection(t *testing.T) {
	s := newTestServer(t, true, nil)
	rr := get(t, s, "/?section=b")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `<option value="B" selected>`)

	rr = get(t, s, "/?section=Z")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDashboard_SharedTableMissing(t *testing.T) {
	s := newTestServer(t, false, nil)
	rr := get(t, s, "/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, strings.Count(rr.Body.String(), `class="alert alert-error"`))
}

func TestDashboard_LoadError(t *testing.T) {
	s := newTestServer(t, true, func(c *Config) {
		c.Settings.Loader = loader.Func(func(context.Context, string) (*table.Table, error) {
			return nil, errors.New("disk failure")
		})
	})
	rr := get(t, s, "/")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "disk failure")
	assert.Contains(t, rr.Body.String(), rr.Header().Get(RequestIDHeader))
}

func TestListSections(t *testing.T) {
	s := newTestServer(t, true, nil)
	rr := get(t, s, "/api/sections")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Sections []section.Spec `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, section.DefaultCatalog().All(), body.Sections)
}

func TestGetSection(t *testing.T) {
	s := newTestServer(t, true, nil)
	rr := get(t, s, "/api/sections/A")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Record struct {
			Status          string   `json:"status"`
			QuestionColumns []string `json:"question_columns"`
		} `json:"record"`
		Charts struct {
			Charts []struct {
				Name string `json:"name"`
			} `json:"charts"`
		} `json:"charts"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Record.Status)
	assert.Equal(t, []string{"f1", "f2"}, body.Record.QuestionColumns)
	require.Len(t, body.Charts.Charts, 2)
	assert.Equal(t, "distribution", body.Charts.Charts[0].Name)
}

func TestGetSection_Statuses(t *testing.T) {
	s := newTestServer(t, true, nil)
	rr := get(t, s, "/api/sections/Section%20D")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"empty"`)

	rr = get(t, s, "/api/sections/Q")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "unknown section")

	missing := newTestServer(t, false, nil)
	rr = get(t, missing, "/api/sections/A")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"source_missing"`)
}

func TestChartSVG(t *testing.T) {
	s := newTestServer(t, true, nil)
	rr := get(t, s, "/charts/A/question.svg")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/svg+xml", rr.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rr.Body.String(), "<svg"))
	assert.Contains(t, rr.Body.String(), "Example Question (f1): Section A")

	rr = get(t, s, "/charts/A/categories.svg")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = get(t, s, "/charts/C/distribution.svg")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, false, nil)
	rr := get(t, s, "/healthz")
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "filter", body["strategy"])
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, false, nil)
	rr := get(t, s, "/healthz")
	_, err := uuid.Parse(rr.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	incoming := uuid.NewString()
	rr = get(t, s, "/healthz", RequestIDHeader, incoming)
	assert.Equal(t, incoming, rr.Header().Get(RequestIDHeader))

	rr = get(t, s, "/healthz", RequestIDHeader, "not-a-uuid\nx")
	assert.NotEqual(t, "not-a-uuid\nx", rr.Header().Get(RequestIDHeader))
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t, true, nil)
	require.Equal(t, http.StatusOK, get(t, s, "/api/sections/A").Code)
	require.Equal(t, http.StatusOK, get(t, s, "/api/sections/C").Code)

	rr := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `surveyboard_section_resolutions_total{section="A",status="ok"} 1`)
	assert.Contains(t, body, `surveyboard_section_resolutions_total{section="C",status="empty"} 1`)
	assert.Contains(t, body, "surveyboard_resolve_duration_seconds_count")
	assert.Contains(t, body, "surveyboard_uptime_seconds")
}

func TestMetrics_Disabled(t *testing.T) {
	s := newTestServer(t, true, func(c *Config) { c.MetricsEnabled = false })
	assert.Equal(t, http.StatusNotFound, get(t, s, "/metrics").Code)
	// Handlers still work without a metrics registry.
	assert.Equal(t, http.StatusOK, get(t, s, "/api/sections/A").Code)
}

func TestMetrics_Token(t *testing.T) {
	s := newTestServer(t, true, func(c *Config) { c.MetricsToken = "s3cret" })
	assert.Equal(t, http.StatusUnauthorized, get(t, s, "/metrics").Code)
	assert.Equal(t, http.StatusUnauthorized, get(t, s, "/metrics", "Authorization", "Bearer nope").Code)
	assert.Equal(t, http.StatusOK, get(t, s, "/metrics", "Authorization", "Bearer s3cret").Code)
}

func TestListenAndServe_Shutdown(t *testing.T) {
	s := newTestServer(t, false, func(c *Config) { c.Addr = "127.0.0.1:0" })
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()
	cancel()
	assert.NoError(t, <-done)
}

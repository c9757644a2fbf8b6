// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davetashner/surveyboard/internal/server"
)

// metricsTokenEnv names the environment variable holding the /metrics token.
const metricsTokenEnv = "SURVEYBOARD_METRICS_TOKEN"

// Serve-specific flag values.
var (
	serveFlags        flagOverrides
	serveMetricsToken string
	serveNoMetrics    bool
)

// serveCmd runs the HTTP dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the survey dashboard over HTTP",
	Long: `Serve the survey dashboard in the browser.

The dashboard shows one tab per section with a sidebar section selector.
Each request loads the data source afresh, so re-running the EDA step
is picked up on the next page load.

Endpoints:
  /                         HTML dashboard (?section=B selects a tab)
  /api/sections             JSON list of sections
  /api/sections/{id}        JSON record and chart data for one section
  /charts/{id}/{chart}.svg  SVG chart
  /healthz                  liveness probe
  /metrics                  Prometheus metrics (bearer token from ` + metricsTokenEnv + `)`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	addDataFlags(serveCmd, &serveFlags)
	serveCmd.Flags().StringVar(&serveFlags.ListenAddr, "addr", "", "listen address (default \":8501\")")
	serveCmd.Flags().StringVar(&serveFlags.Title, "title", "", "dashboard title")
	serveCmd.Flags().StringVar(&serveMetricsToken, "metrics-token", "", "bearer token required on /metrics (default $"+metricsTokenEnv+")")
	serveCmd.Flags().BoolVar(&serveNoMetrics, "no-metrics", false, "disable the /metrics endpoint")
}

func runServe(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime(cmd.Context(), serveFlags)
	if err != nil {
		return err
	}
	defer rt.close() //nolint:errcheck // best-effort close of the data source

	token := serveMetricsToken
	if token == "" {
		token = os.Getenv(metricsTokenEnv)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Addr:           rt.cfg.ListenAddr,
		Settings:       rt.settings,
		Catalog:        rt.catalog,
		SectionColumn:  rt.sectionColumn,
		Title:          rt.cfg.Title,
		MetricsEnabled: rt.cfg.Metrics() && !serveNoMetrics,
		MetricsToken:   token,
	})
	return srv.ListenAndServe(ctx)
}

// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/davetashner/surveyboard/internal/resolver"
)

type metrics struct {
	reg         *prometheus.Registry
	resolutions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func newMetrics(startedAt time.Time) *metrics {
	m := &metrics{
		reg: prometheus.NewRegistry(),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "surveyboard_section_resolutions_total",
			Help: "Section resolutions by section and outcome.",
		}, []string{"section", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "surveyboard_resolve_duration_seconds",
			Help:    "Time to load and resolve sections for one request.",
			Buckets: prometheus.DefBuckets,
		}, []string{"strategy", "endpoint"}),
	}
	_ = m.reg.Register(collectors.NewGoCollector())
	_ = m.reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m.reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "surveyboard_uptime_seconds",
		Help: "Process uptime in seconds.",
	}, func() float64 {
		return time.Since(startedAt).Seconds()
	}))
	m.reg.MustRegister(m.resolutions, m.duration)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// observe records resolved records and the time spent. Safe on a nil
// receiver so handlers need not check whether metrics are enabled.
func (m *metrics) observe(strategy, endpoint string, elapsed time.Duration, recs ...resolver.Record) {
	if m == nil {
		return
	}
	for _, rec := range recs {
		m.resolutions.WithLabelValues(rec.Section.ID, string(rec.Status)).Inc()
	}
	m.duration.WithLabelValues(strategy, endpoint).Observe(elapsed.Seconds())
}

/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOk       = "ok"
	OutcomeLex      = "lex_error"
	OutcomeParse    = "parse_error"
	OutcomeInternal = "internal_error"
)

type Store interface {
	Registry() *prometheus.Registry
	Handler() http.Handler

	// Collection
	IncSessions()
	IncLines(outcome string)
	ObserveEvalNS(outcome string, t int64)
}

type metricsStore struct {
	registry *prometheus.Registry
	Sessions prometheus.Counter
	Lines    *prometheus.CounterVec
	EvalNS   *prometheus.HistogramVec
}

var (
	OutcomeLabel = "outcome"
)

func NewStore() Store {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(i*i*int(time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Sessions: factory.NewCounter(prometheus.CounterOpts{
			Name: "reckon_sessions_total",
			Help: "The total number of sessions started",
		}),
		Lines: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "reckon_lines_total",
			Help: "Expressions processed, by outcome",
		}, []string{OutcomeLabel}),
		EvalNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reckon_eval_ns",
			Help:    "Time spent lexing, parsing and evaluating a line",
			Buckets: buckets,
		}, []string{OutcomeLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncSessions() {
	ms.Sessions.Inc()
}

func (ms *metricsStore) IncLines(outcome string) {
	ms.Lines.With(prometheus.Labels{OutcomeLabel: outcome}).Inc()
}

func (ms *metricsStore) ObserveEvalNS(outcome string, t int64) {
	ms.EvalNS.
		With(prometheus.Labels{OutcomeLabel: outcome}).
		Observe(float64(t))
}

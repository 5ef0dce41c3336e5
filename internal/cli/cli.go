/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package cli holds the plumbing shared by the reckon sub-commands.
package cli

import (
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/dburkart/reckon/pkg/metrics"
	"github.com/dburkart/reckon/pkg/repl"
	"github.com/dburkart/reckon/pkg/session"
)

// Logger returns the logger configured by the root command.
func Logger() zerolog.Logger {
	if l, ok := viper.Get("logger").(zerolog.Logger); ok {
		return l
	}
	return zerolog.Nop()
}

func Formatter() repl.Formatter {
	return repl.Formatter{
		Precision: viper.GetInt("reckon.precision"),
		Humanize:  viper.GetBool("reckon.humanize"),
	}
}

// NewSession builds a session writing to out in the configured output
// format, and starts the metrics endpoint if one is configured.
func NewSession(out io.Writer, config session.Config) *session.Session {
	log := Logger()
	store := metrics.NewStore()

	if port := viper.GetInt("reckon.metrics-port"); port > 0 {
		go ServeMetrics(log, store, port)
	}

	config.Formatter = Formatter()
	config.Strict = viper.GetBool("reckon.strict")
	writer := repl.NewOutputWriter(out, viper.GetString("reckon.output"))

	s := session.New(config, writer, log, store)
	log.Debug().Str("session", s.ID).Msg("session started")

	return s
}

func ServeMetrics(log zerolog.Logger, store metrics.Store, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", store.Handler())

	log.Info().Int("port", port).Msg("/metrics endpoint started")
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
		log.Error().Err(err).Int("port", port).Msg("metrics endpoint stopped")
	}
}

/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package reckon

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dburkart/reckon/pkg/repl"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

func initConfig(configFile string) {
	log := viper.Get("logger").(zerolog.Logger)

	// Values from a .env file become environment variables, which in turn
	// override the config file below
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded environment from .env")
	}

	viper.SetEnvPrefix("RECKON")
	viper.SetEnvKeyReplacer(strings.NewReplacer("reckon.", "", "-", "_", ".", "_"))
	viper.AutomaticEnv()

	// config Read
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath("/etc/reckon")
	viper.AddConfigPath("$HOME/.reckon")
	viper.AddConfigPath(".")

	if configFile != "" {
		viper.SetConfigFile(configFile)
	}

	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Debug().Msg("No config file found, using defaults as a base")
	} else if err != nil {
		log.Error().Err(err).Msg("Error loading config file")
	}

	log.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config from file")
}

func validateConfig() error {
	output := viper.GetString("reckon.output")
	if !repl.IsFormat(output) {
		return fmt.Errorf("unsupported output format %q, expected one of %s", output, strings.Join(repl.Formats, ", "))
	}

	if viper.GetInt("reckon.precision") < -1 {
		return fmt.Errorf("precision must be -1 or greater")
	}

	return nil
}

func initLogLevel() {
	level := viper.GetInt("reckon.verbose")
	switch clamp(2, level) {
	case 2:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Results go to stdout, so logs always go to stderr
func initLogging() {
	var writer io.Writer

	writer = os.Stderr
	if viper.GetBool("reckon.local") {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Logger()

	viper.Set("logger", logger)
}

func traceConfig() {
	log := viper.Get("logger").(zerolog.Logger)

	for _, v := range viper.AllKeys() {
		if v == "logger" {
			continue
		}
		log.Trace().Msgf("%s=%v", v, viper.Get(v))
	}
}

func clamp(clamp, a int) int {
	if a >= clamp {
		return clamp
	}
	return a
}

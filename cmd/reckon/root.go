/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package reckon

import (
	"fmt"
	"os"

	"github.com/dburkart/reckon/cmd/reckon/eval"
	"github.com/dburkart/reckon/cmd/reckon/repl"
	"github.com/dburkart/reckon/cmd/reckon/run"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "reckon",
		Short: "Reckon is a small arithmetic expression evaluator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
			return validateConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the reckon config file (default ./config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "plain", "Output format of results [plain, text, csv, json]")
	rootCmd.PersistentFlags().Int("precision", -1, "Digits after the decimal point (-1 for the shortest exact form)")
	rootCmd.PersistentFlags().Bool("humanize", false, "Group digits of results with commas")
	rootCmd.PersistentFlags().Int("metrics-port", 0, "Serve /metrics on this port (0 disables)")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject input left over after a complete expression")

	// Bind viper config to the root flags
	viper.BindPFlag("reckon.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("reckon.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("reckon.output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("reckon.precision", rootCmd.PersistentFlags().Lookup("precision"))
	viper.BindPFlag("reckon.humanize", rootCmd.PersistentFlags().Lookup("humanize"))
	viper.BindPFlag("reckon.metrics-port", rootCmd.PersistentFlags().Lookup("metrics-port"))
	viper.BindPFlag("reckon.strict", rootCmd.PersistentFlags().Lookup("strict"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("reckon version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Register commands on the root binary command
	repl.Command.Version = rootCmd.Version
	run.Command.Version = rootCmd.Version
	eval.Command.Version = rootCmd.Version
	rootCmd.AddCommand(repl.Command)
	rootCmd.AddCommand(run.Command)
	rootCmd.AddCommand(eval.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}

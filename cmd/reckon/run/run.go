/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package run

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/reckon/internal/cli"
	"github.com/dburkart/reckon/pkg/session"
)

var Command = &cobra.Command{
	Use:   "run [file...]",
	Short: "Evaluate expressions read line by line from stdin or files",

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		s := cli.NewSession(cmd.OutOrStdout(), session.Config{
			HaltOnError: viper.GetBool("reckon.halt-on-error"),
		})

		if len(args) == 0 {
			return s.Run(cmd.InOrStdin())
		}

		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return errors.Wrapf(err, "unable to open %s", path)
			}

			err = s.Run(f)
			f.Close()
			if err != nil {
				return errors.Wrap(err, path)
			}

			if s.Quit() {
				break
			}
		}

		return nil
	},
}

func init() {
	// Flags for this command
	Command.Flags().Bool("halt-on-error", true, "Exit with status 1 at the first line that fails")

	// Bind flags to viper
	viper.BindPFlag("reckon.halt-on-error", Command.Flags().Lookup("halt-on-error"))
}

/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package eval

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dburkart/reckon/internal/cli"
	"github.com/dburkart/reckon/pkg/session"
)

var Command = &cobra.Command{
	Use:     "eval [--] <expression...>",
	Short:   "Evaluate a single expression given as arguments",
	Example: "  reckon eval -- -2 ** 2\n  reckon eval '(1 + 2) // 2'",
	Args:    cobra.MinimumNArgs(1),

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		s := cli.NewSession(cmd.OutOrStdout(), session.Config{HaltOnError: true})

		_, err := s.Process(strings.Join(args, " "))
		return err
	},
}

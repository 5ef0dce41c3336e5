/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/reckon/internal/cli"
	"github.com/dburkart/reckon/pkg/session"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive prompt for evaluating expressions",

	RunE: func(cmd *cobra.Command, args []string) error {
		s := cli.NewSession(cmd.OutOrStdout(), session.Config{
			ShowCaret: true,
		})

		return readlinePrompt(s)
	},
}

func init() {
	home, _ := os.UserHomeDir()

	// Flags for this command
	Command.Flags().String("prompt", "\033[31m>\033[0m ", "Prompt shown before each line")
	Command.Flags().String("history-file", filepath.Join(home, ".reckon_history"), "Where to keep line history (empty disables)")

	// Bind flags to viper
	viper.BindPFlag("reckon.prompt", Command.Flags().Lookup("prompt"))
	viper.BindPFlag("reckon.history-file", Command.Flags().Lookup("history-file"))
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt(s *session.Session) error {
	log := cli.Logger()

	completer := readline.NewPrefixCompleter(
		readline.PcItem("/ast"),
		readline.PcItem("/tokens"),
		readline.PcItem("/stats"),
		readline.PcItem("/help"),
		readline.PcItem("/quit"),
		readline.PcItem("/exit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          viper.GetString("reckon.prompt"),
		HistoryFile:     viper.GetString("reckon.history-file"),
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "/exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}

		action, err := s.Process(ln.Line)
		if err != nil {
			log.Debug().Err(err).Msg("line failed, continuing")
		}

		if action == session.ActionQuit {
			break
		}
	}

	rl.Clean()
	return nil
}

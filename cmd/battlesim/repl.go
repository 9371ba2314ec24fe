package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/twanvl/battlegrounds-sim/pkg/replshell"
)

var replCmd = &cobra.Command{
	Use:   "repl [file]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Start an interactive board-building and simulation session",
	Long:  `Without a file argument, reads commands from stdin with a prompt. With a file argument, replays its commands non-interactively.`,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	shell := replshell.New(os.Stdout)
	if len(args) == 0 {
		shell.Run(os.Stdin, true)
		return nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()
	shell.Run(f, false)
	return nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mble/kilo/editor"
)

var rootCmd = &cobra.Command{
	Use:     "kilo [filename]",
	Short:   "A minimal raw-mode terminal text editor",
	Long:    "Kilo is a small modal-free text editor that talks to the terminal directly.\nRun it with a filename to open that file, or with no arguments to start empty.",
	Version: editor.KILO_VERSION,
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
	// Raw mode owns the screen; cobra must not print usage over it.
	SilenceUsage: true,
}

func run(cmd *cobra.Command, args []string) error {
	e := editor.NewEditor()

	if err := e.EnableRawMode(); err != nil {
		return err
	}
	defer e.RestoreTerminal()

	if err := e.Init(); err != nil {
		e.Die("%v", err)
	}

	if len(args) >= 1 {
		if err := e.Open(args[0]); err != nil {
			e.Die("%v", err)
		}
	}

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		e.RefreshScreen()
		if !e.ProcessKeypress() {
			return nil
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

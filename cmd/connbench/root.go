package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connbench",
		Short: "connbench - evaluate model answers to word-grouping puzzles",
		Long: `Connbench evaluates free-text model answers to four-groups-of-four
word puzzles against a structured ground truth.

It extracts candidate groups from inconsistently formatted model output,
compares them against the known-correct groups, and aggregates correctness
statistics across puzzles and models.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	}

	// Add subcommands
	cmd.AddCommand(newEvaluateCommand())
	cmd.AddCommand(newInspectCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newCompareCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}

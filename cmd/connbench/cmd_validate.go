package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/puzzlebench/connbench/internal/discovery"
	"github.com/puzzlebench/connbench/internal/validation"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file-or-dir>",
		Short: "Validate prediction files against the records schema",
		Long: `Validate one prediction file, or every prediction file under a directory,
against the embedded JSON schema for prediction records.

Schema violations are listed per file. Any invalid file makes the command
exit with code 1; unreadable paths exit with code 2.`,
		Args:          cobra.ExactArgs(1),
		RunE:          runValidate,
		SilenceErrors: true,
	}
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	files, err := resolveValidationTargets(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(w, "No prediction files found in %s\n", args[0]) //nolint:errcheck
		return nil
	}

	invalid := 0
	for _, path := range files {
		errs, err := validation.ValidateFile(path)
		if err != nil {
			return err
		}
		if len(errs) == 0 {
			fmt.Fprintf(w, "✅ %s\n", path) //nolint:errcheck
			continue
		}
		invalid++
		fmt.Fprintf(w, "❌ %s: %d error(s)\n", path, len(errs)) //nolint:errcheck
		for _, e := range errs {
			fmt.Fprintf(w, "   %s\n", e) //nolint:errcheck
		}
	}

	if invalid > 0 {
		return &InvalidInputError{
			Message: fmt.Sprintf("%d of %d prediction file(s) failed validation", invalid, len(files)),
		}
	}
	return nil
}

func resolveValidationTargets(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if info.IsDir() {
		return discovery.Discover(path)
	}
	return []string{path}, nil
}

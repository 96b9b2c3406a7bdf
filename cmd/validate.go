package cmd

import (
	"fmt"

	"github.com/promptkit/promptgen/pkg/document"
	"github.com/promptkit/promptgen/pkg/validator"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a project description file for format problems",
		Long: `Scans the whole file and prints every diagnostic with its line number.

Unknown section names and space indentation are warnings: the scan never
stops at the first problem, and 'build' will still process such files.

Examples:
  promptgen validate project.lp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}

			result := validator.New(getLogger()).Validate(doc)
			for _, d := range result.Diagnostics {
				fmt.Fprintf(cmd.OutOrStdout(), "line %d: %s\n", d.Line, d.Message)
			}

			if !result.OK() {
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL: %d problem(s) found\n", result.Count())
				return fmt.Errorf("validation failed")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	return cmd
}

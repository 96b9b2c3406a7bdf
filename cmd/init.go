package cmd

import (
	"os"

	"github.com/promptkit/promptgen/internal/scaffold"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter project description file in the current directory",
		Long: `Writes a template project.lp and promptgen.config.yml to the current
directory. The templates are a starting point that you fully own and edit.

It will not overwrite existing files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(cwd, getLogger())
		},
	}

	return cmd
}

package cmd

import (
	"errors"
	"os"

	"github.com/promptkit/promptgen/pkg/assembler"
	"github.com/promptkit/promptgen/pkg/config"
	"github.com/promptkit/promptgen/pkg/document"
	"github.com/promptkit/promptgen/pkg/writer"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var outputPath string
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Assemble the prompt document for a project description file",
		Long: `Reads the project description, resolves every @file reference, and
composes the prompt document. Content-level problems never fail the build:
missing referenced files are embedded as (NOT FOUND) markers.

Output goes to stdout unless redirected by flags or promptgen.config.yml.

Examples:
  promptgen build project.lp                 # Print the prompt to stdout
  promptgen build project.lp -o prompt.md    # Write to a file
  promptgen build project.lp --clipboard     # Copy to the clipboard`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load(doc.Dir)
			if err != nil {
				if !errors.Is(err, os.ErrNotExist) {
					return err
				}
				cfg = &config.Config{}
			}

			tpl, err := templateFromConfig(doc.Dir, cfg)
			if err != nil {
				return err
			}

			prompt := assembler.NewWithTemplate(getLogger(), tpl).Build(doc)

			sink, err := selectSink(cfg, outputPath, toClipboard)
			if err != nil {
				return err
			}
			if err := sink.Write(prompt); err != nil {
				return err
			}

			if sink.Name() != "stdout" {
				log.Infof("Wrote prompt document to %s", sink.Name())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the prompt to a file instead of stdout")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy the prompt to the system clipboard")

	return cmd
}

// templateFromConfig resolves template override files against the document
// directory, falling back to the built-in preamble and footer.
func templateFromConfig(dir string, cfg *config.Config) (assembler.Template, error) {
	tpl := assembler.Template{Fence: cfg.Template.Fence}

	preamble, err := config.ReadTemplateFile(dir, cfg.Template.PreambleFile)
	if err != nil {
		return tpl, err
	}
	tpl.Preamble = preamble

	footer, err := config.ReadTemplateFile(dir, cfg.Template.FooterFile)
	if err != nil {
		return tpl, err
	}
	tpl.Footer = footer

	return tpl, nil
}

// selectSink picks the output sink, flags taking precedence over config.
func selectSink(cfg *config.Config, outputPath string, toClipboard bool) (writer.Sink, error) {
	switch {
	case toClipboard:
		return writer.NewClipboard(), nil
	case outputPath != "":
		return writer.NewFile(outputPath), nil
	}

	switch cfg.Output.Sink {
	case "", "stdout":
		return writer.NewStdout(), nil
	case "clipboard":
		return writer.NewClipboard(), nil
	case "file":
		if cfg.Output.Path == "" {
			return nil, errors.New("output sink 'file' requires output.path in promptgen.config.yml")
		}
		return writer.NewFile(cfg.Output.Path), nil
	default:
		return nil, errors.New("unknown output sink '" + cfg.Output.Sink + "': must be stdout, file, or clipboard")
	}
}

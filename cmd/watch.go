package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/promptkit/promptgen/pkg/assembler"
	"github.com/promptkit/promptgen/pkg/config"
	"github.com/promptkit/promptgen/pkg/document"
	"github.com/promptkit/promptgen/pkg/resolver"
	"github.com/promptkit/promptgen/pkg/watcher"
	"github.com/promptkit/promptgen/pkg/writer"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var outputPath string
	var debounceMs int

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Rebuild the prompt document whenever its sources change",
		Long: `Watches the project description file and every file it references, and
rebuilds the prompt document on change. Referenced files added or removed
from @file blocks are picked up on the next rebuild.

Example:
  promptgen watch project.lp -o prompt.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0], outputPath, time.Duration(debounceMs)*time.Millisecond)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file for the rebuilt prompt (required unless configured)")
	cmd.Flags().IntVar(&debounceMs, "debounce", 100, "Debounce interval in milliseconds")

	return cmd
}

func runWatch(path, outputPath string, debounce time.Duration) error {
	docPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	cfg, err := config.Load(filepath.Dir(docPath))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		cfg = &config.Config{}
	}

	sink, err := selectSink(cfg, outputPath, false)
	if err != nil {
		return err
	}
	if _, ok := sink.(*writer.StdoutSink); ok {
		return errors.New("watch needs a file output: pass --output or set output.sink in promptgen.config.yml")
	}

	w, err := watcher.New()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	rebuild := func() error {
		doc, err := document.Load(docPath)
		if err != nil {
			return err
		}

		tpl, err := templateFromConfig(doc.Dir, cfg)
		if err != nil {
			return err
		}

		refs := resolver.New(getLogger()).Resolve(doc)
		prompt := assembler.NewWithTemplate(getLogger(), tpl).Compose(doc, refs)
		if err := sink.Write(prompt); err != nil {
			return err
		}

		// Re-track the current reference set; @file entries can change
		// between rebuilds.
		w.Reset()
		w.AddTargets(docPath)
		for _, ref := range refs {
			w.AddTargets(ref.Resolved)
		}
		return nil
	}

	if err := rebuild(); err != nil {
		return err
	}
	log.Infof("Watching %s, writing to %s", docPath, sink.Name())

	// Debounce state
	var mu sync.Mutex
	var timer *time.Timer

	scheduleRebuild := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			log.Info("Rebuilding")
			if err := rebuild(); err != nil {
				log.WithError(err).Error("Rebuild failed")
			} else {
				log.Infof("Wrote prompt document to %s", sink.Name())
			}
		})
	}

	// Main event loop
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.IsTarget(event.Name) {
				continue
			}
			scheduleRebuild()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Error("Watcher error")
		}
	}
}

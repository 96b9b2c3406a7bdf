// Package scaffold creates starter files for a new promptgen project.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

//go:embed all:templates
var templatesFS embed.FS

// Init scaffolds a starter project description file and config in dir.
// Existing files are never overwritten.
func Init(dir string, logger *logrus.Logger) error {
	files := map[string]string{
		"templates/project.lp":           "project.lp",
		"templates/promptgen.config.yml": "promptgen.config.yml",
	}

	// Check for collisions first so a partial init never happens.
	for _, dest := range files {
		destPath := filepath.Join(dir, dest)
		if _, err := os.Stat(destPath); err == nil {
			return fmt.Errorf("%s already exists, refusing to overwrite", destPath)
		}
	}

	for src, dest := range files {
		destPath := filepath.Join(dir, dest)
		if err := copyFileFromFS(src, destPath); err != nil {
			return err
		}
		logger.Infof("✓ Created %s", dest)
	}

	logger.Info("Project initialized.")
	logger.Info("   Next steps: 1. Describe your project in project.lp.")
	logger.Info("               2. Run 'promptgen validate project.lp' to check the format.")
	logger.Info("               3. Run 'promptgen build project.lp' to assemble the prompt.")

	return nil
}

func copyFileFromFS(src, dest string) error {
	content, err := templatesFS.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read embedded file %s: %w", src, err)
	}
	if err := os.WriteFile(dest, content, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", dest, err)
	}
	return nil
}

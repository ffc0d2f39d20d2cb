package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/lovequiz/internal/app"
	"github.com/abhisek/lovequiz/internal/capture"
	"github.com/abhisek/lovequiz/internal/config"
)

// defaultLogName is the TUI log written to the temp dir when no log file
// is configured.
const defaultLogName = "lovequiz.log"

func logFilePath(cfg config.Config) string {
	if cfg.LogFile != "" {
		return cfg.LogFile
	}
	return filepath.Join(os.TempDir(), defaultLogName)
}

// runApp resolves configuration and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	questions, err := loadQuestions(cfg)
	if err != nil {
		return err
	}

	// The renderer owns the terminal, so logs always go to a file.
	f, err := tea.LogToFile(logFilePath(cfg), "lovequiz")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	log.Printf("starting: questions=%d export_dir=%s", questions.Len(), cfg.ExportDir)
	return app.Run(app.Options{
		Context:   ctx,
		Questions: questions,
		Exporter:  capture.NewExporter(cfg.ExportDir),
		Rand:      newRand(cfg.Seed),
	})
}

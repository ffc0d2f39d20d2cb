package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings. Values come from the environment and may
// be overridden by command-line flags.
type Config struct {
	// QuestionsFile is an optional YAML question set. Empty uses the built-in set.
	QuestionsFile string `env:"LOVEQUIZ_QUESTIONS"`

	// ExportDir is where results screenshots are written.
	ExportDir string `env:"LOVEQUIZ_EXPORT_DIR" envDefault:"."`

	// LogFile receives diagnostic logs while the TUI owns the terminal.
	// Empty means lovequiz.log in the temp dir.
	LogFile string `env:"LOVEQUIZ_LOG_FILE"`

	// Seed drives the cosmetic randomness. Zero seeds from the clock.
	Seed uint64 `env:"LOVEQUIZ_SEED"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks that required settings are present.
func (c Config) Validate() error {
	if c.ExportDir == "" {
		return errors.New("export dir must not be empty")
	}
	return nil
}

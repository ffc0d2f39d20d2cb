package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lovequiz/internal/config"
	"github.com/abhisek/lovequiz/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "lovequiz",
	Short: "A playful yes/no compatibility quiz",
	Long:  "Love Quiz: answer a handful of yes/no questions and get a love score. The No button is shy.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

// ExecuteContext runs the root command with ctx available to subcommands.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	bindConfigFlags(rootCmd)

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// bindConfigFlags declares the flags that override config.Config.
func bindConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("questions", "", "Path to a YAML question set (overrides LOVEQUIZ_QUESTIONS)")
	flags.String("export-dir", "", "Directory for results screenshots (overrides LOVEQUIZ_EXPORT_DIR)")
	flags.String("log-file", "", "Write diagnostic logs to this file (overrides LOVEQUIZ_LOG_FILE)")
	flags.Uint64("seed", 0, "Seed for the shy button and confetti, 0 for random (overrides LOVEQUIZ_SEED)")
}

// resolveConfig reads the environment, then applies any flags that were
// set explicitly.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("questions") {
		cfg.QuestionsFile, _ = flags.GetString("questions")
	}
	if flags.Changed("export-dir") {
		cfg.ExportDir, _ = flags.GetString("export-dir")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadQuestions returns the configured question set, or the built-in one.
func loadQuestions(cfg config.Config) (quiz.QuestionSet, error) {
	if cfg.QuestionsFile == "" {
		return quiz.Default(), nil
	}
	qs, err := quiz.LoadFile(cfg.QuestionsFile)
	if err != nil {
		return quiz.QuestionSet{}, fmt.Errorf("load questions: %w", err)
	}
	return qs, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1))
}

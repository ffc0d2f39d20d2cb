package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lovequiz/internal/capture"
	"github.com/abhisek/lovequiz/internal/quiz"
	"github.com/abhisek/lovequiz/internal/score"
)

// ErrAnswerCount is returned when the answers do not cover every question.
var ErrAnswerCount = errors.New("answer count does not match question count")

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Answer the quiz from the command line and save the results card",
	Example: `  lovequiz export --answers yes,no,yes,yes,no
  lovequiz export --answers y,y,y,y,y --export-dir ./cards`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		qs, err := loadQuestions(cfg)
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetString("answers")
		answers, err := parseAnswers(raw)
		if err != nil {
			return err
		}
		return runExport(cmd.Context(), qs, answers, capture.NewExporter(cfg.ExportDir), cmd.OutOrStdout())
	},
}

func init() {
	exportCmd.Flags().String("answers", "", "Comma-separated yes/no answers, one per question")
	_ = exportCmd.MarkFlagRequired("answers")
}

// parseAnswers reads a comma-separated list of yes/no tokens.
func parseAnswers(raw string) ([]bool, error) {
	var answers []bool
	for i, tok := range strings.Split(raw, ",") {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case "yes", "y":
			answers = append(answers, true)
		case "no", "n":
			answers = append(answers, false)
		default:
			return nil, fmt.Errorf("answer %d: unknown token %q", i+1, tok)
		}
	}
	return answers, nil
}

type cardExporter interface {
	Export(ctx context.Context, card capture.Card) (string, error)
}

// runExport plays the answers through a controller and writes the card.
func runExport(ctx context.Context, qs quiz.QuestionSet, answers []bool, exp cardExporter, out io.Writer) error {
	if len(answers) != qs.Len() {
		return fmt.Errorf("%w: got %d, want %d", ErrAnswerCount, len(answers), qs.Len())
	}

	ctrl := quiz.NewController(qs)
	for _, yes := range answers {
		if yes {
			ctrl.AnswerYes()
		} else {
			ctrl.AnswerNo()
		}
	}

	accepted := ctrl.Accepted()
	r := score.Compute(len(accepted), ctrl.Total())
	path, err := exp.Export(ctx, capture.NewCard(r, accepted))
	if err != nil {
		return fmt.Errorf("export card: %w", err)
	}

	fmt.Fprintf(out, "%s (%d%% Compatible) %s\n", r.Fraction(), r.Percentage, r.Tier.Message().Title)
	fmt.Fprintln(out, path)
	return nil
}

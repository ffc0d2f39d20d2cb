package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the active question set",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		qs, err := loadQuestions(cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i, q := range qs.All() {
			fmt.Fprintf(out, "%d. %s\n", i+1, q)
		}
		return nil
	},
}

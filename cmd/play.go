package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/extract"
	"github.com/abhisek/quizforge/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <file.txt|file.pdf>",
	Short: "Generate a quiz from a document and play it in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		svc, err := buildService(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		text, _, err := extract.FromFile(args[0])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		questions, _ := cmd.Flags().GetInt("questions")
		options, _ := cmd.Flags().GetInt("options")

		result := svc.Generate(cmd.Context(), text, questions, options)
		if len(result) == 0 {
			return errors.New("no questions could be generated from this document")
		}

		return tui.Run(result)
	},
}

func init() {
	playCmd.Flags().IntP("questions", "n", 5, "number of questions to generate")
	playCmd.Flags().IntP("options", "o", 4, "number of options per question")
}

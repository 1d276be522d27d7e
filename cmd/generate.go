package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/extract"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file.txt|file.pdf>",
	Short: "Generate a quiz from a document and print it as JSON",
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

		text, format, err := extract.FromFile(args[0])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		questions, _ := cmd.Flags().GetInt("questions")
		options, _ := cmd.Flags().GetInt("options")

		result := svc.Generate(cmd.Context(), text, questions, options)
		if len(result) == 0 {
			fmt.Fprintln(os.Stderr, "no questions could be generated from this document")
		}

		out := struct {
			SourceFormat string `json:"source_format"`
			Questions    any    `json:"questions"`
		}{
			SourceFormat: format,
			Questions:    result.Ordered(),
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	generateCmd.Flags().IntP("questions", "n", 5, "number of questions to generate")
	generateCmd.Flags().IntP("options", "o", 4, "number of options per question")
}

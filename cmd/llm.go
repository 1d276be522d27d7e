package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/config"
	"github.com/abhisek/quizforge/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show the configured LLM provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		fmt.Printf("provider:    %s\n", cfg.LLM.Provider)
		fmt.Printf("tagger:      %s\n", cfg.Tagger)
		fmt.Printf("distractors: %s\n", cfg.Distractor)

		if !cfg.NeedsProvider() {
			fmt.Println("\nNo LLM capability selected; the pipeline runs fully offline.")
			return nil
		}

		if err := cfg.LLM.Validate(); err != nil {
			return err
		}

		provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, nil)
		if err != nil {
			return err
		}

		model := provider.ModelID()
		fmt.Printf("model:       %s\n", model)
		if cost := llm.LookupCost(model); cost != nil {
			fmt.Printf("pricing:     $%.2f in / $%.2f out per 1M tokens\n",
				cost.InputPerMTok, cost.OutputPerMTok)
		}
		return nil
	},
}

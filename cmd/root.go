package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/config"
	"github.com/abhisek/quizforge/internal/distractor"
	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/nlp"
	"github.com/abhisek/quizforge/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "quizforge",
	Short: "Turn documents into multiple-choice quizzes",
	Long:  "Quizforge extracts the noteworthy terms of a text or PDF document and turns them into fill-in-the-blank multiple-choice questions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("tagger", "", "NER capability: llm or heuristic (overrides QUIZFORGE_TAGGER)")
	rootCmd.PersistentFlags().String("distractors", "", "wrong-answer source: llm or pool (overrides QUIZFORGE_DISTRACTOR)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges the environment config with command-line
// overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Load()
	if v, _ := cmd.Flags().GetString("tagger"); v != "" {
		cfg.Tagger = v
	}
	if v, _ := cmd.Flags().GetString("distractors"); v != "" {
		cfg.Distractor = v
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildService assembles the quiz pipeline from configuration.
func buildService(ctx context.Context, cfg config.Config) (*quiz.Service, error) {
	logger := newLogger(cfg.LogLevel)
	tok := nlp.NewRuleTokenizer()

	var provider llm.Provider
	if cfg.NeedsProvider() {
		p, err := llm.NewProvider(ctx, cfg.LLM, logger)
		if err != nil {
			return nil, fmt.Errorf("configure LLM provider: %w", err)
		}
		provider = p
	}

	var tagger nlp.Tagger
	if cfg.Tagger == config.TaggerLLM {
		tagger = nlp.NewLLMTagger(provider)
	} else {
		tagger = nlp.NewHeuristicTagger(tok)
	}

	var builder distractor.Builder
	if cfg.Distractor == config.DistractorLLM {
		builder = distractor.LLMBuilder(provider)
	} else {
		builder = distractor.PoolBuilder(tok)
	}

	return quiz.NewService(tok, tagger, builder, logger), nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

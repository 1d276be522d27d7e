// Package config assembles process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/server"
)

// Tagger selection values.
const (
	TaggerLLM       = "llm"
	TaggerHeuristic = "heuristic"
)

// Distractor selection values.
const (
	DistractorLLM  = "llm"
	DistractorPool = "pool"
)

// Config is the full process configuration.
type Config struct {
	// Tagger selects the NER capability: "llm" or "heuristic".
	Tagger string

	// Distractor selects the wrong-answer source: "llm" or "pool".
	Distractor string

	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string

	LLM    llm.Config
	Server server.Config
}

// Load reads an optional .env file, then builds the Config from
// environment variables.
func Load() Config {
	// Missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	cfg := Config{
		Tagger:     TaggerHeuristic,
		Distractor: DistractorPool,
		LogLevel:   "info",
		LLM:        llm.ConfigFromEnv(),
		Server:     server.DefaultConfig(),
	}

	// When any provider key is discoverable, prefer the LLM-backed
	// capabilities without further configuration.
	if discovered, ok := llm.DiscoverConfig(); ok && os.Getenv("QUIZFORGE_LLM_PROVIDER") == "" {
		cfg.LLM = discovered
		cfg.Tagger = TaggerLLM
		cfg.Distractor = DistractorLLM
	}

	if v := os.Getenv("QUIZFORGE_TAGGER"); v != "" {
		cfg.Tagger = v
	}
	if v := os.Getenv("QUIZFORGE_DISTRACTOR"); v != "" {
		cfg.Distractor = v
	}
	if v := os.Getenv("QUIZFORGE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("QUIZFORGE_HTTP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("QUIZFORGE_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = strings.Split(v, ",")
	}

	return cfg
}

// Validate checks cross-field consistency, including provider keys
// when an LLM-backed capability is selected.
func (c Config) Validate() error {
	switch c.Tagger {
	case TaggerLLM, TaggerHeuristic:
	default:
		return fmt.Errorf("unknown tagger %q (want %q or %q)", c.Tagger, TaggerLLM, TaggerHeuristic)
	}
	switch c.Distractor {
	case DistractorLLM, DistractorPool:
	default:
		return fmt.Errorf("unknown distractor source %q (want %q or %q)", c.Distractor, DistractorLLM, DistractorPool)
	}
	if c.Tagger == TaggerLLM || c.Distractor == DistractorLLM {
		if err := c.LLM.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// NeedsProvider reports whether any selected capability requires an
// LLM provider.
func (c Config) NeedsProvider() bool {
	return c.Tagger == TaggerLLM || c.Distractor == DistractorLLM
}

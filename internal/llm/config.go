package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures a provider backend.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string

	// BaseURL points the client at an OpenAI-compatible service.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig tunes the retry decorator's backoff schedule.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig favors each vendor's small fast model: quiz tagging
// and distractor prompts are short and don't need a frontier model.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays QUIZFORGE_* environment variables onto the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setenv := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setenv(&cfg.Provider, "QUIZFORGE_LLM_PROVIDER")
	setenv(&cfg.Anthropic.APIKey, "QUIZFORGE_ANTHROPIC_API_KEY")
	setenv(&cfg.Anthropic.Model, "QUIZFORGE_ANTHROPIC_MODEL")
	setenv(&cfg.OpenAI.APIKey, "QUIZFORGE_OPENAI_API_KEY")
	setenv(&cfg.OpenAI.Model, "QUIZFORGE_OPENAI_MODEL")
	setenv(&cfg.OpenAI.BaseURL, "QUIZFORGE_OPENAI_BASE_URL")
	setenv(&cfg.Gemini.APIKey, "QUIZFORGE_GEMINI_API_KEY")
	setenv(&cfg.Gemini.Model, "QUIZFORGE_GEMINI_MODEL")
	setenv(&cfg.OpenRouter.APIKey, "QUIZFORGE_OPENROUTER_API_KEY")
	setenv(&cfg.OpenRouter.Model, "QUIZFORGE_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the vendors' conventional API key variables
// (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY,
// OPENROUTER_API_KEY, in that order) and returns a Config for the
// first key found. The second return is false when no key is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has the credentials it
// needs. The mock provider needs none.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("QUIZFORGE_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("QUIZFORGE_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("QUIZFORGE_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("QUIZFORGE_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("requires API key", func(t *testing.T) {
		if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"}); err == nil {
			t.Fatal("expected an error without an API key")
		}
	})

	t.Run("vendor-prefixed model passes through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "anthropic/claude-3-haiku",
		})
		if err != nil {
			t.Fatalf("NewOpenRouterProvider: %v", err)
		}
		if p.ModelID() != "anthropic/claude-3-haiku" {
			t.Errorf("model = %q, want anthropic/claude-3-haiku", p.ModelID())
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  "sk-or-test",
			Model:   "meta-llama/llama-3-8b",
			BaseURL: "https://proxy.example/v1",
		})
		if err != nil {
			t.Fatalf("NewOpenRouterProvider: %v", err)
		}
		if p == nil {
			t.Fatal("expected a provider")
		}
	})
}

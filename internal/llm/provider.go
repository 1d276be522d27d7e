// Package llm abstracts the language-model backends the quiz pipeline
// can call for entity tagging and distractor generation. Pipeline code
// talks to the Provider interface only; which vendor serves a request
// is a configuration concern.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is a single-method gateway to a language model. A Provider
// is safe for concurrent use once constructed.
type Provider interface {
	// Generate runs one completion. When the request carries a Schema,
	// the returned Content is JSON already validated against it;
	// otherwise Content is the model's raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the prompt conversation. Quiz generation is
// single-turn: one user message carrying the task input.
type Message struct {
	Role    Role
	Content string
}

// Schema constrains the model's output to a JSON structure. Name is a
// kebab-case identifier ("quiz-distractors", "entity-tags") that doubles
// as the tool or response-format name on vendors that need one.
type Schema struct {
	Name        string
	Description string

	// Definition is a standard JSON Schema document as a map.
	Definition map[string]any
}

// Request describes one completion call.
type Request struct {
	// System sets the model's role and rules for this call.
	System string

	// Messages is the conversation to complete.
	Messages []Message

	// Schema, when non-nil, switches the provider to its structured
	// output mechanism and triggers response validation.
	Schema *Schema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic sampling.
	Temperature float64
}

// Usage is the token accounting for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is the outcome of a successful Generate call.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw
	// model text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the call, which may be a
	// dated alias of the configured one.
	Model string

	// StopReason is normalized across vendors to "end" or "max_tokens".
	StopReason string
}

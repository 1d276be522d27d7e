package distractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/llm"
)

// maxContextChars bounds the document excerpt included in the prompt.
const maxContextChars = 2000

const systemPrompt = `You create wrong answers for fill-in-the-blank quiz questions.

Rules:
- You are given the correct answer and an excerpt of the source document.
- Produce plausible but incorrect alternatives of the same kind as the answer: a name for a name, a year for a year, an amount for an amount.
- Prefer alternatives that actually appear in the document excerpt.
- Every alternative must differ from the correct answer and from each other.
- Keep each alternative short, matching the answer's length and register.`

// optionsSchema is the structured output contract for distractor
// generation.
var optionsSchema = &llm.Schema{
	Name:        "quiz-distractors",
	Description: "Plausible incorrect options for a quiz answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"distractors": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Incorrect alternatives, each distinct from the correct answer",
			},
		},
		"required":             []any{"distractors"},
		"additionalProperties": false,
	},
}

// LLMGenerator asks an LLM provider for wrong answers, using the
// source document as grounding context.
type LLMGenerator struct {
	provider llm.Provider
	document string
}

// LLMBuilder returns a Builder producing LLM-backed generators bound
// to the given provider.
func LLMBuilder(provider llm.Provider) Builder {
	return func(document string) Generator {
		return &LLMGenerator{provider: provider, document: document}
	}
}

type distractorOutput struct {
	Distractors []string `json:"distractors"`
}

// Options generates count-1 wrong answers and merges in the correct
// one.
func (g *LLMGenerator) Options(ctx context.Context, answer string, count int) ([]string, error) {
	if count < 2 {
		return nil, &GenerationError{Answer: answer, Err: fmt.Errorf("option count %d too small", count)}
	}

	ctx = llm.WithPurpose(ctx, "distractor-gen")

	excerpt := g.document
	if len(excerpt) > maxContextChars {
		excerpt = excerpt[:maxContextChars]
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "Correct answer: %s\n", answer)
	fmt.Fprintf(&msg, "Wrong answers needed: %d\n\n", count-1)
	fmt.Fprintf(&msg, "Document excerpt:\n%s\n", excerpt)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: msg.String()}},
		Schema:    optionsSchema,
		MaxTokens: 256,
	})
	if err != nil {
		return nil, &GenerationError{Answer: answer, Err: err}
	}

	var raw distractorOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Answer: answer, Err: fmt.Errorf("parse response: %w", err)}
	}

	distractors := dedupe(raw.Distractors, answer)
	if len(distractors) < count-1 {
		return nil, &GenerationError{Answer: answer, Err: fmt.Errorf("got %d usable distractors, need %d", len(distractors), count-1)}
	}

	return assemble(answer, distractors, count), nil
}

// dedupe drops empty strings, duplicates, and anything equal to the
// answer (case-insensitive).
func dedupe(candidates []string, answer string) []string {
	seen := map[string]struct{}{strings.ToLower(answer): {}}
	var out []string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		key := strings.ToLower(c)
		if c == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

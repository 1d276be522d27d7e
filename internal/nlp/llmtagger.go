package nlp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/quizforge/internal/llm"
)

const taggerSystemPrompt = `You are a named-entity recognizer.

Rules:
- Find every named entity in the text: people, organizations, places, dates, amounts of money, percentages, events, products, works of art, laws, nationalities and groups, facilities, and languages.
- Report each entity span exactly as it appears in the text, character for character.
- Label each span with exactly one of: PERSON, ORG, GPE, LOC, DATE, MONEY, PERCENT, EVENT, PRODUCT, WORK_OF_ART, LAW, NORP, FAC, LANGUAGE.
- Report a span once even if it occurs multiple times.
- Report nothing that is not a named entity.`

// entitySchema is the structured output contract for NER tagging.
var entitySchema = &llm.Schema{
	Name:        "named-entities",
	Description: "Named entities found in a text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"entities": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The entity span exactly as written in the input",
						},
						"label": map[string]any{
							"type": "string",
							"enum": []any{
								LabelPerson, LabelOrg, LabelGPE, LabelLocation,
								LabelDate, LabelMoney, LabelPercent, LabelEvent,
								LabelProduct, LabelWorkOfArt, LabelLaw,
								LabelNORP, LabelFacility, LabelLanguage,
							},
						},
					},
					"required":             []any{"text", "label"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"entities"},
		"additionalProperties": false,
	},
}

// LLMTagger implements Tagger through an LLM provider with structured
// output. The provider is the process-wide, read-only model instance;
// the tagger itself holds no mutable state and is safe for concurrent
// use.
type LLMTagger struct {
	provider llm.Provider
}

// NewLLMTagger creates a Tagger over the given provider.
func NewLLMTagger(provider llm.Provider) *LLMTagger {
	return &LLMTagger{provider: provider}
}

type taggerOutput struct {
	Entities []struct {
		Text  string `json:"text"`
		Label string `json:"label"`
	} `json:"entities"`
}

// Tag returns the named entities the model finds in text.
func (t *LLMTagger) Tag(ctx context.Context, text string) ([]Entity, error) {
	ctx = llm.WithPurpose(ctx, "ner-tag")

	resp, err := t.provider.Generate(ctx, llm.Request{
		System:    taggerSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: text}},
		Schema:    entitySchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("NER tagging failed: %w", err)
	}

	var raw taggerOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse NER response: %w", err)
	}

	entities := make([]Entity, 0, len(raw.Entities))
	for _, e := range raw.Entities {
		entities = append(entities, Entity{Text: e.Text, Label: e.Label})
	}
	return entities, nil
}

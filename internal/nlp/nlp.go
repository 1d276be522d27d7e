// Package nlp defines the language-processing capabilities the quiz
// pipeline consumes: sentence/word segmentation and named-entity
// tagging. Implementations are injected at construction time so the
// pipeline can run against an LLM-backed tagger in production and
// deterministic stand-ins in tests.
package nlp

import "context"

// Entity is a named span recognized in document text.
type Entity struct {
	Text  string
	Label string
}

// Entity labels produced by taggers. The set mirrors the labels the
// extraction allow-list understands.
const (
	LabelPerson    = "PERSON"
	LabelOrg       = "ORG"
	LabelGPE       = "GPE"
	LabelLocation  = "LOC"
	LabelDate      = "DATE"
	LabelMoney     = "MONEY"
	LabelPercent   = "PERCENT"
	LabelEvent     = "EVENT"
	LabelProduct   = "PRODUCT"
	LabelWorkOfArt = "WORK_OF_ART"
	LabelLaw       = "LAW"
	LabelNORP      = "NORP"
	LabelFacility  = "FAC"
	LabelLanguage  = "LANGUAGE"
)

// Tagger is the named-entity recognition capability. Implementations
// must be deterministic for a fixed model and safe for concurrent use.
type Tagger interface {
	// Tag returns the named entities found in text. An empty slice is a
	// valid result and means no entities were recognized.
	Tag(ctx context.Context, text string) ([]Entity, error)
}

// Tokenizer is the sentence and word segmentation capability.
// Implementations must be deterministic and locale-stable.
type Tokenizer interface {
	// SentenceSplit breaks text into an ordered list of sentences.
	SentenceSplit(text string) []string

	// WordSplit breaks text into an ordered list of word tokens,
	// discarding punctuation.
	WordSplit(text string) []string
}

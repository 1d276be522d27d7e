// Package keywords turns tagged entities into candidate quiz answers.
package keywords

import (
	"context"
	"strings"
	"unicode"

	"github.com/abhisek/quizforge/internal/nlp"
)

// allowedLabels is the fixed allow-list of entity types that make fair
// quiz answers. Extend the list here, never ad hoc at call sites.
var allowedLabels = map[string]struct{}{
	nlp.LabelPerson:    {},
	nlp.LabelOrg:       {},
	nlp.LabelGPE:       {},
	nlp.LabelLocation:  {},
	nlp.LabelDate:      {},
	nlp.LabelMoney:     {},
	nlp.LabelPercent:   {},
	nlp.LabelEvent:     {},
	nlp.LabelProduct:   {},
	nlp.LabelWorkOfArt: {},
	nlp.LabelLaw:       {},
	nlp.LabelNORP:      {},
	nlp.LabelFacility:  {},
	nlp.LabelLanguage:  {},
}

// maxCandidateWords caps candidate phrases; longer spans blank out too
// much of a sentence to quiz on.
const maxCandidateWords = 4

// Extractor produces deduplicated candidate keywords from a document
// using the injected NER capability.
type Extractor struct {
	tagger nlp.Tagger
}

// New creates an Extractor over the given tagger.
func New(tagger nlp.Tagger) *Extractor {
	return &Extractor{tagger: tagger}
}

// Extract runs NER over the document and returns every entity span that
// passes the candidate filters, deduplicated by exact text with
// first-seen order preserved. An empty slice is a valid result and
// means no questions can be generated from this document.
func (e *Extractor) Extract(ctx context.Context, document string) ([]string, error) {
	entities, err := e.tagger.Tag(ctx, document)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var candidates []string

	for _, ent := range entities {
		text := strings.TrimSpace(ent.Text)
		if !acceptable(text, ent.Label) {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		candidates = append(candidates, text)
	}

	return candidates, nil
}

func acceptable(text, label string) bool {
	if len([]rune(text)) <= 2 {
		return false
	}
	if _, ok := allowedLabels[label]; !ok {
		return false
	}
	// Bare numbers are not quizzable, but inherently numeric entity
	// types (a year, an amount) are.
	if purelyNumeric(text) && label != nlp.LabelDate && label != nlp.LabelMoney && label != nlp.LabelPercent {
		return false
	}
	if len(strings.Fields(text)) > maxCandidateWords {
		return false
	}
	if nlp.IsStopArticle(text) {
		return false
	}
	return true
}

func purelyNumeric(text string) bool {
	for _, r := range text {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(text) > 0
}

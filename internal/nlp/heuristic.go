package nlp

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

// HeuristicTagger is an offline Tagger built on surface patterns. It
// exists so the pipeline can run without any model or API key; an
// LLM-backed tagger produces better spans when one is configured.
type HeuristicTagger struct {
	tok Tokenizer
}

// NewHeuristicTagger returns a pattern-based tagger.
func NewHeuristicTagger(tok Tokenizer) *HeuristicTagger {
	return &HeuristicTagger{tok: tok}
}

var (
	yearPattern    = regexp.MustCompile(`\b(1[0-9]{3}|20[0-9]{2})\b`)
	moneyPattern   = regexp.MustCompile(`[$€£]\s?[0-9][0-9,.]*|\b[0-9][0-9,.]*\s?(?:dollars|euros|pounds)\b`)
	percentPattern = regexp.MustCompile(`\b[0-9][0-9.]*\s?(?:%|percent)`)
	monthPattern   = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\b(?:\s+[0-9]{1,2})?(?:,?\s+[0-9]{4})?`)
)

// Tag scans the document sentence by sentence and reports capitalized
// spans, years, month dates, money amounts and percentages.
func (h *HeuristicTagger) Tag(_ context.Context, text string) ([]Entity, error) {
	var entities []Entity

	for _, m := range monthPattern.FindAllString(text, -1) {
		entities = append(entities, Entity{Text: strings.TrimSpace(m), Label: LabelDate})
	}
	for _, m := range moneyPattern.FindAllString(text, -1) {
		entities = append(entities, Entity{Text: strings.TrimSpace(m), Label: LabelMoney})
	}
	for _, m := range percentPattern.FindAllString(text, -1) {
		entities = append(entities, Entity{Text: strings.TrimSpace(m), Label: LabelPercent})
	}
	for _, m := range yearPattern.FindAllString(text, -1) {
		entities = append(entities, Entity{Text: m, Label: LabelDate})
	}

	for _, sentence := range h.tok.SentenceSplit(text) {
		entities = append(entities, capitalizedSpans(sentence, h.tok)...)
	}

	return entities, nil
}

// capitalizedSpans finds runs of capitalized words inside a sentence.
// A single capitalized word opening the sentence is ignored: it is
// capitalized by convention, not because it names anything.
func capitalizedSpans(sentence string, tok Tokenizer) []Entity {
	words := tok.WordSplit(sentence)
	var spans []Entity

	for i := 0; i < len(words); {
		if !isCapitalizedWord(words[i]) {
			i++
			continue
		}
		j := i
		for j < len(words) && isCapitalizedWord(words[j]) {
			j++
		}
		span := strings.Join(words[i:j], " ")
		if j-i > 1 || i > 0 {
			label := LabelOrg
			if j-i > 1 {
				label = LabelPerson
			}
			spans = append(spans, Entity{Text: span, Label: label})
		}
		i = j
	}
	return spans
}

func isCapitalizedWord(w string) bool {
	r := []rune(w)
	if len(r) == 0 || !unicode.IsUpper(r[0]) {
		return false
	}
	if IsStopWord(w) || IsQuestionWord(w) {
		return false
	}
	for _, c := range r[1:] {
		if !unicode.IsLetter(c) && c != '\'' && c != '-' {
			return false
		}
	}
	return true
}

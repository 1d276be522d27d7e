package nlp

import (
	"strings"
	"unicode"
)

// RuleTokenizer is a deterministic, dependency-free Tokenizer. Sentences
// end at a run of '.', '!' or '?' followed by whitespace or end of text;
// words are maximal runs of letters, digits, apostrophes and hyphens.
type RuleTokenizer struct{}

// NewRuleTokenizer returns the default rule-based tokenizer.
func NewRuleTokenizer() *RuleTokenizer {
	return &RuleTokenizer{}
}

// SentenceSplit breaks text into sentences. Terminal punctuation stays
// attached to its sentence. Whitespace-only fragments are dropped.
func (t *RuleTokenizer) SentenceSplit(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		// Consume the whole terminator run ("...", "?!").
		end := i
		for end+1 < len(runes) && isTerminal(runes[end+1]) {
			end++
		}
		// Only a boundary when followed by whitespace or end of text.
		if end+1 < len(runes) && !unicode.IsSpace(runes[end+1]) {
			i = end
			continue
		}
		if s := strings.TrimSpace(string(runes[start : end+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = end + 1
		i = end
	}

	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// WordSplit breaks text into word tokens, dropping punctuation.
func (t *RuleTokenizer) WordSplit(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
	})
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Package textnorm cleans raw document text before any analysis runs.
package textnorm

import (
	"errors"
	"strings"
	"unicode"

	"github.com/abhisek/quizforge/internal/nlp"
)

// ErrEmptyDocument reports that the input text was empty or whitespace
// before cleaning, or reduced to nothing by it.
var ErrEmptyDocument = errors.New("document is empty")

// Normalizer cleans raw document text: strips control characters and
// stray symbols, collapses whitespace, and guarantees every sentence
// carries terminal punctuation.
type Normalizer struct {
	tok nlp.Tokenizer
}

// New creates a Normalizer using the given tokenizer for sentence
// segmentation.
func New(tok nlp.Tokenizer) *Normalizer {
	return &Normalizer{tok: tok}
}

// Normalize returns the cleaned document as a single string.
// Returns ErrEmptyDocument when the input is blank or cleaning removes
// everything (e.g. an all-symbol document).
func (n *Normalizer) Normalize(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyDocument
	}

	flat := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(raw)

	var b strings.Builder
	for _, sentence := range n.tok.SentenceSplit(flat) {
		cleaned := cleanSentence(sentence)
		if cleaned == "" {
			continue
		}
		b.WriteString(cleaned)
		runes := []rune(cleaned)
		if !strings.ContainsRune(".!?", runes[len(runes)-1]) {
			b.WriteByte('.')
		}
		b.WriteByte(' ')
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", ErrEmptyDocument
	}
	return out, nil
}

// cleanSentence removes characters outside the allowed set and
// collapses whitespace runs to a single space.
func cleanSentence(sentence string) string {
	var b strings.Builder
	lastSpace := false

	for _, r := range sentence {
		switch {
		case unicode.IsSpace(r):
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastSpace = true
		case unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(".?!,;:", r):
			b.WriteRune(r)
			lastSpace = false
		}
	}

	return strings.TrimSpace(b.String())
}

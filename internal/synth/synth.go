// Package synth turns ranked keyword/sentence pairs into
// fill-in-the-blank questions.
package synth

import (
	"strings"

	"github.com/abhisek/quizforge/internal/nlp"
	"github.com/abhisek/quizforge/internal/ranker"
)

// Blank length bounds. The blank hides the answer's length within
// these limits so very short or very long answers don't give
// themselves away. Long answers still clamp to the maximum, which can
// understate their length; the behavior is kept as-is.
const (
	minBlankLen = 5
	maxBlankLen = 15
)

// QA is one synthesized question with its answer.
type QA struct {
	Question string
	Answer   string
}

// Synthesizer forms questions from ranked triples.
type Synthesizer struct {
	tok nlp.Tokenizer
}

// New creates a Synthesizer using the given tokenizer for
// interrogative detection.
func New(tok nlp.Tokenizer) *Synthesizer {
	return &Synthesizer{tok: tok}
}

// Synthesize walks triples in rank order and emits up to n questions,
// keyed by 1-based contiguous ordinal. Each source sentence is used at
// most once; triples with blank sentences, already-used sentences, or
// whose keyword does not literally occur in the sentence are skipped
// without consuming an ordinal.
func (s *Synthesizer) Synthesize(triples []ranker.Triple, n int) map[int]QA {
	result := make(map[int]QA)
	used := make(map[string]struct{})
	ordinal := 1

	for _, t := range triples {
		if ordinal > n {
			break
		}
		if strings.TrimSpace(t.Sentence) == "" {
			continue
		}
		if _, taken := used[t.Sentence]; taken {
			continue
		}
		// The answer must be redactable in place: without a literal
		// occurrence the question would leak it.
		if !strings.Contains(t.Sentence, t.Keyword) {
			continue
		}
		used[t.Sentence] = struct{}{}

		blank := strings.Repeat("_", blankLen(t.Keyword))
		question := strings.ReplaceAll(t.Sentence, t.Keyword, blank)

		if !s.interrogative(t.Sentence) {
			question = forceQuestionMark(question)
		}

		result[ordinal] = QA{Question: question, Answer: t.Keyword}
		ordinal++
	}

	return result
}

// blankLen clamps len(answer)+2 into [minBlankLen, maxBlankLen].
func blankLen(answer string) int {
	n := len([]rune(answer)) + 2
	if n < minBlankLen {
		return minBlankLen
	}
	if n > maxBlankLen {
		return maxBlankLen
	}
	return n
}

// interrogative reports whether the sentence already reads as a
// question: it ends with '?' or contains a question word.
func (s *Synthesizer) interrogative(sentence string) bool {
	if strings.HasSuffix(strings.TrimSpace(sentence), "?") {
		return true
	}
	for _, w := range s.tok.WordSplit(sentence) {
		if nlp.IsQuestionWord(w) {
			return true
		}
	}
	return false
}

// forceQuestionMark rewrites a declarative blanked sentence to end in
// a question mark.
func forceQuestionMark(question string) string {
	if strings.HasSuffix(question, ".") {
		return strings.TrimSuffix(question, ".") + " ?"
	}
	return question + " ?"
}

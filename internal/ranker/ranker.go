// Package ranker orders candidate keywords by importance and binds
// each one to the sentence that will carry its question.
package ranker

import (
	"sort"
	"strings"

	"github.com/abhisek/quizforge/internal/nlp"
	"github.com/abhisek/quizforge/internal/scorer"
)

// Triple pairs a candidate keyword with its composite score and the
// sentence chosen to support it.
type Triple struct {
	Score    float64
	Keyword  string
	Sentence string
}

// Rank scores every candidate and returns the surviving triples sorted
// by score descending. Ties keep the candidates' input order, so the
// result is deterministic for a fixed extractor. Candidates whose
// supporting sentence cannot be recovered are dropped; their keywords
// are returned separately for diagnostics.
func Rank(candidates []string, scores map[string]scorer.TokenScore, tok nlp.Tokenizer) (triples []Triple, dropped []string) {
	for _, keyword := range candidates {
		words := tok.WordSplit(strings.ToLower(keyword))

		sentence := supportingSentence(words, scores)
		if sentence == "" {
			dropped = append(dropped, keyword)
			continue
		}

		triples = append(triples, Triple{
			Score:    compositeScore(words, scores),
			Keyword:  keyword,
			Sentence: sentence,
		})
	}

	sort.SliceStable(triples, func(i, j int) bool {
		return triples[i].Score > triples[j].Score
	})
	return triples, dropped
}

// compositeScore sums the per-word average scores of the keyword's
// words. Words outside the scoring vocabulary contribute zero.
func compositeScore(words []string, scores map[string]scorer.TokenScore) float64 {
	var score float64
	for _, w := range words {
		if ts, ok := scores[w]; ok {
			score += ts.Average
		}
	}
	return score
}

// supportingSentence walks the keyword's words in order and returns the
// first recorded best sentence that contains every word of the keyword
// (case-insensitive). Returns "" when no such sentence exists.
func supportingSentence(words []string, scores map[string]scorer.TokenScore) string {
	for _, w := range words {
		ts, ok := scores[w]
		if !ok || ts.BestSentence == "" {
			continue
		}
		lower := strings.ToLower(ts.BestSentence)
		allPresent := true
		for _, other := range words {
			if !strings.Contains(lower, other) {
				allPresent = false
				break
			}
		}
		if allPresent {
			return ts.BestSentence
		}
	}
	return ""
}

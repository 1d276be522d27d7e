// Package scorer computes per-token importance scores over a document.
//
// Each sentence of the document is treated as one "document" of a tiny
// TF-IDF corpus, so a token's inverse document frequency measures how
// few sentences mention it. The scorer also remembers, per token, the
// sentence where the token's weight peaks; the ranker later uses that
// sentence as the question source.
package scorer

import (
	"math"
	"strings"
	"unicode"

	"github.com/abhisek/quizforge/internal/nlp"
)

// TokenScore is the importance record for a single lowercase token.
type TokenScore struct {
	// Average is the token's TF-IDF weight averaged over all sentences;
	// sentences that do not contain the token contribute zero.
	Average float64

	// BestSentence is the original (unfiltered) sentence where the
	// token's weight was maximal.
	BestSentence string
}

// Scorer fits a per-sentence TF-IDF model over a normalized document.
type Scorer struct {
	tok nlp.Tokenizer
}

// New creates a Scorer using the given tokenizer for sentence
// segmentation and word splitting.
func New(tok nlp.Tokenizer) *Scorer {
	return &Scorer{tok: tok}
}

// Score returns the TokenScore mapping for every vocabulary token of
// the document. Returns an empty map when the document has no
// sentences.
func (s *Scorer) Score(document string) map[string]TokenScore {
	unfiltered := s.tok.SentenceSplit(document)
	scores := make(map[string]TokenScore)
	if len(unfiltered) == 0 {
		return scores
	}

	// Filtered sentences drop stop words but stay index-aligned with
	// the unfiltered list.
	filtered := make([]string, len(unfiltered))
	for i, sentence := range unfiltered {
		filtered[i] = s.filterSentence(sentence)
	}

	counts := make([]map[string]int, len(filtered))
	df := make(map[string]int)
	for i, sentence := range filtered {
		counts[i] = termCounts(sentence)
		for term := range counts[i] {
			df[term]++
		}
	}

	// Smoothed idf with +1, matching the model the pipeline was tuned
	// against: idf = ln((1+n)/(1+df)) + 1.
	n := float64(len(filtered))
	idf := make(map[string]float64, len(df))
	for term, freq := range df {
		idf[term] = math.Log((1+n)/(1+float64(freq))) + 1
	}

	// Per-sentence weights, L2-normalized per row.
	type best struct {
		max float64
		idx int
	}
	totals := make(map[string]float64, len(df))
	bests := make(map[string]best, len(df))

	for i, row := range counts {
		var norm float64
		weights := make(map[string]float64, len(row))
		for term, tf := range row {
			w := float64(tf) * idf[term]
			weights[term] = w
			norm += w * w
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for term, w := range weights {
			w /= norm
			totals[term] += w
			if b, ok := bests[term]; !ok || w > b.max {
				bests[term] = best{max: w, idx: i}
			}
		}
	}

	for term := range df {
		ts := TokenScore{}
		if n > 0 {
			ts.Average = totals[term] / n
		}
		if b, ok := bests[term]; ok {
			ts.BestSentence = unfiltered[b.idx]
		}
		scores[term] = ts
	}

	return scores
}

// filterSentence removes stop words from a sentence, keeping the
// remaining words joined by single spaces.
func (s *Scorer) filterSentence(sentence string) string {
	words := s.tok.WordSplit(sentence)
	kept := words[:0]
	for _, w := range words {
		if !nlp.IsStopWord(w) {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// termCounts extracts the scoring vocabulary of one sentence: maximal
// runs of letters and digits, lowercased, at least two characters long.
func termCounts(sentence string) map[string]int {
	counts := make(map[string]int)
	for _, w := range strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len([]rune(w)) < 2 {
			continue
		}
		counts[w]++
	}
	return counts
}

package distractor

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/abhisek/quizforge/internal/nlp"
)

// PoolGenerator draws wrong answers from the document's own
// vocabulary. It needs no network or model, and its picks are
// reproducible: the random source is seeded from the answer text.
type PoolGenerator struct {
	pool []string
}

// PoolBuilder returns a Builder producing pool-backed generators.
func PoolBuilder(tok nlp.Tokenizer) Builder {
	return func(document string) Generator {
		return &PoolGenerator{pool: buildPool(tok, document)}
	}
}

// buildPool collects the document's distinct non-stop words longer
// than three characters, sorted for determinism.
func buildPool(tok nlp.Tokenizer, document string) []string {
	seen := make(map[string]struct{})
	var pool []string
	for _, w := range tok.WordSplit(document) {
		w = strings.Trim(w, ".,;:!?")
		if len([]rune(w)) <= 3 || nlp.IsStopWord(w) {
			continue
		}
		key := strings.ToLower(w)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pool = append(pool, w)
	}
	sort.Strings(pool)
	return pool
}

// Options picks count-1 distinct pool words and merges in the answer.
func (g *PoolGenerator) Options(_ context.Context, answer string, count int) ([]string, error) {
	if count < 2 {
		return nil, &GenerationError{Answer: answer, Err: fmt.Errorf("option count %d too small", count)}
	}

	eligible := make([]string, 0, len(g.pool))
	answerLower := strings.ToLower(answer)
	for _, w := range g.pool {
		if strings.ToLower(w) == answerLower || strings.Contains(answerLower, strings.ToLower(w)) {
			continue
		}
		eligible = append(eligible, w)
	}
	if len(eligible) < count-1 {
		return nil, &GenerationError{Answer: answer, Err: fmt.Errorf("pool has %d eligible words, need %d", len(eligible), count-1)}
	}

	h := fnv.New64a()
	h.Write([]byte(answer))
	rng := rand.New(rand.NewPCG(h.Sum64(), uint64(len(g.pool))))

	picks := rng.Perm(len(eligible))[:count-1]
	distractors := make([]string, count-1)
	for i, ix := range picks {
		distractors[i] = eligible[ix]
	}

	return assemble(answer, distractors, count), nil
}

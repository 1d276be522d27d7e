package scorer

import (
	"math"
	"testing"

	"github.com/abhisek/quizforge/internal/nlp"
)

func newScorer() *Scorer {
	return New(nlp.NewRuleTokenizer())
}

func TestScore_AveragesAndBestSentence(t *testing.T) {
	doc := "Marie Curie discovered polonium in 1898. She won the Nobel Prize in 1903."
	scores := newScorer().Score(doc)

	// Sentence 1 keeps five scoring terms after stop-word filtering,
	// sentence 2 keeps three ("she", "won", "the", "in" are stop
	// words); every term occurs in exactly one sentence, so L2
	// normalization gives 1/sqrt(5) and 1/sqrt(3) weights, averaged
	// over the two sentences.
	wantMarie := 1 / math.Sqrt(5) / 2
	wantNobel := 1 / math.Sqrt(3) / 2

	marie, ok := scores["marie"]
	if !ok {
		t.Fatal("expected a score for 'marie'")
	}
	if math.Abs(marie.Average-wantMarie) > 1e-9 {
		t.Errorf("marie average = %f, want %f", marie.Average, wantMarie)
	}
	if marie.BestSentence != "Marie Curie discovered polonium in 1898." {
		t.Errorf("marie best sentence = %q", marie.BestSentence)
	}

	nobel := scores["nobel"]
	if math.Abs(nobel.Average-wantNobel) > 1e-9 {
		t.Errorf("nobel average = %f, want %f", nobel.Average, wantNobel)
	}
	if nobel.BestSentence != "She won the Nobel Prize in 1903." {
		t.Errorf("nobel best sentence = %q", nobel.BestSentence)
	}

	// Stop words never reach the vocabulary.
	for _, absent := range []string{"she", "the", "in"} {
		if _, ok := scores[absent]; ok {
			t.Errorf("did not expect a score for stop word %q", absent)
		}
	}
}

func TestScore_BestSentencePrefersHigherWeight(t *testing.T) {
	// "gold" carries more of the shorter sentence's weight, so that
	// sentence must win.
	doc := "Gold is rare and precious. Gold gleams."
	scores := newScorer().Score(doc)

	gold, ok := scores["gold"]
	if !ok {
		t.Fatal("expected a score for 'gold'")
	}
	if gold.BestSentence != "Gold gleams." {
		t.Errorf("best sentence = %q, want %q", gold.BestSentence, "Gold gleams.")
	}
}

func TestScore_EmptyDocument(t *testing.T) {
	scores := newScorer().Score("")
	if len(scores) != 0 {
		t.Errorf("expected empty mapping, got %d entries", len(scores))
	}
}

func TestScore_NonNegative(t *testing.T) {
	scores := newScorer().Score("Alpha beta gamma. Beta gamma delta. Gamma delta epsilon.")
	for token, ts := range scores {
		if ts.Average < 0 {
			t.Errorf("token %q has negative average %f", token, ts.Average)
		}
		if ts.BestSentence == "" {
			t.Errorf("token %q has no best sentence", token)
		}
	}
}

package ranker

import (
	"reflect"
	"testing"

	"github.com/abhisek/quizforge/internal/nlp"
	"github.com/abhisek/quizforge/internal/scorer"
)

func TestRank_SortsByCompositeScore(t *testing.T) {
	scores := map[string]scorer.TokenScore{
		"marie": {Average: 0.2, BestSentence: "Marie Curie discovered polonium."},
		"curie": {Average: 0.3, BestSentence: "Marie Curie discovered polonium."},
		"nobel": {Average: 0.4, BestSentence: "She won the Nobel Prize."},
		"prize": {Average: 0.3, BestSentence: "She won the Nobel Prize."},
	}

	triples, dropped := Rank([]string{"Marie Curie", "Nobel Prize"}, scores, nlp.NewRuleTokenizer())
	if len(dropped) != 0 {
		t.Fatalf("unexpected drops: %v", dropped)
	}
	if len(triples) != 2 {
		t.Fatalf("got %d triples, want 2", len(triples))
	}

	// Nobel Prize: 0.4+0.3 = 0.7; Marie Curie: 0.2+0.3 = 0.5.
	if triples[0].Keyword != "Nobel Prize" || triples[1].Keyword != "Marie Curie" {
		t.Errorf("order = [%s, %s], want [Nobel Prize, Marie Curie]",
			triples[0].Keyword, triples[1].Keyword)
	}
	if triples[0].Sentence != "She won the Nobel Prize." {
		t.Errorf("sentence = %q", triples[0].Sentence)
	}
}

func TestRank_DropsUnrecoverableCandidates(t *testing.T) {
	// "curie" maps to a sentence that lacks "marie", and "marie" has no
	// score at all, so no supporting sentence contains both words.
	scores := map[string]scorer.TokenScore{
		"curie": {Average: 0.3, BestSentence: "Curie worked in Paris."},
	}

	triples, dropped := Rank([]string{"Marie Curie"}, scores, nlp.NewRuleTokenizer())
	if len(triples) != 0 {
		t.Fatalf("expected no triples, got %v", triples)
	}
	if !reflect.DeepEqual(dropped, []string{"Marie Curie"}) {
		t.Errorf("dropped = %v, want [Marie Curie]", dropped)
	}
}

func TestRank_SupportingSentenceIsCaseInsensitive(t *testing.T) {
	scores := map[string]scorer.TokenScore{
		"polonium": {Average: 0.5, BestSentence: "POLONIUM was named after Poland."},
	}

	triples, dropped := Rank([]string{"polonium"}, scores, nlp.NewRuleTokenizer())
	if len(dropped) != 0 {
		t.Fatalf("unexpected drops: %v", dropped)
	}
	if triples[0].Sentence != "POLONIUM was named after Poland." {
		t.Errorf("sentence = %q", triples[0].Sentence)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	scores := map[string]scorer.TokenScore{
		"alpha": {Average: 0.5, BestSentence: "Alpha leads."},
		"beta":  {Average: 0.5, BestSentence: "Beta follows."},
	}

	triples, _ := Rank([]string{"alpha", "beta"}, scores, nlp.NewRuleTokenizer())
	if triples[0].Keyword != "alpha" || triples[1].Keyword != "beta" {
		t.Errorf("tie order = [%s, %s], want [alpha, beta]",
			triples[0].Keyword, triples[1].Keyword)
	}
}

func TestRank_WordsOutsideVocabularyScoreZero(t *testing.T) {
	scores := map[string]scorer.TokenScore{
		"prize": {Average: 0.3, BestSentence: "The Nobel Prize was shared."},
	}

	triples, dropped := Rank([]string{"Nobel Prize"}, scores, nlp.NewRuleTokenizer())
	if len(dropped) != 0 {
		t.Fatalf("unexpected drops: %v", dropped)
	}
	if triples[0].Score != 0.3 {
		t.Errorf("score = %f, want 0.3", triples[0].Score)
	}
}

package synth

import (
	"strings"
	"testing"

	"github.com/abhisek/quizforge/internal/nlp"
	"github.com/abhisek/quizforge/internal/ranker"
)

func newSynth() *Synthesizer {
	return New(nlp.NewRuleTokenizer())
}

func TestSynthesize_BlanksAnswerAndForcesQuestionMark(t *testing.T) {
	triples := []ranker.Triple{
		{Score: 1, Keyword: "Marie Curie", Sentence: "Marie Curie discovered polonium."},
	}

	got := newSynth().Synthesize(triples, 5)
	if len(got) != 1 {
		t.Fatalf("got %d questions, want 1", len(got))
	}

	qa := got[1]
	if qa.Answer != "Marie Curie" {
		t.Errorf("answer = %q", qa.Answer)
	}
	// len("Marie Curie") = 11 runes, blank = 13 underscores.
	want := strings.Repeat("_", 13) + " discovered polonium ?"
	if qa.Question != want {
		t.Errorf("question = %q, want %q", qa.Question, want)
	}
	if strings.Contains(qa.Question, qa.Answer) {
		t.Errorf("question leaks the answer: %q", qa.Question)
	}
}

func TestSynthesize_BlankLengthClamps(t *testing.T) {
	tests := []struct {
		answer string
		want   int
	}{
		{"Go", 5},
		{"Curie", 7},
		{"polonium", 10},
		{"the Treaty of Westphalia", 15},
	}
	for _, tt := range tests {
		if got := blankLen(tt.answer); got != tt.want {
			t.Errorf("blankLen(%q) = %d, want %d", tt.answer, got, tt.want)
		}
	}
}

func TestSynthesize_SentenceUsedOnce(t *testing.T) {
	sentence := "Marie Curie and Pierre Curie shared the prize."
	triples := []ranker.Triple{
		{Score: 2, Keyword: "Marie Curie", Sentence: sentence},
		{Score: 1, Keyword: "Pierre Curie", Sentence: sentence},
		{Score: 0.5, Keyword: "polonium", Sentence: "She discovered polonium."},
	}

	got := newSynth().Synthesize(triples, 5)
	if len(got) != 2 {
		t.Fatalf("got %d questions, want 2", len(got))
	}
	if got[1].Answer != "Marie Curie" {
		t.Errorf("first answer = %q", got[1].Answer)
	}
	// The shared sentence is consumed by the higher-ranked triple; the
	// next ordinal comes from the remaining sentence with no gap.
	if got[2].Answer != "polonium" {
		t.Errorf("second answer = %q", got[2].Answer)
	}
}

func TestSynthesize_SkipsWhenKeywordNotLiteral(t *testing.T) {
	triples := []ranker.Triple{
		{Score: 1, Keyword: "MARIE CURIE", Sentence: "Marie Curie discovered polonium."},
	}
	if got := newSynth().Synthesize(triples, 5); len(got) != 0 {
		t.Errorf("expected no questions, got %v", got)
	}
}

func TestSynthesize_RespectsLimit(t *testing.T) {
	triples := []ranker.Triple{
		{Score: 3, Keyword: "alpha", Sentence: "The alpha came first."},
		{Score: 2, Keyword: "beta", Sentence: "The beta came second."},
		{Score: 1, Keyword: "gamma", Sentence: "The gamma came third."},
	}

	got := newSynth().Synthesize(triples, 2)
	if len(got) != 2 {
		t.Fatalf("got %d questions, want 2", len(got))
	}
	if _, ok := got[3]; ok {
		t.Error("ordinal 3 should not exist")
	}
}

func TestSynthesize_KeepsExistingQuestionMark(t *testing.T) {
	triples := []ranker.Triple{
		{Score: 1, Keyword: "polonium", Sentence: "Did she name polonium after Poland?"},
	}

	got := newSynth().Synthesize(triples, 5)
	q := got[1].Question
	if strings.Contains(q, " ?") {
		t.Errorf("question mark was forced onto an interrogative sentence: %q", q)
	}
	if !strings.HasSuffix(q, "?") {
		t.Errorf("question lost its terminator: %q", q)
	}
}

func TestSynthesize_EmptyInput(t *testing.T) {
	if got := newSynth().Synthesize(nil, 5); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

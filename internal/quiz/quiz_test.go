package quiz

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizforge/internal/distractor"
	"github.com/abhisek/quizforge/internal/nlp"
)

const curieDoc = "Marie Curie discovered polonium and radium in Paris. " +
	"She won the Nobel Prize in 1903. " +
	"Pierre Curie shared the award with Henri Becquerel."

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService() *Service {
	tok := nlp.NewRuleTokenizer()
	return NewService(tok, nlp.NewHeuristicTagger(tok), distractor.PoolBuilder(tok), testLogger())
}

func TestGenerate_FullPipeline(t *testing.T) {
	svc := newTestService()
	result := svc.Generate(context.Background(), curieDoc, 5, 4)

	// Three sentences, each carrying at least one entity, so exactly
	// three questions regardless of rank order.
	require.Len(t, result, 3)

	seenQuestions := make(map[string]struct{})
	for ordinal := 1; ordinal <= len(result); ordinal++ {
		q, ok := result[ordinal]
		require.True(t, ok, "ordinal %d missing: ordinals must be contiguous from 1", ordinal)
		assert.Equal(t, ordinal, q.Ordinal)

		assert.NotEmpty(t, q.Answer)
		assert.NotContains(t, q.Text, q.Answer, "question must not leak its answer")
		assert.Contains(t, q.Text, "_____", "question must contain a blank")
		assert.True(t, strings.HasSuffix(q.Text, "?"), "question %q must end with ?", q.Text)

		_, reused := seenQuestions[q.Text]
		assert.False(t, reused, "sentence reused across questions")
		seenQuestions[q.Text] = struct{}{}

		require.Len(t, q.Options, 4)
		answerCount := 0
		optSeen := make(map[string]struct{})
		for _, o := range q.Options {
			assert.NotEmpty(t, o)
			_, dup := optSeen[o]
			assert.False(t, dup, "duplicate option %q", o)
			optSeen[o] = struct{}{}
			if o == q.Answer {
				answerCount++
			}
		}
		assert.Equal(t, 1, answerCount, "answer must appear exactly once in options")
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	svc := newTestService()
	first := svc.Generate(context.Background(), curieDoc, 5, 4)
	second := svc.Generate(context.Background(), curieDoc, 5, 4)
	assert.Equal(t, first, second)
}

func TestGenerate_RespectsQuestionCount(t *testing.T) {
	svc := newTestService()
	result := svc.Generate(context.Background(), curieDoc, 1, 4)
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[1].Ordinal)
}

func TestGenerate_EmptyResultCases(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name     string
		document string
		count    int
	}{
		{"empty document", "", 5},
		{"whitespace document", "   \n\t  ", 5},
		{"symbols only", "@#$% ^&*", 5},
		{"no entities", "the cat sat on the mat and purred quietly.", 5},
		{"zero questions requested", curieDoc, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Generate(ctx, tt.document, tt.count, 4)
			assert.Empty(t, result)
		})
	}
}

type failingGenerator struct{}

func (failingGenerator) Options(context.Context, string, int) ([]string, error) {
	return nil, errors.New("generator down")
}

type malformedGenerator struct{}

func (malformedGenerator) Options(_ context.Context, answer string, _ int) ([]string, error) {
	return []string{answer, answer, "", "x"}, nil
}

func TestGenerate_FallbackOptionsOnGeneratorFailure(t *testing.T) {
	tok := nlp.NewRuleTokenizer()
	builder := func(string) distractor.Generator { return failingGenerator{} }
	svc := NewService(tok, nlp.NewHeuristicTagger(tok), builder, testLogger())

	result := svc.Generate(context.Background(), curieDoc, 5, 4)
	require.NotEmpty(t, result)
	for _, q := range result {
		assert.Equal(t, fallbackOptions(q.Answer), q.Options)
	}
}

func TestGenerate_FallbackOptionsOnMalformedList(t *testing.T) {
	tok := nlp.NewRuleTokenizer()
	builder := func(string) distractor.Generator { return malformedGenerator{} }
	svc := NewService(tok, nlp.NewHeuristicTagger(tok), builder, testLogger())

	result := svc.Generate(context.Background(), curieDoc, 5, 4)
	require.NotEmpty(t, result)
	for _, q := range result {
		assert.Equal(t, fallbackOptions(q.Answer), q.Options)
	}
}

func TestResult_Ordered(t *testing.T) {
	r := Result{
		2: {Ordinal: 2, Answer: "b"},
		1: {Ordinal: 1, Answer: "a"},
		3: {Ordinal: 3, Answer: "c"},
	}
	ordered := r.Ordered()
	require.Len(t, ordered, 3)
	assert.Equal(t, []string{"a", "b", "c"},
		[]string{ordered[0].Answer, ordered[1].Answer, ordered[2].Answer})
}

func TestValidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []string
		want bool
	}{
		{"valid", []string{"a", "b", "answer", "d"}, true},
		{"wrong count", []string{"a", "answer"}, false},
		{"answer missing", []string{"a", "b", "c", "d"}, false},
		{"answer twice", []string{"answer", "b", "answer", "d"}, false},
		{"blank entry", []string{"a", " ", "answer", "d"}, false},
		{"duplicate entry", []string{"a", "a", "answer", "d"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validOptions(tt.opts, "answer", 4))
		})
	}
}

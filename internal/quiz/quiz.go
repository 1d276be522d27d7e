// Package quiz assembles complete multiple-choice quizzes from raw
// document text. It orchestrates normalization, candidate extraction,
// scoring, ranking, and question synthesis, then attaches distractor
// options to each question.
//
// The package never fails a request: document-level problems (empty
// document, no candidates, no sentences) produce an empty Result, and
// per-question problems degrade the result instead of voiding it.
package quiz

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/abhisek/quizforge/internal/distractor"
	"github.com/abhisek/quizforge/internal/keywords"
	"github.com/abhisek/quizforge/internal/nlp"
	"github.com/abhisek/quizforge/internal/ranker"
	"github.com/abhisek/quizforge/internal/scorer"
	"github.com/abhisek/quizforge/internal/synth"
	"github.com/abhisek/quizforge/internal/textnorm"
)

// ErrNoCandidates reports that entity extraction produced nothing
// usable. It is absorbed into an empty Result, never returned to
// callers.
var ErrNoCandidates = errors.New("no usable candidate keywords")

// Question is one finished quiz question.
type Question struct {
	Ordinal int      `json:"ordinal"`
	Text    string   `json:"text"`
	Answer  string   `json:"answer"`
	Options []string `json:"options"`
}

// Result maps 1-based contiguous ordinals to questions. It may hold
// fewer questions than requested when the document cannot support
// more, including zero.
type Result map[int]Question

// Ordered returns the questions sorted by ordinal.
func (r Result) Ordered() []Question {
	ordinals := make([]int, 0, len(r))
	for o := range r {
		ordinals = append(ordinals, o)
	}
	sort.Ints(ordinals)

	out := make([]Question, 0, len(r))
	for _, o := range ordinals {
		out = append(out, r[o])
	}
	return out
}

// fallbackOptions is the fixed option set used when distractor
// generation fails for a question.
func fallbackOptions(answer string) []string {
	return []string{answer, "Option 2", "Option 3", "Option 4"}
}

// Service is the quiz-generation pipeline. All fields are set at
// construction and never mutated; a single Service is safe for
// concurrent requests.
type Service struct {
	tok     nlp.Tokenizer
	norm    *textnorm.Normalizer
	extract *keywords.Extractor
	score   *scorer.Scorer
	synth   *synth.Synthesizer
	builder distractor.Builder
	logger  *slog.Logger
}

// NewService wires the pipeline stages around the injected
// capabilities. A nil logger falls back to slog.Default.
func NewService(tok nlp.Tokenizer, tagger nlp.Tagger, builder distractor.Builder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		tok:     tok,
		norm:    textnorm.New(tok),
		extract: keywords.New(tagger),
		score:   scorer.New(tok),
		synth:   synth.New(tok),
		builder: builder,
		logger:  logger,
	}
}

// Generate produces up to questionCount questions from documentText,
// each with optionCount options. It returns an empty Result, never an
// error, on any unrecoverable document-level failure.
func (s *Service) Generate(ctx context.Context, documentText string, questionCount, optionCount int) Result {
	result := Result{}
	if questionCount <= 0 {
		return result
	}

	document, err := s.norm.Normalize(documentText)
	if err != nil {
		s.logger.Warn("quiz generation aborted", "error", err)
		return result
	}

	candidates, err := s.extract.Extract(ctx, document)
	if err != nil {
		s.logger.Warn("entity extraction failed", "error", err)
		return result
	}
	if len(candidates) == 0 {
		s.logger.Warn("quiz generation aborted", "error", ErrNoCandidates)
		return result
	}

	scores := s.score.Score(document)

	triples, droppedKeywords := ranker.Rank(candidates, scores, s.tok)
	for _, kw := range droppedKeywords {
		s.logger.Debug("candidate dropped: no supporting sentence", "keyword", kw)
	}

	questions := s.synth.Synthesize(triples, questionCount)
	if len(questions) == 0 {
		s.logger.Warn("no questions could be synthesized",
			"candidates", len(candidates), "ranked", len(triples))
		return result
	}

	gen := s.builder(document)
	for ordinal, qa := range questions {
		result[ordinal] = Question{
			Ordinal: ordinal,
			Text:    qa.Question,
			Answer:  qa.Answer,
			Options: s.options(ctx, gen, qa.Answer, optionCount),
		}
	}

	return result
}

// options asks the distractor generator for the option list, falling
// back to the fixed placeholder set when the collaborator fails or
// returns a malformed list.
func (s *Service) options(ctx context.Context, gen distractor.Generator, answer string, optionCount int) []string {
	opts, err := gen.Options(ctx, answer, optionCount)
	if err != nil {
		s.logger.Warn("distractor generation failed, using fallback", "answer", answer, "error", err)
		return fallbackOptions(answer)
	}
	if !validOptions(opts, answer, optionCount) {
		s.logger.Warn("distractor generator returned malformed options, using fallback", "answer", answer)
		return fallbackOptions(answer)
	}
	return opts
}

// validOptions checks the collaborator's contract: exactly optionCount
// entries, the answer exactly once, no blank or duplicate entries.
func validOptions(opts []string, answer string, optionCount int) bool {
	if len(opts) != optionCount {
		return false
	}
	answerSeen := 0
	seen := make(map[string]struct{}, len(opts))
	for _, o := range opts {
		if strings.TrimSpace(o) == "" {
			return false
		}
		if _, dup := seen[o]; dup {
			return false
		}
		seen[o] = struct{}{}
		if o == answer {
			answerSeen++
		}
	}
	return answerSeen == 1
}

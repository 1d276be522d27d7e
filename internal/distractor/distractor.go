// Package distractor produces the incorrect options that accompany a
// quiz answer. The pipeline consumes it through the narrow Generator
// contract; implementations decide where wrong answers come from.
package distractor

import (
	"context"
	"fmt"
	"hash/fnv"
)

// Generator produces the option list for one question.
type Generator interface {
	// Options returns count options containing answer exactly once,
	// the rest being plausible distinct wrong answers.
	Options(ctx context.Context, answer string, count int) ([]string, error)
}

// Builder constructs a Generator scoped to one document, so
// implementations can draw distractors from the document itself.
type Builder func(document string) Generator

// GenerationError reports that a Generator failed for one answer.
// The assembler absorbs it with fallback options; it never fails a
// whole quiz.
type GenerationError struct {
	Answer string
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating distractors for %q: %v", e.Answer, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// assemble merges the answer into the distractor list at a position
// derived from the answer text, keeping results reproducible.
func assemble(answer string, distractors []string, count int) []string {
	options := make([]string, 0, count)
	options = append(options, distractors[:count-1]...)

	h := fnv.New32a()
	h.Write([]byte(answer))
	pos := int(h.Sum32() % uint32(count))

	options = append(options, "")
	copy(options[pos+1:], options[pos:])
	options[pos] = answer
	return options
}

package llm

import "context"

type contextKey struct{}

var purposeKey contextKey

// WithPurpose labels the context with what a call is for ("ner-tag",
// "distractor-gen"); the logging decorator attaches the label to its
// events so per-stage costs can be told apart.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label, or "unlabeled" when none was set.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unlabeled"
}

package llm

import (
	"context"
	"log/slog"
	"time"
)

// LoggingProvider is a decorator that records every LLM request through
// the structured logger. Requests are identified by the purpose label
// attached to the context (e.g. "ner-tag", "distractor-gen").
type LoggingProvider struct {
	inner  Provider
	logger *slog.Logger
}

// WithLogging wraps a Provider with request logging. A nil logger
// falls back to slog.Default.
func WithLogging(p Provider, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	attrs := []any{
		"purpose", purpose,
		"model", l.inner.ModelID(),
		"latency_ms", time.Since(start).Milliseconds(),
	}

	if resp != nil {
		attrs = append(attrs,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
			"model", resp.Model,
		)
		if cost := LookupCost(resp.Model); cost != nil {
			attrs = append(attrs, "est_cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
		}
	}

	if err != nil {
		attrs = append(attrs, "error", err.Error())
		l.logger.Warn("llm request failed", attrs...)
	} else {
		l.logger.Debug("llm request", attrs...)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

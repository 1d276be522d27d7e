package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with exponential backoff
// and jitter. It wraps another Provider without changing its contract.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry decorates p with retry behavior.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, cfg: cfg}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.cfg.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &invalidRetried) {
			return nil, err
		}
		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

// retryable classifies an error. Malformed output gets exactly one
// retry; the flag tracks whether it was spent.
func retryable(err error, invalidRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A truncated response will truncate again at the same cap.
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return false
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Rate limits, 5xx and unclassified transport errors are all
	// worth another attempt.
	return true
}

// wait computes the backoff before the next attempt. A rate-limit
// error's server hint wins over the computed schedule.
func (r *RetryProvider) wait(attempt int, err error) time.Duration {
	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return limited.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	d = math.Min(d, float64(r.cfg.MaxWait))

	// ±20% jitter keeps concurrent workers from retrying in lockstep.
	d += d * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(d, 0))
}

package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retryingProvider re-issues a call after a transient failure. The factory
// installs it only when llm.retry.max_attempts is above one, so by default
// one user action costs one model call.
type retryingProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps p so transient errors are retried up to
// cfg.MaxAttempts times in total.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryingProvider{inner: p, config: cfg}
}

func (r *retryingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	budget := attemptBudget{left: r.config.MaxAttempts, invalidLeft: 1}
	for attempt := 0; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !budget.spend(err) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.config.wait(attempt, err)):
		}
	}
}

func (r *retryingProvider) ModelID() string {
	return r.inner.ModelID()
}

// attemptBudget tracks how many more calls a request may make. A reply
// that fails schema validation is resampled once at most.
type attemptBudget struct {
	left        int
	invalidLeft int
}

// spend records a failed attempt and reports whether another is allowed.
func (b *attemptBudget) spend(err error) bool {
	b.left--
	if b.left <= 0 || !Retryable(err) {
		return false
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if b.invalidLeft == 0 {
			return false
		}
		b.invalidLeft--
	}
	return true
}

// wait is the pause before the attempt following attempt. A rate limit
// with a Retry-After wins; otherwise the wait grows by Multiplier from
// InitialWait, is capped at MaxWait and gets ±20% jitter.
func (c RetryConfig) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(c.InitialWait)
	for range attempt {
		d *= c.Multiplier
		if d >= float64(c.MaxWait) {
			break
		}
	}
	d = min(d, float64(c.MaxWait))
	d += d * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

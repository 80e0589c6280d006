package llm

import (
	"context"
	"errors"
	"time"
)

// ResilientProvider decorates another Provider with a per-call timeout and
// a small number of retries with backoff on upstream failures. Context
// cancellation from the inbound request still wins over retries.
type ResilientProvider struct {
	inner      Provider
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
}

var _ Provider = &ResilientProvider{}

func NewResilientProvider(inner Provider, timeout time.Duration, maxRetries int) *ResilientProvider {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &ResilientProvider{
		inner:      inner,
		timeout:    timeout,
		maxRetries: maxRetries,
		backoff:    500 * time.Millisecond,
	}
}

func (r *ResilientProvider) Chat(ctx context.Context, history []Message, opts ...Option) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(r.backoff * time.Duration(attempt)):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		answer, err := r.inner.Chat(callCtx, history, opts...)
		cancel()

		if err == nil {
			return answer, nil
		}
		lastErr = err

		// Only upstream failures are worth retrying; a cancelled request or
		// a caller bug is not.
		if !errors.Is(err, ErrUpstream) && !errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	return "", lastErr
}

func (r *ResilientProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, opts ...Option) (string, error) {
	history := []Message{
		{Role: RoleSystem, Content: systemPrompt},
		{Role: RoleUser, Content: userPrompt},
	}
	return r.Chat(ctx, history, opts...)
}

package llm

import (
	"context"
	"errors"
	"time"
)

// timeoutProvider bounds each Generate call, retries included when it
// wraps the retry decorator.
type timeoutProvider struct {
	next    Provider
	timeout time.Duration
}

// WithTimeout wraps a provider so a single Generate call cannot outlive
// the given duration. A non-positive duration returns the provider
// unwrapped.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &timeoutProvider{next: p, timeout: timeout}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.next.Generate(ctx, req)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		// Surface the expiry as a provider failure so callers fall back
		// the same way they do for an unreachable API.
		return nil, &ErrProviderUnavailable{Err: err}
	}
	return resp, err
}

func (t *timeoutProvider) ModelID() string {
	return t.next.ModelID()
}

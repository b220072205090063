// Package poll retries a condition at a fixed interval until it holds,
// the condition fails hard, or the context expires.
package poll

import (
	"context"
	"fmt"
	"time"
)

// Condition is evaluated once per attempt. Returning done stops polling
// with success; returning an error stops polling immediately.
type Condition func(ctx context.Context) (done bool, err error)

// Until evaluates fn now and then every interval. The context bounds the
// total wait; its cause is wrapped in the returned error.
func Until(ctx context.Context, interval time.Duration, fn Condition) error {
	for {
		done, err := fn(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("condition never became true: %w", ctx.Err())
		case <-time.After(interval):
		}
	}
}

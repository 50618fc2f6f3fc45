package funnel

import (
	"context"
	"time"
)

// RunWithMinimumWait runs op and returns only after both op has finished
// and minWait has elapsed, so a fast external call cannot cut a
// processing screen short. Cancelling ctx releases the caller immediately;
// no timer outlives the call.
func RunWithMinimumWait(ctx context.Context, minWait time.Duration, op func(ctx context.Context) error) error {
	timer := time.NewTimer(minWait)
	defer timer.Stop()

	done := make(chan error, 1)
	go func() {
		done <- op(ctx)
	}()

	var opErr error
	select {
	case opErr = <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if opErr != nil {
		// no point holding the user on the animation for a failed call
		return opErr
	}

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

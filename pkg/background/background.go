// Package background provides a cancellable handle for deferred
// fire-and-forget work, replacing bare timer conventions so component
// teardown can deterministically cancel in-flight background fetches.
package background

import (
	"context"
	"time"
)

// Task is a handle to a spawned background function
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Spawn runs fn on its own goroutine after the given delay. Cancelling the
// parent context or the returned handle before the delay elapses prevents
// fn from running at all; cancelling while fn runs cancels its context.
func Spawn(ctx context.Context, delay time.Duration, fn func(context.Context) error) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		defer cancel()

		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				t.err = ctx.Err()
				return
			case <-timer.C:
			}
		} else if ctx.Err() != nil {
			t.err = ctx.Err()
			return
		}

		t.err = fn(ctx)
	}()

	return t
}

// Cancel stops the task: before the delay elapses the function never runs,
// afterwards its context is cancelled
func (t *Task) Cancel() {
	t.cancel()
}

// Done returns a channel closed when the task has finished
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes and returns its error
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

package background

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSpawnRunsAfterDelay(t *testing.T) {
	var ran atomic.Bool
	task := Spawn(context.Background(), 10*time.Millisecond, func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})

	require.NoError(t, task.Wait())
	require.True(t, ran.Load())
}

func TestCancelBeforeDelayPreventsRun(t *testing.T) {
	var ran atomic.Bool
	task := Spawn(context.Background(), 200*time.Millisecond, func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})

	task.Cancel()
	err := task.Wait()

	require.ErrorIs(t, err, context.Canceled)
	require.False(t, ran.Load())
}

func TestWaitReturnsFunctionError(t *testing.T) {
	wantErr := errors.New("fetch failed")
	task := Spawn(context.Background(), 0, func(ctx context.Context) error {
		return wantErr
	})

	require.ErrorIs(t, task.Wait(), wantErr)
}

func TestParentContextCancellationPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})

	task := Spawn(ctx, 0, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})

	<-started
	cancel()
	require.ErrorIs(t, task.Wait(), context.Canceled)
}

func TestDoneClosesOnCompletion(t *testing.T) {
	task := Spawn(context.Background(), 0, func(ctx context.Context) error { return nil })

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("task did not finish")
	}
}

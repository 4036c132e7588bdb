package gpool

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRunnerLimitsConcurrency(t *testing.T) {
	tr := NewTaskRunner(2, nil)

	var running, peak, done int32
	for i := 0; i < 8; i++ {
		err := tr.Submit(Task{
			Ctx: context.Background(),
			TaskFunc: func(ctx context.Context) {
				n := atomic.AddInt32(&running, 1)
				for {
					old := atomic.LoadInt32(&peak)
					if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				atomic.AddInt32(&done, 1)
			},
		})
		require.NoError(t, err)
	}
	tr.Wait()

	assert.Equal(t, int32(8), atomic.LoadInt32(&done))
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestTaskRunnerBusy(t *testing.T) {
	tr := NewTaskRunner(1, nil)
	release := make(chan struct{})
	require.NoError(t, tr.Submit(Task{TaskFunc: func(context.Context) { <-release }}))

	err := tr.SubmitImmediately(Task{TaskFunc: func(context.Context) {}})
	assert.ErrorIs(t, err, ErrTaskRunnerBusy)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err = tr.Submit(Task{Ctx: ctx, TaskFunc: func(context.Context) {}})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	tr.Close()
	assert.ErrorIs(t, tr.Submit(Task{TaskFunc: func(context.Context) {}}), ErrTaskRunnerClosed)
}

func TestTaskRunnerPanicHandler(t *testing.T) {
	var caught atomic.Value
	tr := NewTaskRunner(1, func(ctx context.Context, throwValue any) {
		caught.Store(throwValue)
	})
	require.NoError(t, tr.Submit(Task{TaskFunc: func(context.Context) { panic("boom") }}))
	tr.Wait()
	assert.Equal(t, "boom", caught.Load())
}

package task

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwait(t *testing.T) {
	p := NewPool(2)

	t.Run("value", func(t *testing.T) {
		tk := Go(context.Background(), p, func(ctx context.Context) (string, error) {
			return "inv-1", nil
		})
		v, err := tk.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "inv-1", v)
	})

	t.Run("failure", func(t *testing.T) {
		boom := errors.New("store down")
		tk := Go(context.Background(), p, func(ctx context.Context) (int, error) {
			return 0, boom
		})
		_, err := tk.Await(context.Background())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("panic becomes an error", func(t *testing.T) {
		tk := Go(context.Background(), p, func(ctx context.Context) (int, error) {
			panic("bad")
		})
		_, err := tk.Await(context.Background())
		assert.ErrorContains(t, err, "panicked")
	})
}

func TestDetachedFromCaller(t *testing.T) {
	p := NewPool(1)
	ctx, cancel := context.WithCancel(context.Background())

	release := make(chan struct{})
	var sawCancel atomic.Bool
	tk := Go(ctx, p, func(ctx context.Context) (bool, error) {
		<-release
		sawCancel.Store(ctx.Err() != nil)
		return true, nil
	})

	cancel()
	_, err := tk.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	ok, err := tk.Await(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, sawCancel.Load())
}

func TestOnComplete(t *testing.T) {
	p := NewPool(1)
	release := make(chan struct{})
	tk := Go(context.Background(), p, func(ctx context.Context) (int, error) {
		<-release
		return 7, nil
	})

	got := make(chan int, 2)
	tk.OnComplete(func(v int, err error) { got <- v })
	close(release)
	<-tk.Done()

	tk.OnComplete(func(v int, err error) { got <- v * 2 })
	assert.Equal(t, 7, <-got)
	assert.Equal(t, 14, <-got)
}

func TestPoolBound(t *testing.T) {
	p := NewPool(2)
	var running, peak atomic.Int32

	tasks := make([]*Task[struct{}], 6)
	for i := range tasks {
		tasks[i] = Go(context.Background(), p, func(ctx context.Context) (struct{}, error) {
			n := running.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return struct{}{}, nil
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, p.Wait(ctx))
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

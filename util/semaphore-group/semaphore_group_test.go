package semaphoregroup

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemaphoreGroup_LimitsConcurrency(t *testing.T) {
	sg := NewSemaphoreGroup(2)

	var running, peak atomic.Int32
	for i := 0; i < 10; i++ {
		err := sg.Go(context.Background(), func() {
			cur := running.Add(1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
		})
		require.NoError(t, err)
	}
	sg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Equal(t, int32(0), running.Load())
}

func TestSemaphoreGroup_Unbounded(t *testing.T) {
	sg := NewSemaphoreGroup(0)

	var done atomic.Int32
	for i := 0; i < 50; i++ {
		require.NoError(t, sg.Go(context.Background(), func() {
			done.Add(1)
		}))
	}
	sg.Wait()

	assert.Equal(t, int32(50), done.Load())
}

func TestSemaphoreGroup_AddCancelled(t *testing.T) {
	sg := NewSemaphoreGroup(1)
	require.NoError(t, sg.Add(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := sg.Add(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	sg.Done()
	sg.Wait()
}

func TestSemaphoreGroup_CancelledContextNeverSchedules(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, limit := range []int{0, 1, 4} {
		sg := NewSemaphoreGroup(limit)

		var ran atomic.Int32
		for i := 0; i < 100; i++ {
			err := sg.Go(ctx, func() {
				ran.Add(1)
			})
			assert.ErrorIs(t, err, context.Canceled)
		}
		sg.Wait()

		assert.Equal(t, int32(0), ran.Load(), "limit %d", limit)
	}
}

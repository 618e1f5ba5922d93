package semaphoregroup

import (
	"context"
	"sync"
)

// SemaphoreGroup combines sync.WaitGroup and a semaphore.
// A group created with a limit <= 0 never blocks in Add.
type SemaphoreGroup struct {
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// NewSemaphoreGroup creates a new SemaphoreGroup with the specified semaphore limit.
func NewSemaphoreGroup(limit int) *SemaphoreGroup {
	sg := &SemaphoreGroup{}
	if limit > 0 {
		sg.semaphore = make(chan struct{}, limit)
	}
	return sg
}

// Add acquires a slot and registers one unit of work
// A cancelled ctx always fails, even when a slot is free.
func (sg *SemaphoreGroup) Add(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if sg.semaphore == nil {
		sg.wg.Add(1)
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case sg.semaphore <- struct{}{}:
		sg.wg.Add(1)
		return nil
	}
}

// Done releases a slot. Must be called after a successful Add.
func (sg *SemaphoreGroup) Done() {
	if sg.semaphore != nil {
		<-sg.semaphore
	}
	sg.wg.Done()
}

// Go acquires a slot and runs fn in a new goroutine, releasing the slot when fn returns.
func (sg *SemaphoreGroup) Go(ctx context.Context, fn func()) error {
	if err := sg.Add(ctx); err != nil {
		return err
	}
	go func() {
		defer sg.Done()
		fn()
	}()
	return nil
}

// Wait blocks until every unit of work registered with Add is done
func (sg *SemaphoreGroup) Wait() {
	sg.wg.Wait()
}

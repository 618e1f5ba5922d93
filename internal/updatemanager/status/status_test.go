package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	assert.Equal(t, "Extracting... 0%", Progress(0))
	assert.Equal(t, "Extracting... 66%", Progress(66))

	percent, ok := ParseProgress(Progress(33))
	assert.True(t, ok)
	assert.Equal(t, 33, percent)

	_, ok = ParseProgress("Starting patch...")
	assert.False(t, ok)

	_, ok = ParseProgress("Extracting... lots")
	assert.False(t, ok)
}

func TestSynchronized(t *testing.T) {
	var received []string
	// appending without a lock is only safe because Synchronized serializes the calls
	sink := Synchronized(func(s string) {
		received = append(received, s)
	})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink("tick")
		}()
	}
	wg.Wait()

	assert.Len(t, received, 100)
}

func TestSynchronized_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		Synchronized(nil)("ignored")
	})
}

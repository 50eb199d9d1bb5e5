package concurrency

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()

	assert.Same(t, lm.GetLock("inv"), lm.GetLock("inv"))
	assert.NotSame(t, lm.GetLock("inv"), lm.GetLock("other"))
}

func TestLockManager_WithLockSerializes(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.WithLock("inv", func() error {
				current := counter
				counter = current + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestLockManager_WithLockReturnsError(t *testing.T) {
	lm := NewLockManager()
	want := errors.New("boom")

	assert.ErrorIs(t, lm.WithLock("inv", func() error { return want }), want)
	assert.True(t, lm.GetLock("inv").TryLock(), "lock is released after an error")
}

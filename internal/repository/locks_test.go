package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Overlapping writes to the same key must apply one at a time, so the
// critical section below can never observe itself running twice.
func TestKeyedLocks_SerializesSameKey(t *testing.T) {
	var (
		locks  keyedLocks
		mu     sync.Mutex
		active int
		peak   int
		wg     sync.WaitGroup
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock(7)
			defer unlock()

			mu.Lock()
			active++
			if active > peak {
				peak = active
			}
			mu.Unlock()

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, peak)
	assert.Equal(t, 0, active)
}

func TestKeyedLocks_DistinctKeysIndependent(t *testing.T) {
	var locks keyedLocks

	unlockA := locks.lock(1)
	// A held lock on key 1 must not block key 2.
	done := make(chan struct{})
	go func() {
		unlockB := locks.lock(2)
		unlockB()
		close(done)
	}()
	<-done
	unlockA()
}

func TestKeyedLocks_Reentry(t *testing.T) {
	var locks keyedLocks
	for i := 0; i < 3; i++ {
		unlock := locks.lock(9)
		unlock()
	}
}

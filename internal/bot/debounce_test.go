package bot

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerFiresOnceAfterBurst(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)

	var mu sync.Mutex
	var fired []uint64

	record := func(seq uint64) {
		if d.Stale(1, seq) {
			return
		}
		mu.Lock()
		fired = append(fired, seq)
		mu.Unlock()
	}

	// three quick keystrokes; only the last dispatch survives
	d.Trigger(1, record)
	d.Trigger(1, record)
	d.Trigger(1, record)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(fired) == 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	assert.Equal(t, []uint64{3}, fired)
	mu.Unlock()
}

func TestDebouncerStaleGuard(t *testing.T) {
	d := newDebouncer(time.Millisecond)

	done := make(chan uint64, 1)
	d.Trigger(7, func(seq uint64) { done <- seq })
	seq := <-done
	assert.False(t, d.Stale(7, seq))

	// new input after the fire makes the old sequence stale: a late
	// response carrying it must be dropped
	d.Trigger(7, func(uint64) {})
	assert.True(t, d.Stale(7, seq))
}

func TestDebouncerChatsAreIndependent(t *testing.T) {
	d := newDebouncer(time.Millisecond)

	done := make(chan uint64, 1)
	d.Trigger(1, func(seq uint64) { done <- seq })
	seq := <-done

	d.Trigger(2, func(uint64) {})
	assert.False(t, d.Stale(1, seq), "another chat's typing must not supersede this one")
}

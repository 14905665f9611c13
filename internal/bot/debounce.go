package bot

import (
	"sync"
	"time"
)

// debouncer delays search dispatch while the operator is still typing. Each
// keystroke bumps the chat's sequence and re-arms the timer; when a timer
// fires it hands its sequence to the callback, which must drop the result if
// the sequence went stale meanwhile. In-flight requests are never cancelled,
// only their results discarded, so a slow old response cannot overwrite a
// newer one.
type debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	seqs   map[int64]uint64
	timers map[int64]*time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		seqs:   make(map[int64]uint64),
		timers: make(map[int64]*time.Timer),
	}
}

// Trigger schedules fn after the delay, superseding any pending dispatch for
// the chat. fn runs on the timer goroutine.
func (d *debouncer) Trigger(chatID int64, fn func(seq uint64)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seqs[chatID]++
	seq := d.seqs[chatID]
	if t, ok := d.timers[chatID]; ok {
		t.Stop()
	}
	d.timers[chatID] = time.AfterFunc(d.delay, func() { fn(seq) })
}

// Stale reports whether newer input arrived after seq was issued.
func (d *debouncer) Stale(chatID int64, seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seqs[chatID] != seq
}

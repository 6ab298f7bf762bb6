package diag

import (
	"sync"
	"time"
)

// Entry is a single labeled timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

// phaseHint sizes the initial record allocation for the handful of phases
// a single run of sysid actually times (core fit, total).
const phaseHint = 4

var (
	mu     sync.Mutex
	record = make([]Entry, 0, phaseHint)
)

// Track logs the duration since start under the given label. Typical use is
// `defer diag.Track(time.Now(), "identify")`.
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: label, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries in insertion order
// and clears the shared record.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = make([]Entry, 0, phaseHint)
	return out
}

// Package clock provides the time and ID source for orders and invoices.
// Test mode swaps in a deterministic source so transcripts are reproducible.
package clock

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Clock supplies timestamps and unique identifiers.
type Clock interface {
	Now() time.Time
	NewID() string
}

// New returns a Deterministic clock in test mode and the System clock otherwise.
func New(testMode bool) Clock {
	if testMode {
		return NewDeterministic()
	}
	return System{}
}

// System uses the wall clock and random v4 UUIDs.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// NewID returns a random UUID.
func (System) NewID() string {
	return uuid.New().String()
}

// Epoch is the first time returned by a Deterministic clock.
var Epoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// Deterministic returns incrementing timestamps, one second apart starting at
// Epoch, and UUID-shaped IDs built from a counter:
// 00000001-0000-4000-8000-000000000001, 00000002-0000-4000-8000-000000000002, ...
type Deterministic struct {
	mu    sync.Mutex
	ticks int64
	ids   uint64
}

// NewDeterministic creates a deterministic clock starting at Epoch.
func NewDeterministic() *Deterministic {
	return &Deterministic{}
}

// Now returns Epoch plus one second per previous call.
func (d *Deterministic) Now() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := Epoch.Add(time.Duration(d.ticks) * time.Second)
	d.ticks++
	return t
}

// NewID returns the next counter-based ID. It still parses as a UUID.
func (d *Deterministic) NewID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ids++
	return fmt.Sprintf("%08x-0000-4000-8000-%012x", d.ids, d.ids)
}

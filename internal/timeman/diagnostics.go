package timeman

import (
	"sync"
	"time"

	"github.com/chessevalcore/evalcore/internal/board"
)

// DeepenRecord is one Deepen call recorded by Diagnostics.
type DeepenRecord struct {
	Nodes uint64
	Depth int
}

// Diagnostics wraps any TimeManager and records (nodes, depth) per Deepen
// call, for offline inspection, without altering the wrapped manager's
// abort decisions.
type Diagnostics struct {
	Inner TimeManager

	mu      sync.Mutex
	records []DeepenRecord
}

// NewDiagnostics wraps inner.
func NewDiagnostics(inner TimeManager) *Diagnostics {
	return &Diagnostics{Inner: inner}
}

func (d *Diagnostics) Deepen(thread int, depth int, nodes uint64, eval int32, best board.Move, dt time.Duration) {
	d.mu.Lock()
	d.records = append(d.records, DeepenRecord{Nodes: nodes, Depth: depth})
	d.mu.Unlock()
	d.Inner.Deepen(thread, depth, nodes, eval, best, dt)
}

func (d *Diagnostics) Initiate(timeLeft time.Duration, moveCnt uint32) {
	d.Inner.Initiate(timeLeft, moveCnt)
}

func (d *Diagnostics) Abort(searchStart time.Time) bool {
	return d.Inner.Abort(searchStart)
}

func (d *Diagnostics) Clear() {
	d.mu.Lock()
	d.records = d.records[:0]
	d.mu.Unlock()
	d.Inner.Clear()
}

// Records returns a copy of the (nodes, depth) pairs recorded since the
// last Clear.
func (d *Diagnostics) Records() []DeepenRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]DeepenRecord, len(d.records))
	copy(out, d.records)
	return out
}

package timeman

import (
	"sync/atomic"
	"time"

	"github.com/chessevalcore/evalcore/internal/board"
)

// ManualAbort is driven entirely by an external flag (e.g. a UCI "stop"
// command); it ignores depth, nodes, and wall clock.
type ManualAbort struct {
	stopped atomic.Bool
}

// NewManualAbort returns a ManualAbort manager that is not stopped.
func NewManualAbort() *ManualAbort {
	return &ManualAbort{}
}

func (m *ManualAbort) Deepen(_ int, _ int, _ uint64, _ int32, _ board.Move, _ time.Duration) {}

func (m *ManualAbort) Initiate(_ time.Duration, _ uint32) {}

// Trigger latches the abort flag; it stays set until Clear.
func (m *ManualAbort) Trigger() {
	m.stopped.Store(true)
}

func (m *ManualAbort) Abort(_ time.Time) bool {
	return m.stopped.Load()
}

func (m *ManualAbort) Clear() {
	m.stopped.Store(false)
}

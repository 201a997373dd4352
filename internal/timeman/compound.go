package timeman

import (
	"sync/atomic"
	"time"

	"github.com/chessevalcore/evalcore/internal/board"
)

// Compound multiplexes a fixed set of TimeManager variants behind one
// handle, selected by an atomically-stored mode index, realizing spec §9's
// "dynamic dispatch behind a shared handle" option (needed here since the
// UCI front-end selects the active mode at runtime, after construction).
type Compound struct {
	modes []TimeManager
	mode  atomic.Int32
}

// NewCompound builds a Compound over modes, starting on modes[0].
func NewCompound(modes ...TimeManager) *Compound {
	if len(modes) == 0 {
		panic("timeman: NewCompound requires at least one mode")
	}
	return &Compound{modes: modes}
}

// SetMode switches the active variant. An out-of-range index is a
// programming error (spec §7) and panics rather than silently degrading.
func (c *Compound) SetMode(i int) {
	if i < 0 || i >= len(c.modes) {
		panic("timeman: mode index out of range")
	}
	c.mode.Store(int32(i))
}

func (c *Compound) current() TimeManager {
	return c.modes[c.mode.Load()]
}

func (c *Compound) Deepen(thread int, depth int, nodes uint64, eval int32, best board.Move, dt time.Duration) {
	c.current().Deepen(thread, depth, nodes, eval, best, dt)
}

func (c *Compound) Initiate(timeLeft time.Duration, moveCnt uint32) {
	c.current().Initiate(timeLeft, moveCnt)
}

func (c *Compound) Abort(searchStart time.Time) bool {
	return c.current().Abort(searchStart)
}

func (c *Compound) Clear() {
	c.current().Clear()
}

package timeman

import (
	"sync/atomic"
	"time"

	"github.com/chessevalcore/evalcore/internal/board"
)

// ConstDepth aborts once Deepen reports a completed depth at or beyond the
// configured target; it ignores wall clock entirely.
type ConstDepth struct {
	target  int32
	reached atomic.Bool
}

// NewConstDepth returns a ConstDepth manager that stops after target plies.
func NewConstDepth(target int) *ConstDepth {
	return &ConstDepth{target: int32(target)}
}

func (c *ConstDepth) Deepen(_ int, depth int, _ uint64, _ int32, _ board.Move, _ time.Duration) {
	if int32(depth) >= c.target {
		c.reached.Store(true)
	}
}

func (c *ConstDepth) Initiate(_ time.Duration, _ uint32) {}

func (c *ConstDepth) Abort(_ time.Time) bool {
	return c.reached.Load()
}

func (c *ConstDepth) Clear() {
	c.reached.Store(false)
}

package timeman

import (
	"sync/atomic"
	"time"

	"github.com/chessevalcore/evalcore/internal/board"
)

// ConstTime aborts once wall-clock elapsed since the search start exceeds a
// fixed target, independent of depth or node count.
type ConstTime struct {
	targetMs atomic.Int64
}

// NewConstTime returns a ConstTime manager that stops after target has
// elapsed.
func NewConstTime(target time.Duration) *ConstTime {
	c := &ConstTime{}
	c.targetMs.Store(target.Milliseconds())
	return c
}

func (c *ConstTime) Deepen(_ int, _ int, _ uint64, _ int32, _ board.Move, _ time.Duration) {}

func (c *ConstTime) Initiate(_ time.Duration, _ uint32) {}

func (c *ConstTime) Abort(searchStart time.Time) bool {
	target := time.Duration(c.targetMs.Load()) * time.Millisecond
	return time.Since(searchStart) >= target
}

func (c *ConstTime) Clear() {}

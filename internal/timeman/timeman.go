// Package timeman implements the time-management layer that decides when
// iterative deepening should abort: a TimeManager interface with five
// variants (ConstDepth, ConstTime, ManualAbort, Main, Diagnostics) plus a
// Compound dispatcher that multiplexes between them by mode index.
//
// All mutable state is touched from multiple search threads (Lazy-SMP
// style) and is either a single atomic scalar or a mutex-guarded slice
// touched only at iteration boundaries, following
// easychessanimations-zurichess's atomicFlag idiom.
package timeman

import (
	"time"

	"github.com/chessevalcore/evalcore/internal/board"
)

// TimeManager is implemented by every variant in this package. Deepen is
// called once per completed root iteration; Initiate once per move before
// the search starts; Abort is polled periodically by the search to decide
// whether to stop; Clear resets one-way abort latches between searches.
type TimeManager interface {
	Deepen(thread int, depth int, nodes uint64, eval int32, best board.Move, dt time.Duration)
	Initiate(timeLeft time.Duration, moveCnt uint32)
	Abort(searchStart time.Time) bool
	Clear()
}

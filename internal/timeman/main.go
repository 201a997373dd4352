package timeman

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chessevalcore/evalcore/internal/board"
)

// Main constants, calibrated per spec §4.6.
const (
	ExpectedMovesDefault = 80
	MinMoves             = 25
	NormalStdDev         = 10.0
	Power                = 1.0
	PanicTime            = 10000 * time.Millisecond
	PanicMul             = 4
	PanicDiv             = 5
)

// weightedEval is one root iteration's evaluation, weighted by depth² for
// the variance computation Deepen performs on each call.
type weightedEval struct {
	raw    int32
	weight int64
}

// Main is the variance-driven time manager: it allocates a normal budget
// per move from the remaining clock, then widens the target toward the
// max budget when recent root evaluations have been unstable (the "panic"
// response to a sudden swing), following spec §4.6.
//
// All scalar fields are atomics so Abort (called from the search thread)
// always observes the latest Initiate/Deepen without a lock; evals is the
// one field that needs a mutex since it's a growing slice, touched only at
// iteration boundaries.
type Main struct {
	mu    sync.Mutex
	evals []weightedEval

	expectedMoves atomic.Uint32

	normalMs atomic.Int64
	maxMs    atomic.Int64
	targetMs atomic.Int64
}

// NewMain returns a Main time manager with the default expected-moves
// estimate.
func NewMain() *Main {
	m := &Main{}
	m.expectedMoves.Store(ExpectedMovesDefault)
	return m
}

func (m *Main) Initiate(timeLeft time.Duration, moveCnt uint32) {
	m.mu.Lock()
	m.evals = m.evals[:0]
	m.mu.Unlock()

	if moveCnt <= 1 {
		m.normalMs.Store(0)
		m.targetMs.Store(0)
		m.maxMs.Store(0)
		return
	}

	panicBudget := timeLeft - PanicTime
	if alt := timeLeft * (PanicDiv - PanicMul) / PanicDiv; alt > panicBudget {
		panicBudget = alt
	}

	expected := time.Duration(m.expectedMoves.Load())
	if expected == 0 {
		expected = 1
	}
	normal := panicBudget / expected
	if normal < 0 {
		normal = 0
	}
	max := timeLeft * 2 / 3
	if max < 0 {
		max = 0
	}

	m.normalMs.Store(normal.Milliseconds())
	m.targetMs.Store(normal.Milliseconds())
	m.maxMs.Store(max.Milliseconds())
}

func (m *Main) Deepen(_ int, depth int, _ uint64, eval int32, _ board.Move, _ time.Duration) {
	if depth <= 4 {
		return
	}

	m.mu.Lock()
	m.evals = append(m.evals, weightedEval{raw: eval, weight: int64(depth) * int64(depth)})
	stdDev := weightedStdDev(m.evals)
	m.mu.Unlock()

	normal := time.Duration(m.normalMs.Load()) * time.Millisecond
	max := time.Duration(m.maxMs.Load()) * time.Millisecond

	ratio := math.Pow(stdDev/NormalStdDev, Power)
	target := time.Duration(float64(normal) * ratio)
	if target < normal {
		target = normal
	}
	if target > max {
		target = max
	}
	m.targetMs.Store(target.Milliseconds())
}

// weightedStdDev computes the weighted standard deviation of es's raw
// scores, weighted by each entry's stored weight (depth²).
func weightedStdDev(es []weightedEval) float64 {
	if len(es) == 0 {
		return 0
	}
	var sumW, sumWX float64
	for _, e := range es {
		w := float64(e.weight)
		sumW += w
		sumWX += w * float64(e.raw)
	}
	if sumW == 0 {
		return 0
	}
	mean := sumWX / sumW
	var sumWVar float64
	for _, e := range es {
		w := float64(e.weight)
		d := float64(e.raw) - mean
		sumWVar += w * d * d
	}
	return math.Sqrt(sumWVar / sumW)
}

func (m *Main) Abort(searchStart time.Time) bool {
	target := time.Duration(m.targetMs.Load()) * time.Millisecond
	return time.Since(searchStart) >= target
}

// Clear shrinks the expected-move estimate by one (not below MinMoves),
// reflecting that a move has just been spent, and is called once a search
// concludes.
func (m *Main) Clear() {
	for {
		cur := m.expectedMoves.Load()
		if cur <= MinMoves {
			return
		}
		if m.expectedMoves.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

// Normal, Target, and Max expose the current budgets in milliseconds, for
// the invariant normal <= target <= max (spec §8 property 5) and for
// diagnostics.
func (m *Main) Normal() time.Duration { return time.Duration(m.normalMs.Load()) * time.Millisecond }
func (m *Main) Target() time.Duration { return time.Duration(m.targetMs.Load()) * time.Millisecond }
func (m *Main) Max() time.Duration    { return time.Duration(m.maxMs.Load()) * time.Millisecond }

package timeman

import (
	"testing"
	"time"

	"github.com/chessevalcore/evalcore/internal/board"
	"github.com/stretchr/testify/require"
)

func TestConstDepthAbortsAtTarget(t *testing.T) {
	cd := NewConstDepth(8)
	require.False(t, cd.Abort(time.Now()))
	cd.Deepen(0, 7, 0, 0, board.NoMove, 0)
	require.False(t, cd.Abort(time.Now()))
	cd.Deepen(0, 8, 0, 0, board.NoMove, 0)
	require.True(t, cd.Abort(time.Now()))

	cd.Clear()
	require.False(t, cd.Abort(time.Now()))
}

func TestConstTimeAbortsAfterElapsed(t *testing.T) {
	ct := NewConstTime(20 * time.Millisecond)
	start := time.Now()
	require.False(t, ct.Abort(start))
	time.Sleep(30 * time.Millisecond)
	require.True(t, ct.Abort(start))
}

func TestManualAbortLatchesAndClears(t *testing.T) {
	m := NewManualAbort()
	require.False(t, m.Abort(time.Now()))
	m.Trigger()
	require.True(t, m.Abort(time.Now()))
	m.Clear()
	require.False(t, m.Abort(time.Now()))
}

func TestMainSingleLegalMoveMovesInstantly(t *testing.T) {
	m := NewMain()
	m.Initiate(5*time.Second, 1)
	require.Equal(t, time.Duration(0), m.Target())
}

func TestMainNormalLEQTargetLEQMax(t *testing.T) {
	m := NewMain()
	m.Initiate(60*time.Second, 30)
	require.LessOrEqual(t, m.Normal(), m.Target())
	require.LessOrEqual(t, m.Target(), m.Max())

	for depth := 5; depth <= 9; depth++ {
		m.Deepen(0, depth, 0, 20, board.NoMove, 0)
		require.LessOrEqual(t, m.Normal(), m.Target())
		require.LessOrEqual(t, m.Target(), m.Max())
	}
}

func TestMainPanicsOnEvalSpike(t *testing.T) {
	// Spec §8 scenario 5: feed stable evals then a spike and confirm the
	// target widens beyond normal without exceeding max.
	m := NewMain()
	m.Initiate(60*time.Second, 30)
	normal := m.Normal()
	max := m.Max()

	evals := []int32{20, 25, 18, 500, 22}
	depths := []int{5, 6, 7, 8, 9}
	for i, e := range evals {
		m.Deepen(0, depths[i], 0, e, board.NoMove, 0)
	}

	require.Greater(t, m.Target(), normal)
	require.LessOrEqual(t, m.Target(), max)
}

func TestMainClearShrinksExpectedMovesNotBelowMin(t *testing.T) {
	m := NewMain()
	for i := 0; i < ExpectedMovesDefault+10; i++ {
		m.Clear()
	}
	m.Initiate(60*time.Second, 30)
	// With expectedMoves floored at MinMoves, the per-move normal budget
	// is the 50s panic budget split over MinMoves moves, and not 0.
	require.Greater(t, m.Normal(), time.Duration(0))
	require.Equal(t, 50*time.Second/MinMoves, m.Normal())
}

func TestDiagnosticsRecordsAndDelegates(t *testing.T) {
	inner := NewConstDepth(8)
	d := NewDiagnostics(inner)

	d.Deepen(0, 3, 100, 10, board.NoMove, 0)
	d.Deepen(0, 8, 200, 10, board.NoMove, 0)

	require.True(t, d.Abort(time.Now()))
	recs := d.Records()
	require.Len(t, recs, 2)
	require.Equal(t, uint64(200), recs[1].Nodes)
	require.Equal(t, 8, recs[1].Depth)

	d.Clear()
	require.Empty(t, d.Records())
	require.False(t, d.Abort(time.Now()))
}

func TestCompoundDispatchesToSelectedMode(t *testing.T) {
	cd := NewConstDepth(4)
	ct := NewConstTime(time.Hour)
	c := NewCompound(cd, ct)

	c.Deepen(0, 4, 0, 0, board.NoMove, 0)
	require.True(t, c.Abort(time.Now()))

	c.SetMode(1)
	require.False(t, c.Abort(time.Now()))
}

func TestCompoundOutOfRangeModePanics(t *testing.T) {
	c := NewCompound(NewConstDepth(1))
	require.Panics(t, func() { c.SetMode(5) })
}

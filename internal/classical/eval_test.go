package classical

import (
	"testing"

	"github.com/chessevalcore/evalcore/internal/board"
	"github.com/stretchr/testify/require"
)

func mustFEN(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	require.NoError(t, err)
	return pos
}

func TestSEEKnightTakesPawnIsJustPawn(t *testing.T) {
	pos := mustFEN(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 2")
	m, err := board.ParseMove("f3e5", pos)
	require.NoError(t, err)

	require.Equal(t, int32(PieceValue[board.Pawn]), SEE(pos, m))
}

func TestSEELosingExchangeIsNegative(t *testing.T) {
	// White rook takes a pawn defended by a black rook on an otherwise
	// empty file: Rxd5 loses the exchange (rook for pawn).
	pos := mustFEN(t, "3r4/8/8/3p4/8/8/8/3R3K w - - 0 1")
	m, err := board.ParseMove("d1d5", pos)
	require.NoError(t, err)

	see := SEE(pos, m)
	require.Less(t, see, int32(0))
}

func TestClassifyBareKingsIsDraw(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.Equal(t, Draw, Classify(pos))
}

func TestClassifyLoneQueenIsLikelyWin(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.Equal(t, LikelyWin, Classify(pos))
}

func TestClassifyTwoKnightsNoPawnsIsDraw(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/2N1KN2 w - - 0 1")
	require.Equal(t, Draw, Classify(pos))
}

func TestEvaluateDrawIsDampened(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	e := New()
	// Bare kings carry no material score to dampen, so only tempo remains.
	require.Equal(t, Evaluation(Tempo), e.Evaluate(pos))
}

func TestEvaluateDrawDampensLopsidedMaterial(t *testing.T) {
	// White holds two knights against a bare black king: Classify still
	// calls this a Draw (neither side has mating material), but white is
	// up real material. The Draw branch must shrink that material edge by
	// a factor of 10 rather than reporting it at full strength, and it
	// must still apply the turn sign and tempo like every other branch.
	white := mustFEN(t, "4k3/8/8/8/8/8/8/2N1KN2 w - - 0 1")
	black := mustFEN(t, "2n1kn2/8/8/8/8/8/8/4K3 b - - 0 1")
	e := New()

	full := e.staticScore(white).Convert(Phase(white))
	require.Greater(t, full, int32(0))

	scoreWhiteToMove := e.Evaluate(white)
	require.Equal(t, Evaluation(full/10+Tempo), scoreWhiteToMove)
	require.Less(t, int32(scoreWhiteToMove), full)

	scoreBlackToMove := e.Evaluate(black)
	require.Equal(t, Evaluation(full/10-Tempo), scoreBlackToMove)
}

func TestEvaluateLikelyWinNeverGoesNegative(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	e := New()
	require.GreaterOrEqual(t, int32(e.Evaluate(pos)), int32(0))
}

func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	pos := board.NewPosition()
	e := New()
	score := e.Evaluate(pos)
	// The only asymmetry between sides at the start is tempo.
	require.Equal(t, Evaluation(Tempo), score)
}

func TestPhaseIsZeroAtStartAndMaxWithNoMinorOrMajorPieces(t *testing.T) {
	start := board.NewPosition()
	require.Equal(t, int32(0), Phase(start))

	bare := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.Equal(t, int32(TotalPhase), Phase(bare))
}

func TestPawnHashCacheIsConsistentAcrossCalls(t *testing.T) {
	pos := mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	e := New()
	first := e.sideScore(pos, board.White)
	second := e.sideScore(pos, board.White)
	require.Equal(t, first, second)

	e.ClearCache()
	third := e.sideScore(pos, board.White)
	require.Equal(t, first, third)
}

func TestTaperedConvertInterpolatesByPhase(t *testing.T) {
	t1 := TaperedEval{MG: 100, EG: 0}
	require.Equal(t, int32(100), t1.Convert(0))
	require.Equal(t, int32(0), t1.Convert(TotalPhase))
}

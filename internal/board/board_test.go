package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustFEN(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	require.NoError(t, err)
	return pos
}

func TestMakeMoveUnmakeMoveRoundTrips(t *testing.T) {
	pos := NewPosition()
	before := *pos

	m := NewMove(E2, E4)
	undo := pos.MakeMove(m)
	require.True(t, undo.Valid)
	require.Equal(t, Black, pos.SideToMove)

	pos.UnmakeMove(m, undo)
	require.Equal(t, before, *pos)
}

func TestMakeMoveOnEmptySquareIsInvalid(t *testing.T) {
	pos := NewPosition()
	undo := pos.MakeMove(NewMove(E4, E5))
	require.False(t, undo.Valid)
}

func TestMakeMoveCastlingMovesRookToo(t *testing.T) {
	pos := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	undo := pos.MakeMove(NewCastling(E1, G1))
	require.True(t, undo.Valid)
	require.Equal(t, NewPiece(Rook, White), pos.PieceAt(F1))
	require.Equal(t, NoPiece, pos.PieceAt(H1))
	require.Equal(t, CastlingRights(0), pos.CastlingRights&(WhiteKingSideCastle|WhiteQueenSideCastle))
}

func TestMakeMoveEnPassantRemovesCapturedPawn(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1")
	undo := pos.MakeMove(NewEnPassant(D4, E3))
	require.True(t, undo.Valid)
	require.Equal(t, NoPiece, pos.PieceAt(E4))
	require.Equal(t, NewPiece(Pawn, Black), pos.PieceAt(E3))
}

func TestAttacksByIncludesPawnAndKnightTargets(t *testing.T) {
	pos := NewPosition()
	white := pos.AttacksBy(White)
	// a3 and c3 are covered by the b2 pawn and the b1 knight in the
	// starting position.
	require.NotEqual(t, Empty, white&SquareBB(A3))
	require.NotEqual(t, Empty, white&SquareBB(C3))
}

func TestProtectedByCountsPawnCoverageAndIsAsymmetric(t *testing.T) {
	// White's d2 pawn covers c3 and e3; black has nothing near there to
	// contest it, and nothing of black's covers those squares either.
	pos := mustFEN(t, "4k3/8/8/8/8/8/3P4/4K3 w - - 0 1")

	whiteProtected := pos.ProtectedBy(White)
	require.NotEqual(t, Empty, whiteProtected&SquareBB(C3))
	require.NotEqual(t, Empty, whiteProtected&SquareBB(E3))
	require.Equal(t, Empty, whiteProtected&SquareBB(H8))

	blackProtected := pos.ProtectedBy(Black)
	require.Equal(t, Empty, blackProtected&SquareBB(C3))
}

func TestIsInsufficientMaterialBareKingsIsTrue(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.True(t, pos.IsInsufficientMaterial())
}

func TestIsInsufficientMaterialLoneMinorIsTrue(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/2N1K3 w - - 0 1")
	require.True(t, pos.IsInsufficientMaterial())
}

func TestIsInsufficientMaterialTwoMinorsOneSideIsFalse(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/2N1KN2 w - - 0 1")
	require.False(t, pos.IsInsufficientMaterial())
}

func TestIsInsufficientMaterialWithPawnIsFalse(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.False(t, pos.IsInsufficientMaterial())
}

package history

import "github.com/chessevalcore/evalcore/internal/board"

// DoubleMoveTable is the follow-up ("double move") history: it scores a
// quiet move not just by its own geometry but by what piece/destination
// preceded it two plies up, letting the orderer learn refutations that only
// make sense after a specific prior move. Indexed
// [color][prevPiece][prevTo][piece][to].
type DoubleMoveTable struct {
	entries [2][6][64][6][64]int16
}

// Score returns the current follow-up history value.
func (d *DoubleMoveTable) Score(c board.Color, prevPiece board.PieceType, prevTo board.Square, piece board.PieceType, to board.Square) int16 {
	return d.entries[c][prevPiece][prevTo][piece][to]
}

// Update applies the gravity rule to the cutoff move and every failed quiet
// move in fails, each keyed by its own (piece, to) paired with the shared
// previous-move context (prevPiece, prevTo).
func (d *DoubleMoveTable) Update(c board.Color, prevPiece board.PieceType, prevTo board.Square, cutoffPiece board.PieceType, cutoff board.Move, fails []FailedQuiet, amt int32) {
	e := &d.entries[c][prevPiece][prevTo]
	e[cutoffPiece][cutoff.To()] = gravityUpdate(e[cutoffPiece][cutoff.To()], amt, true)
	for _, f := range fails {
		if f.Piece == cutoffPiece && f.Move == cutoff {
			continue
		}
		e[f.Piece][f.Move.To()] = gravityUpdate(e[f.Piece][f.Move.To()], amt, false)
	}
}

// Clear resets every entry to zero.
func (d *DoubleMoveTable) Clear() {
	*d = DoubleMoveTable{}
}

// FailedQuiet pairs a quiet move with the piece that made it, since the
// double-move table (unlike the plain butterfly table) is keyed by piece
// identity rather than geometry alone.
type FailedQuiet struct {
	Piece board.PieceType
	Move  board.Move
}

package history

import "github.com/chessevalcore/evalcore/internal/board"

// CounterMoveTable records, for each side and each (piece, destination)
// pair the opponent just played, the quiet move that most recently refuted
// it. Indexed [color][piece][to], where color is the side playing the
// counter and piece and to describe the *previous* move (the one being
// countered), following the teacher's ordering.go layout.
type CounterMoveTable struct {
	entries [2][6][64]board.Move
}

// Get returns the recorded countermove for prev, or board.NoMove if none is
// recorded or prev itself is NoMove.
func (c *CounterMoveTable) Get(side board.Color, prevPiece board.PieceType, prev board.Move) board.Move {
	if prev == board.NoMove {
		return board.NoMove
	}
	return c.entries[side][prevPiece][prev.To()]
}

// Update records counter as the refutation of prev, but only when amt is
// small: counter-move data from late, high-depth cutoffs is too noisy to
// be worth polluting this table.
func (c *CounterMoveTable) Update(side board.Color, prevPiece board.PieceType, prev, counter board.Move, amt int32) {
	if prev == board.NoMove || amt > 20 {
		return
	}
	c.entries[side][prevPiece][prev.To()] = counter
}

// Clear resets every entry to board.NoMove.
func (c *CounterMoveTable) Clear() {
	*c = CounterMoveTable{}
}

package classical

import "github.com/chessevalcore/evalcore/internal/board"

// maxSeeDepth bounds the simulated capture sequence; 32 attackers on one
// square never happens on a legal board but the spec calls for a hard cap.
const maxSeeDepth = 32

// leastValuableAttacker returns the square and kind of the cheapest piece
// of color c among attackers, or ok=false if c has none.
func leastValuableAttacker(pos *board.Position, attackers board.Bitboard, c board.Color) (board.Square, board.PieceType, bool) {
	own := attackers & pos.Occupied[c]
	for pt := board.Pawn; pt <= board.King; pt++ {
		bb := own & pos.Pieces[c][pt]
		if bb != 0 {
			return bb.LSB(), pt, true
		}
	}
	return board.NoSquare, board.NoPieceType, false
}

// SEE computes the static exchange evaluation for m: the material swing of
// playing out the full capture sequence on m's destination square, from
// the mover's point of view, in centipawns.
func SEE(pos *board.Position, m board.Move) int32 {
	to := m.To()
	from := m.From()
	mover := pos.SideToMove

	captured := pos.PieceOn(to)
	if m.IsEnPassant() {
		captured = board.NewPiece(board.Pawn, mover.Other())
	}

	var gains [maxSeeDepth]int32
	gains[0] = int32(captured.Value())

	removed := board.SquareBB(from)
	if m.IsEnPassant() {
		epCapSq := board.NewSquare(to.File(), from.Rank())
		removed |= board.SquareBB(epCapSq)
	}

	attackingType := pos.PieceOn(from).Type()
	if m.IsPromotion() {
		attackingType = m.Promotion()
	}
	// onSquareValue tracks the value of whatever piece currently sits on
	// `to`, pending the next recapture.
	onSquareValue := int32(board.PieceValue[attackingType])

	side := mover.Other()
	depth := 0

	for depth < maxSeeDepth-1 {
		occNow := pos.AllOccupied &^ removed
		attackers := pos.AttackersTo(to, occNow) &^ removed

		sq, pt, ok := leastValuableAttacker(pos, attackers, side)
		if !ok {
			break
		}

		depth++
		gains[depth] = onSquareValue - gains[depth-1]
		onSquareValue = int32(board.PieceValue[pt])

		removed |= board.SquareBB(sq)
		side = side.Other()
	}

	for i := depth; i >= 1; i-- {
		if -gains[i-1] <= gains[i] {
			gains[i-1] = -gains[i]
		}
	}

	return gains[0]
}

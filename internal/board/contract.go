package board

// PieceOn returns the piece occupying sq, or NoPiece if the square is empty.
// Alias over PieceAt kept so the evaluation packages can call the board
// collaborator using the vocabulary the evaluators were designed against.
func (p *Position) PieceOn(sq Square) Piece {
	return p.PieceAt(sq)
}

// ColorOn returns the color of the piece on sq. Result is undefined if the
// square is empty; callers must check PieceOn first.
func (p *Position) ColorOn(sq Square) Color {
	return p.PieceAt(sq).Color()
}

// King returns the square of c's king.
func (p *Position) King(c Color) Square {
	return p.KingSquare[c]
}

// OccupiedBB returns the bitboard of all occupied squares.
func (p *Position) OccupiedBB() Bitboard {
	return p.AllOccupied
}

// EnPassantFile returns the en-passant file (0-7) and whether one is set.
func (p *Position) EnPassantFile() (int, bool) {
	if p.EnPassant == NoSquare {
		return 0, false
	}
	return p.EnPassant.File(), true
}

// PlayUnchecked plays m on a copy of p and returns the resulting position.
// Named to match the board-library contract assumed by the evaluation core:
// the caller is responsible for only ever supplying legal moves.
func (p *Position) PlayUnchecked(m Move) *Position {
	next := p.Copy()
	next.MakeMove(m)
	return next
}

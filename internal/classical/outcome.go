package classical

import "github.com/chessevalcore/evalcore/internal/board"

// Outcome classifies a position's drawishness before the tapered score is
// interpolated, so known-drawn or known-lopsided material imbalances don't
// get reported at full strength.
type Outcome int

const (
	Unknown Outcome = iota
	Draw
	LikelyWin
	LikelyLoss
)

// hasMatingMaterial reports whether c alone retains enough material to
// force checkmate against a bare king: a rook or queen, both bishop
// colors, bishop+knight, or two knights when the opponent still has a
// pawn to eventually zugzwang.
func hasMatingMaterial(pos *board.Position, c board.Color) bool {
	if pos.Pieces[c][board.Rook] != 0 || pos.Pieces[c][board.Queen] != 0 {
		return true
	}

	bishops := pos.Pieces[c][board.Bishop]
	knights := pos.Pieces[c][board.Knight]

	if hasBothColorBishops(bishops) {
		return true
	}
	if bishops.PopCount() >= 1 && knights.PopCount() >= 1 {
		return true
	}
	if knights.PopCount() >= 2 && pos.Pieces[c.Other()][board.Pawn] != 0 {
		return true
	}
	return false
}

func hasBothColorBishops(bishops board.Bitboard) bool {
	var light, dark bool
	bb := bishops
	for bb != 0 {
		sq := bb.PopLSB()
		if (sq.File()+sq.Rank())%2 == 0 {
			dark = true
		} else {
			light = true
		}
	}
	return light && dark
}

// Classify determines the outcome class for pos.
func Classify(pos *board.Position) Outcome {
	whiteCanMate := hasMatingMaterial(pos, board.White)
	blackCanMate := hasMatingMaterial(pos, board.Black)

	switch {
	case !whiteCanMate && !blackCanMate:
		return Draw
	case whiteCanMate && !blackCanMate:
		return LikelyWin
	case !whiteCanMate && blackCanMate:
		return LikelyLoss
	default:
		return Unknown
	}
}

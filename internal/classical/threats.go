package classical

import "github.com/chessevalcore/evalcore/internal/board"

const (
	safePawnThreatMG = 25
	safePawnThreatEG = 20

	restrictedSquareMG = 4
	restrictedSquareEG = 2

	kingThreatMG = 35
	kingThreatEG = 20
)

// pawnIsSafe reports whether the pawn on sq is either unattacked by the
// opponent or defended by another friendly piece.
func pawnIsSafe(pos *board.Position, sq board.Square, c board.Color) bool {
	enemy := c.Other()
	if pos.AttackersByColor(sq, enemy, pos.AllOccupied) == 0 {
		return true
	}
	return pos.AttackersByColor(sq, c, pos.AllOccupied) != 0
}

// safePawnThreats counts attacks by safe pawns onto enemy non-pawn pieces.
func safePawnThreats(pos *board.Position, c board.Color) TaperedEval {
	var score TaperedEval
	enemy := c.Other()
	enemyNonPawns := pos.Occupied[enemy] &^ pos.Pieces[enemy][board.Pawn]

	bb := pos.Pieces[c][board.Pawn]
	for bb != 0 {
		sq := bb.PopLSB()
		if !pawnIsSafe(pos, sq, c) {
			continue
		}
		attacked := board.PawnAttacks(sq, c) & enemyNonPawns
		n := int32(attacked.PopCount())
		score.MG += safePawnThreatMG * n
		score.EG += safePawnThreatEG * n
	}
	return score
}

// restrictedSquares rewards squares both sides attack where the opponent
// still holds a protector, i.e. contested ground the opponent can't simply
// abandon.
func restrictedSquares(pos *board.Position, c board.Color) TaperedEval {
	var score TaperedEval
	enemy := c.Other()

	ours := pos.AttacksBy(c)
	theirs := pos.AttacksBy(enemy)
	restriction := ours & theirs

	n := int32((restriction & pos.ProtectedBy(enemy)).PopCount())
	score.MG += restrictedSquareMG * n
	score.EG += restrictedSquareEG * n
	return score
}

// kingThreats rewards undefended enemy pieces adjacent to our king: they're
// one tempo from being won outright.
func kingThreats(pos *board.Position, c board.Color) TaperedEval {
	var score TaperedEval
	enemy := c.Other()
	ksq := pos.King(c)

	adjacent := board.KingAttacks(ksq) & pos.Occupied[enemy]
	for adjacent != 0 {
		sq := adjacent.PopLSB()
		if pos.AttackersByColor(sq, enemy, pos.AllOccupied) == 0 {
			score.MG += kingThreatMG
			score.EG += kingThreatEG
		}
	}
	return score
}

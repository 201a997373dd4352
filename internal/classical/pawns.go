package classical

import "github.com/chessevalcore/evalcore/internal/board"

// passedPawnBonus is indexed by RelativeRank (0 = own back rank, 7 = the
// promotion square) and used for both tapered components: a passed pawn's
// value grows sharply the closer it gets to promoting.
var passedPawnBonus = [8]int32{0, 10, 20, 40, 70, 120, 200, 0}

const (
	doubledPawnMG  = -15
	doubledPawnEG  = -20
	isolatedPawnMG = -20
	isolatedPawnEG = -25
)

// passedPawnMask returns the squares, on sq's own file and its neighbors,
// strictly ahead of sq from c's point of view. An opposing pawn anywhere
// in this mask can still stop or capture the pawn.
func passedPawnMask(sq board.Square, c board.Color) board.Bitboard {
	file := sq.File()
	var files board.Bitboard
	for f := file - 1; f <= file+1; f++ {
		if f >= 0 && f <= 7 {
			files |= board.FileMask[f]
		}
	}

	var mask board.Bitboard
	if c == board.White {
		for r := sq.Rank() + 1; r <= 7; r++ {
			mask |= files & board.RankMask[r]
		}
	} else {
		for r := sq.Rank() - 1; r >= 0; r-- {
			mask |= files & board.RankMask[r]
		}
	}
	return mask
}

// pawnStructure scores passed, doubled, and isolated pawns for one color.
func pawnStructure(pos *board.Position, c board.Color) TaperedEval {
	var score TaperedEval

	own := pos.Pieces[c][board.Pawn]
	enemy := pos.Pieces[c.Other()][board.Pawn]

	bb := own
	for bb != 0 {
		sq := bb.PopLSB()

		if enemy&passedPawnMask(sq, c) == 0 {
			bonus := passedPawnBonus[sq.RelativeRank(c)]
			score.MG += bonus
			score.EG += bonus
		}
	}

	for f := 0; f < 8; f++ {
		count := int32((own & board.FileMask[f]).PopCount())
		if count == 0 {
			continue
		}
		if count > 1 {
			extra := count - 1
			score.MG += doubledPawnMG * extra
			score.EG += doubledPawnEG * extra
		}

		var adjacent board.Bitboard
		if f > 0 {
			adjacent |= board.FileMask[f-1]
		}
		if f < 7 {
			adjacent |= board.FileMask[f+1]
		}
		if own&adjacent == 0 {
			score.MG += isolatedPawnMG
			score.EG += isolatedPawnEG
		}
	}

	return score
}

package classical

import "github.com/chessevalcore/evalcore/internal/board"

// PieceValue gives material value in centipawns, indexed by board.PieceType.
var PieceValue = [6]int32{100, 320, 330, 500, 900, 20000}

var pawnPST = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int32{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int32{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [64]int32{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMidgamePST = [64]int32{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndgamePST = [64]int32{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

const (
	bishopPairMG = 25
	bishopPairEG = 50

	rookOpenFileMG     = 20
	rookOpenFileEG     = 25
	rookSemiOpenFileMG = 10
	rookSemiOpenFileEG = 15
)

// pstMG/pstEG return the piece-square value for a piece of type pt
// belonging to color c standing on sq, with black's index rank-mirrored so
// every table is authored from its own side's perspective.
func pstMG(pt board.PieceType, c board.Color, sq board.Square) int32 {
	idx := relativeIndex(sq, c)
	switch pt {
	case board.Pawn:
		return pawnPST[idx]
	case board.Knight:
		return knightPST[idx]
	case board.Bishop:
		return bishopPST[idx]
	case board.Rook:
		return rookPST[idx]
	case board.Queen:
		return queenPST[idx]
	default:
		return kingMidgamePST[idx]
	}
}

func pstEG(pt board.PieceType, c board.Color, sq board.Square) int32 {
	if pt == board.King {
		return kingEndgamePST[relativeIndex(sq, c)]
	}
	return pstMG(pt, c, sq)
}

func relativeIndex(sq board.Square, c board.Color) int {
	if c == board.Black {
		return int(sq.Mirror())
	}
	return int(sq)
}

// materialAndPSQT sums material and piece-square value for one color,
// expressed from that color's own point of view (not yet sign-flipped for
// white-relative totals).
func materialAndPSQT(pos *board.Position, c board.Color) (TaperedEval, int32) {
	var score TaperedEval
	var phase int32

	for pt := board.Pawn; pt <= board.King; pt++ {
		bb := pos.Pieces[c][pt]
		count := int32(bb.PopCount())
		if pt != board.King {
			score.MG += int32(PieceValue[pt]) * count
			score.EG += int32(PieceValue[pt]) * count
			phase += phaseWeight[pt] * count
		}
		for bb != 0 {
			sq := bb.PopLSB()
			score.MG += pstMG(pt, c, sq)
			score.EG += pstEG(pt, c, sq)
		}
	}

	if pos.Pieces[c][board.Bishop].PopCount() >= 2 {
		score.MG += bishopPairMG
		score.EG += bishopPairEG
	}

	score = score.Add(rookFileBonus(pos, c))

	return score, phase
}

// rookFileBonus rewards rooks on open and semi-open files.
func rookFileBonus(pos *board.Position, c board.Color) TaperedEval {
	var bonus TaperedEval
	ownPawns := pos.Pieces[c][board.Pawn]
	enemyPawns := pos.Pieces[c.Other()][board.Pawn]

	rooks := pos.Pieces[c][board.Rook]
	for rooks != 0 {
		sq := rooks.PopLSB()
		file := board.FileMask[sq.File()]
		switch {
		case ownPawns&file == 0 && enemyPawns&file == 0:
			bonus.MG += rookOpenFileMG
			bonus.EG += rookOpenFileEG
		case ownPawns&file == 0:
			bonus.MG += rookSemiOpenFileMG
			bonus.EG += rookSemiOpenFileEG
		}
	}
	return bonus
}

// Phase computes TotalPhase minus the phase weight of the non-pawn material
// still on the board, clamped to [0, TotalPhase]: it is 0 with the full
// starting complement and rises as pieces come off, reaching TotalPhase
// once every phase-weighted piece is gone.
func Phase(pos *board.Position) int32 {
	var consumed int32
	for pt := board.Pawn; pt <= board.King; pt++ {
		if pt == board.King {
			continue
		}
		count := int32(pos.Pieces[board.White][pt].PopCount() + pos.Pieces[board.Black][pt].PopCount())
		consumed += phaseWeight[pt] * count
	}
	phase := TotalPhase - consumed
	if phase < 0 {
		phase = 0
	}
	if phase > TotalPhase {
		phase = TotalPhase
	}
	return phase
}

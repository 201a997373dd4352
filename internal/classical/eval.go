package classical

import "github.com/chessevalcore/evalcore/internal/board"

// Tempo rewards the side to move with a small bonus for already having its
// turn.
const Tempo = 10

// Evaluation is a signed centipawn score from the evaluated side's
// perspective.
type Evaluation int32

// Evaluator holds per-thread scratch state for the classical evaluator: a
// pawn-structure cache. It carries no board state of its own and is safe
// to reuse across an entire search on one thread.
type Evaluator struct {
	pawns pawnHash
}

// New returns a ready-to-use Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// ClearCache drops all cached pawn-structure entries, e.g. between
// searches so stale entries from a previous game don't linger forever.
func (e *Evaluator) ClearCache() {
	e.pawns.clear()
}

// See returns the static exchange evaluation of m in centipawns.
func (e *Evaluator) See(pos *board.Position, m board.Move) int32 {
	return SEE(pos, m)
}

// Evaluate returns the side-to-move-relative centipawn score for pos,
// after outcome pruning (Draw/LikelyWin/LikelyLoss) is applied.
func (e *Evaluator) Evaluate(pos *board.Position) Evaluation {
	phase := Phase(pos)
	score := e.staticScore(pos)

	turn := int32(1)
	if pos.SideToMove == board.Black {
		turn = -1
	}

	switch Classify(pos) {
	case Draw:
		v := score.Convert(phase) / 10
		return Evaluation((v + Tempo) * turn)
	case LikelyWin:
		v := score.Convert(phase)
		if v < 0 {
			v = 0
		}
		return Evaluation((v + Tempo) * turn)
	case LikelyLoss:
		v := score.Convert(phase)
		if v > 0 {
			v = 0
		}
		return Evaluation((v + Tempo) * turn)
	default:
		return Evaluation((score.Convert(phase) + Tempo) * turn)
	}
}

// staticScore is the white-relative tapered score before outcome pruning
// and tempo.
func (e *Evaluator) staticScore(pos *board.Position) TaperedEval {
	white := e.sideScore(pos, board.White)
	black := e.sideScore(pos, board.Black)
	return white.Sub(black)
}

func (e *Evaluator) sideScore(pos *board.Position, c board.Color) TaperedEval {
	material, _ := materialAndPSQT(pos, c)

	pawns := e.pawns.lookup(pos, func() TaperedEval {
		return pawnStructure(pos, board.White).Sub(pawnStructure(pos, board.Black))
	})
	if c == board.Black {
		pawns = pawns.Negate()
	}

	threats := safePawnThreats(pos, c).
		Add(restrictedSquares(pos, c)).
		Add(kingThreats(pos, c))

	return material.Add(pawns).Add(threats)
}

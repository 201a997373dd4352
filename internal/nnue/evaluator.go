package nnue

import (
	"github.com/chessevalcore/evalcore/internal/board"
	"github.com/chessevalcore/evalcore/internal/nnue/layers"
)

// Evaluator orchestrates a loaded network with its own accumulator stack.
// The network is shared, immutable, read-only state; the stack is owned
// per search thread.
type Evaluator struct {
	net   *Network
	stack *AccumulatorStack
}

// NewEvaluator builds an Evaluator over a shared network.
func NewEvaluator(net *Network) *Evaluator {
	return &Evaluator{net: net, stack: NewAccumulatorStack(net)}
}

// Reset recomputes the accumulator at the current ply from pos.
func (e *Evaluator) Reset(pos *board.Position) { e.stack.Reset(pos) }

// FullReset resets the stack to ply 0 and recomputes from pos.
func (e *Evaluator) FullReset(pos *board.Position) { e.stack.FullReset(pos) }

// NullMove pushes a copy of the accumulator without mutation.
func (e *Evaluator) NullMove() { e.stack.NullMove() }

// MakeMove incrementally updates the accumulator for m, played from pos's
// current (pre-move) state.
func (e *Evaluator) MakeMove(pos *board.Position, m board.Move) { e.stack.MakeMove(pos, m) }

// UnmakeMove pops the accumulator stack.
func (e *Evaluator) UnmakeMove() { e.stack.UnmakeMove() }

// FeedForward runs the forward pass from stm's perspective and returns a
// centipawn score. stm's activated accumulator is concatenated ahead of
// the opponent's before the output layer, so the network always sees "my
// view first."
func (e *Evaluator) FeedForward(stm board.Color) int16 {
	acc := e.stack.Current()

	own, other := acc.White, acc.Black
	if stm == board.Black {
		own, other = acc.Black, acc.White
	}

	mid := e.net.FT.Mid
	activated := make([]uint8, mid*2)
	layers.SqrClippedReLU(own, activated[:mid])
	layers.SqrClippedReLU(other, activated[mid:])

	out := make([]int32, e.net.Arch.Output)
	e.net.L1.Propagate(activated, out)

	return scaleOutput(out[0])
}

// scaleOutput converts the raw int32 output layer score to centipawns,
// truncating toward zero.
func scaleOutput(x int32) int16 {
	return int16((x * units) / (ftScale * scale))
}

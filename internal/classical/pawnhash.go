package classical

import "github.com/chessevalcore/evalcore/internal/board"

// pawnHashEntry caches the combined pawn-structure term for both colors
// under one key, since recomputing passed/doubled/isolated pawns is by far
// the most expensive static term and pawn structure changes far less often
// than the rest of the position.
type pawnHashEntry struct {
	key   uint64
	score TaperedEval
}

const pawnHashSize = 1 << 14

// pawnHash is a direct-mapped, per-evaluator cache. It is scratch state
// owned by a single search thread's Evaluator, so no locking is needed.
type pawnHash struct {
	table [pawnHashSize]pawnHashEntry
}

// pawnKey derives a cache key from the two pawn bitboards alone. It is
// independent of the board library's own Zobrist key, which this package
// doesn't assume is kept incrementally in sync with pawn-only moves.
func pawnKey(pos *board.Position) uint64 {
	w := uint64(pos.Pieces[board.White][board.Pawn])
	b := uint64(pos.Pieces[board.Black][board.Pawn])
	// A cheap 64-bit mix. Keys that share a table slot only cost a
	// recompute, since reuse requires the stored key to match; two pawn
	// configurations that mix to the same 64-bit key share one entry.
	h := w*0x9E3779B97F4A7C15 ^ (b*0xC2B2AE3D27D4EB4F + 0x165667B19E3779F9)
	return h
}

func (c *pawnHash) lookup(pos *board.Position, compute func() TaperedEval) TaperedEval {
	key := pawnKey(pos)
	idx := key % pawnHashSize
	entry := &c.table[idx]
	if entry.key == key {
		return entry.score
	}
	score := compute()
	entry.key = key
	entry.score = score
	return score
}

func (c *pawnHash) clear() {
	for i := range c.table {
		c.table[i] = pawnHashEntry{}
	}
}

// Package history implements the three search-local move-ordering tables:
// butterfly history, counter-move table, and double-move (follow-up)
// history. The butterfly and double-move tables share the same
// gravity-based update rule, which keeps every entry bounded without an
// explicit clamp or a periodic aging pass; the counter-move table simply
// stores the latest refutation.
package history

import "github.com/chessevalcore/evalcore/internal/board"

// MaxValue bounds every history entry to [-MaxValue, +MaxValue].
const MaxValue = 512

// gravityUpdate applies the gravity formula to v: reward moves the cutoff,
// penalize otherwise. The decay term grows toward change as |v| approaches
// MaxValue, so the update shrinks to zero right at the boundary instead of
// needing a post-hoc clamp.
func gravityUpdate(v int16, amt int32, good bool) int16 {
	change := amt * amt
	decay := change * int32(v) / MaxValue
	if good {
		return int16(int32(v) + change - decay)
	}
	return int16(int32(v) - change - decay)
}

// Table is the butterfly history: [color][from][to] of i16, indexed
// purely by move geometry (not by piece type), as quiet-move ordering
// doesn't need to distinguish which piece moved.
type Table struct {
	entries [2][64][64]int16
}

// Score returns the current history value for a move by color.
func (t *Table) Score(c board.Color, m board.Move) int16 {
	return t.entries[c][m.From()][m.To()]
}

// Update applies the gravity rule to cutoff and every failed quiet move in
// fails, all scaled by the same amt.
func (t *Table) Update(c board.Color, cutoff board.Move, fails []board.Move, amt int32) {
	e := &t.entries[c]
	e[cutoff.From()][cutoff.To()] = gravityUpdate(e[cutoff.From()][cutoff.To()], amt, true)
	for _, m := range fails {
		if m == cutoff {
			continue
		}
		e[m.From()][m.To()] = gravityUpdate(e[m.From()][m.To()], amt, false)
	}
}

// Clear resets every entry to zero, e.g. between games.
func (t *Table) Clear() {
	*t = Table{}
}

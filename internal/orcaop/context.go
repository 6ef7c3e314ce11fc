// Package orcaop implements the operator evaluator: the per-tick,
// row-major scheduler (spec.md §4.3) and the full built-in operator
// catalogue (§4.5).
//
// Handlers share a small context (grid, tick counter, RNG, note book,
// sink) passed explicitly rather than hidden in process-wide state, per
// spec.md §9's design note, and dispatch on the effective glyph through
// a plain switch rather than a lookup table — grounded on the teacher's
// CPU.Step dispatch in internal/cpu/cpu.go (a single switch on opcode
// that calls one executeXXX per case) in the retrieved nitro-core-dx
// repository.
package orcaop

import (
	"nitro-core-dx/internal/orcaglyph"
	"nitro-core-dx/internal/orcagrid"
	"nitro-core-dx/internal/orcanote"
	"nitro-core-dx/internal/orcarand"
	"nitro-core-dx/internal/orcavars"
	"nitro-core-dx/internal/synthsink"
)

// Context is the shared state every operator handler reads and mutates.
type Context struct {
	Grid  *orcagrid.Grid
	Vars  *orcavars.Store
	Notes *orcanote.Book
	Sink  synthsink.Sink
	RNG   orcarand.Source
	Ticks uint64

	// pan tracks the alternating stereo pan the % (mono) operator flips
	// per channel each time it fires (spec.md §6.2's set_pan comment).
	pan [16]float64
}

// EvalCell runs the per-cell tick algorithm (spec.md §4.3, steps a-d) at
// (x, y): skip if already ticked, locked-and-not-bang, or inert data;
// otherwise mark ticked and dispatch the operator for the effective
// (possibly banged-uppercased) glyph.
//
// Bang propagation re-enters here directly for the north and west
// neighbours (spec.md §4.3's ordering guarantee), guarded by the Ticked
// flag already set before dispatch, bounding recursion to O(grid area).
func EvalCell(ctx *Context, x, y int) {
	cell := ctx.Grid.CellAt(x, y)
	if cell == nil {
		return
	}
	if cell.Flags&orcagrid.Ticked != 0 {
		return
	}

	banged := cell.Flags&orcagrid.Banged != 0
	effective := cell.Glyph
	if banged {
		effective = orcaglyph.ToUpper(effective)
	}

	if effective == orcaglyph.Empty || orcaglyph.IsData(effective) {
		return
	}
	if cell.Flags&orcagrid.Locked != 0 && effective != '*' {
		return
	}

	cell.Flags |= orcagrid.Ticked
	dispatch(ctx, x, y, effective, banged)
}

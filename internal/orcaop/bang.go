package orcaop

import (
	"nitro-core-dx/internal/orcaglyph"
	"nitro-core-dx/internal/orcagrid"
)

// evalBang implements * (spec.md §4.3's bang propagation): sets BANGED
// on all four orthogonal neighbours, re-dispatches north and west in
// place so they fire this tick even if not yet visited, and clears
// itself to '.' unless it has been locked by something else this tick.
//
// The specification flags that different revisions of the reference
// implementation re-bang either all four neighbours or only north and
// west; this follows the latter, matching the last complete revision
// (spec.md §9).
func evalBang(ctx *Context, x, y int) {
	ctx.Grid.Bang(x, y-1)
	ctx.Grid.Bang(x, y+1)
	ctx.Grid.Bang(x-1, y)
	ctx.Grid.Bang(x+1, y)

	EvalCell(ctx, x, y-1)
	EvalCell(ctx, x-1, y)

	cell := ctx.Grid.CellAt(x, y)
	if cell != nil && cell.Flags&orcagrid.Locked == 0 {
		cell.Glyph = orcaglyph.Empty
	}
}

// evalComment implements # (spec.md §4.5): from this cell rightwards on
// the row, mark cells Ticked and Locked up to and including the next #
// or end of row.
func evalComment(ctx *Context, x, y int) {
	for xi := x; xi < ctx.Grid.Width(); xi++ {
		cell := ctx.Grid.CellAt(xi, y)
		if cell == nil {
			break
		}
		cell.Flags |= orcagrid.Ticked | orcagrid.Locked
		if xi > x && cell.Glyph == '#' {
			break
		}
	}
}

package orcaop

import (
	"nitro-core-dx/internal/orcaglyph"
	"nitro-core-dx/internal/orcagrid"
)

// evalMove implements E/W/N/S (spec.md §4.4): relocate one cell in
// (dx, dy), or self-bang if blocked.
func evalMove(ctx *Context, x, y, dx, dy int) {
	src := ctx.Grid.CellAt(x, y)
	nx, ny := x+dx, y+dy

	if ctx.Grid.InBounds(nx, ny) && ctx.Grid.Peek(nx, ny) == orcaglyph.Empty {
		dst := ctx.Grid.CellAt(nx, ny)
		dst.Glyph = src.Glyph
		dst.Flags |= orcagrid.Ticked
		src.Glyph = orcaglyph.Empty
		src.Flags &^= orcagrid.Ticked
		return
	}

	src.Glyph = '*'
}

func evalHalt(ctx *Context, x, y int) {
	ctx.Grid.Lock(x, y+1)
}

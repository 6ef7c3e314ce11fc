package orcaop

import (
	"nitro-core-dx/internal/orcagrid"
	"nitro-core-dx/internal/orcanote"
	"nitro-core-dx/internal/orcarand"
	"nitro-core-dx/internal/orcavars"
)

// newTestContext builds a Context over a grid loaded from rows (top to
// bottom, left to right, '.'-padded implicitly by the caller), with a
// fixed RNG seed for determinism.
func newTestContext(rows []string) (*Context, *orcagrid.Grid) {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	g := orcagrid.New(width, len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			g.Place(x, y, row[x])
		}
	}
	ctx := &Context{
		Grid:  g,
		Vars:  orcavars.New(),
		Notes: orcanote.New(),
		RNG:   orcarand.New(1),
	}
	return ctx, g
}

func rowString(g *orcagrid.Grid, y int) string {
	b := make([]byte, g.Width())
	for x := 0; x < g.Width(); x++ {
		b[x] = g.Peek(x, y)
	}
	return string(b)
}

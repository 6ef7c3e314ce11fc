package orcaop

import "nitro-core-dx/internal/orcaglyph"

// evalKonkat implements K: reads len cells to the right as variable
// names and writes the bound value of each (or '.' if the name is '.')
// to the corresponding cell in the row below.
func evalKonkat(ctx *Context, x, y int) {
	length := readIntRelMin1(ctx, x, y, -1, 0, 1, "konkat:len")

	for i := 0; i < length; i++ {
		name := ctx.Grid.ReadLocked(x+1+i, y, "konkat:name")
		out := byte(orcaglyph.Empty)
		if name != orcaglyph.Empty {
			out = ctx.Vars.Get(name)
		}
		ctx.Grid.WriteLocked(x+1+i, y+1, out, "konkat:out")
	}
}

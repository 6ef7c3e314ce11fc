package orcaop

import "nitro-core-dx/internal/orcaglyph"

// evalVariable implements V: writing a non-empty left operand binds it
// to the right operand's value; otherwise, a non-empty right operand is
// looked up and written below.
func evalVariable(ctx *Context, x, y int) {
	w := ctx.Grid.ReadGlyph(x-1, y, "variable:w")
	r := ctx.Grid.ReadLocked(x+1, y, "variable:r")

	switch {
	case w != orcaglyph.Empty:
		ctx.Vars.Set(w, r)
	case r != orcaglyph.Empty:
		ctx.Grid.WriteLocked(x, y+1, ctx.Vars.Get(r), "variable:out")
	}
}

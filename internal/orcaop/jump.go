package orcaop

// evalJumper implements J: reads the cell directly above and writes it
// directly below, unchanged.
func evalJumper(ctx *Context, x, y int) {
	in := ctx.Grid.ReadGlyph(x, y-1, "jumper:in")
	ctx.Grid.WriteLocked(x, y+1, in, "jumper:out")
}

// evalJymper implements Y: reads the cell to the left and writes it to
// the right, unchanged.
func evalJymper(ctx *Context, x, y int) {
	in := ctx.Grid.ReadGlyph(x-1, y, "jymper:in")
	ctx.Grid.WriteLocked(x+1, y, in, "jymper:out")
}

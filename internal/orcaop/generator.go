package orcaop

// evalGenerator implements G: reads len cells to the right of itself on
// its own row and writes them, unchanged, into len cells starting at
// offset (x, y+1) relative to its own position.
func evalGenerator(ctx *Context, x, y int) {
	gx := readIntRel(ctx, x, y, -3, 0, 0, "generator:x")
	gy := readIntRel(ctx, x, y, -2, 0, 0, "generator:y")
	length := readIntRelMin1(ctx, x, y, -1, 0, 1, "generator:len")

	values := make([]byte, length)
	for i := 0; i < length; i++ {
		values[i] = ctx.Grid.ReadLocked(x+1+i, y, "generator:src")
	}
	for i := 0; i < length; i++ {
		ctx.Grid.WriteLocked(x+gx+i, y+gy+1, values[i], "generator:out")
	}
}

// evalQuery implements Q: like G, but the source row is offset by (x, y)
// rather than fixed to G's own row. The destination window is unoffset
// by x/y, trailing len cells back from (x, y+1).
func evalQuery(ctx *Context, x, y int) {
	qx := readIntRel(ctx, x, y, -3, 0, 0, "query:x")
	qy := readIntRel(ctx, x, y, -2, 0, 0, "query:y")
	length := readIntRelMin1(ctx, x, y, -1, 0, 1, "query:len")

	values := make([]byte, length)
	for i := 0; i < length; i++ {
		values[i] = ctx.Grid.ReadGlyph(x+qx+i+1, y+qy, "query:src")
	}
	destStart := x - length + 1
	for i := 0; i < length; i++ {
		ctx.Grid.WriteLocked(destStart+i, y+1, values[i], "query:out")
	}
}

package orcaop

// evalReadOp implements O: reads the cell at (1+x, y) relative to
// itself, where x and y are themselves operands, and writes the result
// below.
func evalReadOp(ctx *Context, x, y int) {
	ox := readIntRel(ctx, x, y, -2, 0, 0, "read:x")
	oy := readIntRel(ctx, x, y, -1, 0, 0, "read:y")
	val := ctx.Grid.ReadLocked(x+1+ox, y+oy, "read:src")
	ctx.Grid.WriteLocked(x, y+1, val, "read:out")
}

// evalWrite implements X: writes a read_locked value to (x, y+1)
// relative to itself, where x and y are themselves operands.
func evalWrite(ctx *Context, x, y int) {
	wx := readIntRel(ctx, x, y, -2, 0, 0, "write:x")
	wy := readIntRel(ctx, x, y, -1, 0, 0, "write:y")
	val := ctx.Grid.ReadLocked(x+1, y, "write:val")
	ctx.Grid.WriteLocked(x+wx, y+wy+1, val, "write:out")
}

// evalPush implements P: locks a row of len cells below itself and
// writes val into the (key mod len)-th of them.
func evalPush(ctx *Context, x, y int) {
	key := readIntRel(ctx, x, y, -2, 0, 0, "push:key")
	length := readIntRelMin1(ctx, x, y, -1, 0, 1, "push:len")
	val := readLockedGlyphRel(ctx, x, y, 1, 0, "push:val")

	for i := 0; i < length; i++ {
		ctx.Grid.Lock(x+i, y+1)
	}
	target := x + (key % length)
	ctx.Grid.WriteLocked(target, y+1, val, "push:out")
}

// evalTrack implements T: locks len cells to its right and writes the
// (key mod len)-th of them below.
func evalTrack(ctx *Context, x, y int) {
	key := readIntRel(ctx, x, y, -2, 0, 0, "track:key")
	length := readIntRelMin1(ctx, x, y, -1, 0, 1, "track:len")
	selected := key % length

	var val byte
	for i := 0; i < length; i++ {
		if i == selected {
			val = ctx.Grid.ReadLocked(x+1+i, y, "track:src")
			continue
		}
		ctx.Grid.Lock(x+1+i, y)
	}
	ctx.Grid.WriteLocked(x, y+1, val, "track:out")
}

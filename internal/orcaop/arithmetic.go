package orcaop

import "nitro-core-dx/internal/orcaglyph"

// binaryOperands reads the common L (read(-1,0)) / R (read_locked(+1,0))
// pair shared by A, B, and M, plus R's raw glyph for case
// propagation (spec.md §8: output case follows the right operand).
func binaryOperands(ctx *Context, x, y int, opName string) (l, r int, rGlyph byte) {
	l = readIntRel(ctx, x, y, -1, 0, 0, opName+":L")
	rGlyph = readLockedGlyphRel(ctx, x, y, 1, 0, opName+":R")
	r = orcaglyph.ToInt(rGlyph, 0)
	return l, r, rGlyph
}

func evalAdd(ctx *Context, x, y int) {
	l, r, rGlyph := binaryOperands(ctx, x, y, "add")
	out := orcaglyph.FromInt((l+r)%36, isUpperGlyph(rGlyph))
	ctx.Grid.WriteLocked(x, y+1, out, "add:out")
}

func evalSubtract(ctx *Context, x, y int) {
	l, r, rGlyph := binaryOperands(ctx, x, y, "subtract")
	out := orcaglyph.FromInt(absInt(l-r), isUpperGlyph(rGlyph))
	ctx.Grid.WriteLocked(x, y+1, out, "subtract:out")
}

func evalMultiply(ctx *Context, x, y int) {
	l, r, rGlyph := binaryOperands(ctx, x, y, "multiply")
	out := orcaglyph.FromInt((l*r)%36, isUpperGlyph(rGlyph))
	ctx.Grid.WriteLocked(x, y+1, out, "multiply:out")
}

// rawOperands reads L/R the same positions binaryOperands does (unlocked
// read(-1,0), read_locked(+1,0)) but returns the raw glyphs undecoded,
// for operators that compare or propagate glyphs rather than numbers.
func rawOperands(ctx *Context, x, y int, opName string) (lGlyph, rGlyph byte) {
	lGlyph = ctx.Grid.ReadGlyph(x-1, y, opName+":L")
	rGlyph = readLockedGlyphRel(ctx, x, y, 1, 0, opName+":R")
	return lGlyph, rGlyph
}

// evalLess picks the lesser of its two operands by lowercase comparison,
// returning the original glyph (case preserved) rather than a numeric
// round-trip through the base-36 codec.
func evalLess(ctx *Context, x, y int) {
	lGlyph, rGlyph := rawOperands(ctx, x, y, "less")
	out := rGlyph
	if orcaglyph.ToLower(lGlyph) < orcaglyph.ToLower(rGlyph) {
		out = lGlyph
	}
	ctx.Grid.WriteLocked(x, y+1, out, "less:out")
}

// evalIf compares its two operands as raw glyphs, no base-36 decoding:
// case-distinct letters are unequal, and a non-b36 glyph like '.' is not
// coerced into matching '0'.
func evalIf(ctx *Context, x, y int) {
	lGlyph, rGlyph := rawOperands(ctx, x, y, "if")
	out := byte('.')
	if lGlyph == rGlyph {
		out = '*'
	}
	ctx.Grid.WriteLocked(x, y+1, out, "if:out")
}

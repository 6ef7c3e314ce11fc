package orcaop

import "nitro-core-dx/internal/orcaglyph"

// readIntRel reads the cell at (x+dx, y+dy) and decodes it as base-36,
// falling back to def when the glyph is out of bounds or non-b36.
func readIntRel(ctx *Context, x, y, dx, dy, def int, desc string) int {
	g := ctx.Grid.ReadGlyph(x+dx, y+dy, desc)
	return orcaglyph.ToInt(g, def)
}

// readIntRelMin1 is readIntRel clamped to a minimum of 1, matching the
// "(default, min 1)" operands throughout §4.5 (rate, len, mod...).
func readIntRelMin1(ctx *Context, x, y, dx, dy, def int, desc string) int {
	v := readIntRel(ctx, x, y, dx, dy, def, desc)
	if v < 1 {
		v = 1
	}
	return v
}

// readLockedGlyphRel reads and locks the cell at (x+dx, y+dy), returning
// its raw glyph.
func readLockedGlyphRel(ctx *Context, x, y, dx, dy int, desc string) byte {
	return ctx.Grid.ReadLocked(x+dx, y+dy, desc)
}

// readLockedIntRel reads and locks the cell at (x+dx, y+dy), decoding it
// as base-36 with fallback def.
func readLockedIntRel(ctx *Context, x, y, dx, dy, def int, desc string) int {
	g := ctx.Grid.ReadLocked(x+dx, y+dy, desc)
	return orcaglyph.ToInt(g, def)
}

// readLockedIntRelMin1 is readLockedIntRel clamped to a minimum of 1.
func readLockedIntRelMin1(ctx *Context, x, y, dx, dy, def int, desc string) int {
	v := readLockedIntRel(ctx, x, y, dx, dy, def, desc)
	if v < 1 {
		v = 1
	}
	return v
}

// isUpperGlyph reports whether b is an uppercase-letter glyph. Digits,
// '.', and sigils are treated as lowercase for case-propagation purposes
// (spec.md §8's case rule), matching the reference implementation's use
// of isupper(), which is false for non-letters.
func isUpperGlyph(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package orcaop

import "nitro-core-dx/internal/orcaglyph"

// evalRandom implements R: a uniform integer in [min, max], drawn from
// the host-supplied RNG (spec.md §6.5).
func evalRandom(ctx *Context, x, y int) {
	min := readIntRel(ctx, x, y, -1, 0, 0, "random:min")
	maxGlyph := readLockedGlyphRel(ctx, x, y, 1, 0, "random:max")
	max := orcaglyph.ToInt(maxGlyph, 35)
	if max < min {
		min, max = max, min
	}

	v := ctx.RNG.IntRange(min, max)
	ctx.Grid.WriteLocked(x, y+1, orcaglyph.FromInt(v, isUpperGlyph(maxGlyph)), "random:out")
}

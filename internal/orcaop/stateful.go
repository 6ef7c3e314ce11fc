package orcaop

import "nitro-core-dx/internal/orcaglyph"

func evalClock(ctx *Context, x, y int) {
	rate := readIntRelMin1(ctx, x, y, -1, 0, 1, "clock:rate")
	modGlyph := readLockedGlyphRel(ctx, x, y, 1, 0, "clock:mod")
	mod := orcaglyph.ToInt(modGlyph, 10)
	upper := isUpperGlyph(modGlyph)

	if mod < 2 {
		ctx.Grid.WriteLocked(x, y+1, orcaglyph.FromInt(0, upper), "clock:out")
		return
	}

	cur := orcaglyph.ToInt(ctx.Grid.Peek(x, y+1), 0)
	if ctx.Ticks%uint64(rate) == 0 {
		cur = (cur + 1) % mod
	}
	ctx.Grid.WriteLocked(x, y+1, orcaglyph.FromInt(cur, upper), "clock:out")
}

func evalDelay(ctx *Context, x, y int) {
	rate := readIntRelMin1(ctx, x, y, -1, 0, 1, "delay:rate")
	mod := readLockedIntRel(ctx, x, y, 1, 0, 8, "delay:mod")

	fire := mod != 0 && (mod == 1 || ctx.Ticks%uint64(rate*mod) == 0)
	out := byte('.')
	if fire {
		out = '*'
	}
	ctx.Grid.WriteLocked(x, y+1, out, "delay:out")
}

func evalIncrement(ctx *Context, x, y int) {
	step := readIntRel(ctx, x, y, -1, 0, 1, "increment:step")
	modGlyph := readLockedGlyphRel(ctx, x, y, 1, 0, "increment:mod")
	mod := orcaglyph.ToInt(modGlyph, 10)
	if mod < 1 {
		mod = 1
	}
	upper := isUpperGlyph(modGlyph)

	cur := orcaglyph.ToInt(ctx.Grid.Peek(x, y+1), 0)
	next := (cur + step) % mod
	if next < 0 {
		next += mod
	}
	ctx.Grid.WriteLocked(x, y+1, orcaglyph.FromInt(next, upper), "increment:out")
}

func evalLerp(ctx *Context, x, y int) {
	rate := readIntRel(ctx, x, y, -1, 0, 1, "lerp:rate")
	if rate < 0 {
		rate = -rate
	}
	targetGlyph := readLockedGlyphRel(ctx, x, y, 1, 0, "lerp:target")
	target := orcaglyph.ToInt(targetGlyph, 0)
	upper := isUpperGlyph(targetGlyph)

	cur := orcaglyph.ToInt(ctx.Grid.Peek(x, y+1), 0)
	var next int
	switch {
	case cur < target:
		next = cur + rate
		if next > target {
			next = target
		}
	case cur > target:
		next = cur - rate
		if next < target {
			next = target
		}
	default:
		next = cur
	}
	ctx.Grid.WriteLocked(x, y+1, orcaglyph.FromInt(next, upper), "lerp:out")
}

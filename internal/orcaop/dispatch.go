package orcaop

// dispatch routes the effective glyph at (x, y) to its handler. banged
// indicates whether this firing is the result of a bang (lowercase
// operators only fire when banged; by the time dispatch is reached the
// caller has already uppercased the effective glyph for that case, so
// banged is only consulted by handlers whose behaviour differs when
// banged, namely : and %).
func dispatch(ctx *Context, x, y int, effective byte, banged bool) {
	switch effective {
	case 'A':
		evalAdd(ctx, x, y)
	case 'B':
		evalSubtract(ctx, x, y)
	case 'C':
		evalClock(ctx, x, y)
	case 'D':
		evalDelay(ctx, x, y)
	case 'E':
		evalMove(ctx, x, y, 1, 0)
	case 'W':
		evalMove(ctx, x, y, -1, 0)
	case 'N':
		evalMove(ctx, x, y, 0, -1)
	case 'S':
		evalMove(ctx, x, y, 0, 1)
	case 'F':
		evalIf(ctx, x, y)
	case 'G':
		evalGenerator(ctx, x, y)
	case 'H':
		evalHalt(ctx, x, y)
	case 'I':
		evalIncrement(ctx, x, y)
	case 'J':
		evalJumper(ctx, x, y)
	case 'K':
		evalKonkat(ctx, x, y)
	case 'L':
		evalLess(ctx, x, y)
	case 'M':
		evalMultiply(ctx, x, y)
	case 'O':
		evalReadOp(ctx, x, y)
	case 'P':
		evalPush(ctx, x, y)
	case 'Q':
		evalQuery(ctx, x, y)
	case 'R':
		evalRandom(ctx, x, y)
	case 'T':
		evalTrack(ctx, x, y)
	case 'U':
		// reserved; unimplemented by design (spec.md §4.5).
	case 'V':
		evalVariable(ctx, x, y)
	case 'X':
		evalWrite(ctx, x, y)
	case 'Y':
		evalJymper(ctx, x, y)
	case 'Z':
		evalLerp(ctx, x, y)
	case '*':
		evalBang(ctx, x, y)
	case '#':
		evalComment(ctx, x, y)
	case ':':
		evalMidi(ctx, x, y, banged, false)
	case '%':
		evalMidi(ctx, x, y, banged, true)
	case '!', '?', ';', '=', '$':
		// reserved transports (cc/pb/udp/osc/self): recognised for
		// lockability only, no effect.
	}
}

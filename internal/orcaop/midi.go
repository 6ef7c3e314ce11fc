package orcaop

import (
	"nitro-core-dx/internal/orcaglyph"
	"nitro-core-dx/internal/orcanote"
)

// evalMidi implements : (midi, mono=false) and % (mono, mono=true) per
// spec.md §4.6. Both read the same five operands (channel, octave,
// note, velocity, length) at (+1..+5, 0); neither does anything unless
// banged. % additionally silences every other note on the same channel
// first, and alternates that channel's stereo pan.
func evalMidi(ctx *Context, x, y int, banged, mono bool) {
	channelGlyph := readLockedGlyphRel(ctx, x, y, 1, 0, "midi:channel")
	octaveGlyph := readLockedGlyphRel(ctx, x, y, 2, 0, "midi:octave")
	noteGlyph := readLockedGlyphRel(ctx, x, y, 3, 0, "midi:note")
	velocityGlyph := readLockedGlyphRel(ctx, x, y, 4, 0, "midi:velocity")
	lengthGlyph := readLockedGlyphRel(ctx, x, y, 5, 0, "midi:length")

	if !banged {
		return
	}

	channel := clampInt(orcaglyph.ToInt(channelGlyph, 0), 0, 15)
	octave := orcaglyph.ToInt(octaveGlyph, 0)
	velocity := float64(orcaglyph.ToInt(velocityGlyph, 15)) / 16.0
	length := orcaglyph.ToInt(lengthGlyph, 1)
	if length < 1 {
		length = 1
	}

	key, ok := orcanote.KeyForNote(noteGlyph, octave)
	if !ok {
		return
	}

	if mono {
		ctx.Notes.SilenceChannel(channel, ctx.Sink)
		ctx.pan[channel] = -ctx.pan[channel]
		if ctx.pan[channel] == 0 {
			ctx.pan[channel] = 1
		}
		if ctx.Sink != nil {
			ctx.Sink.SetPan(channel, ctx.pan[channel])
		}
	}

	ctx.Notes.Push(orcanote.Note{
		Channel:         channel,
		Key:             key,
		Velocity:        velocity,
		RemainingLength: length,
	}, ctx.Sink)
}

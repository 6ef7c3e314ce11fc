package orcaop

import (
	"testing"

	"nitro-core-dx/internal/orcanote"
)

type recordingSink struct {
	ons []struct {
		channel, key int
		velocity     float64
	}
	offs []struct{ channel, key int }
	pans map[int]float64
}

func newRecordingSink() *recordingSink {
	return &recordingSink{pans: make(map[int]float64)}
}

func (r *recordingSink) NoteOn(channel, key int, velocity float64) {
	r.ons = append(r.ons, struct {
		channel, key int
		velocity     float64
	}{channel, key, velocity})
}
func (r *recordingSink) NoteOff(channel, key int) {
	r.offs = append(r.offs, struct{ channel, key int }{channel, key})
}
func (r *recordingSink) SetPan(channel int, pan float64) { r.pans[channel] = pan }
func (r *recordingSink) Render(out []int16, numFrames int) {}

func TestEvalMidiNotBangedDoesNothing(t *testing.T) {
	ctx, g := newTestContext([]string{".:12C45"})
	sink := newRecordingSink()
	ctx.Sink = sink
	EvalCell(ctx, 1, 0)
	if len(sink.ons) != 0 {
		t.Errorf("unbanged : should not enqueue a note, got %d NoteOn calls", len(sink.ons))
	}
	_ = g
}

func TestEvalMonoSilencesPriorNoteScenario(t *testing.T) {
	// spec.md §8 scenario 5: "*%12C45|%12C45." — a % cell firing while a
	// note from a prior firing on the same channel is still sounding
	// ends with exactly one active note: channel 1, key = MIDI key for C
	// at octave 2, velocity 4/16, length 5.
	ctx, _ := newTestContext([]string{".%12C45", "....."})
	sink := newRecordingSink()
	ctx.Sink = sink

	// A prior tick's firing, already sounding.
	evalMidi(ctx, 1, 0, true, true)
	// This tick's firing must silence the first before enqueuing its own.
	evalMidi(ctx, 1, 0, true, true)

	if len(ctx.Notes.Notes()) != 1 {
		t.Fatalf("expected exactly one active note, got %d", len(ctx.Notes.Notes()))
	}
	n := ctx.Notes.Notes()[0]
	if n.Channel != 1 {
		t.Errorf("channel = %d, want 1", n.Channel)
	}
	wantKey, ok := orcanote.KeyForNote('C', 2)
	if !ok {
		t.Fatal("C should be a valid note letter")
	}
	if n.Key != wantKey {
		t.Errorf("key = %d, want %d", n.Key, wantKey)
	}
	if n.Velocity != 4.0/16.0 {
		t.Errorf("velocity = %v, want %v", n.Velocity, 4.0/16.0)
	}
	if n.RemainingLength != 5 {
		t.Errorf("length = %d, want 5", n.RemainingLength)
	}
	if len(sink.offs) != 1 {
		t.Errorf("expected one NoteOff silencing the prior note, got %d", len(sink.offs))
	}
}

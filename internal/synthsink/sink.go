// Package synthsink defines the capability-style interface the
// evaluator's note emission (: and %) and note book ageing drive calls
// against (spec.md §6.2), plus a recording mock for tests.
//
// Keeping the sink behind a narrow interface so tests can substitute a
// recording mock is called out explicitly in spec.md §9's design notes;
// the shape is grounded on the teacher's IOHandler interface
// (internal/memory/bus.go) that lets the bus address PPU/APU/input
// without depending on their concrete types.
package synthsink

// Sink is the external, polyphonic synthesiser the machine drives. A
// real backend (see internal/synthsink/beepsink) owns audio device
// setup, sample-rate conversion, and rendering; this package only
// defines the calls the core makes against it.
type Sink interface {
	NoteOn(channel, key int, velocity float64)
	NoteOff(channel, key int)
	SetPan(channel int, pan float64)
	// Render fills out with num_frames of stereo int16 interleaved
	// samples at the sink's fixed sample rate.
	Render(out []int16, numFrames int)
}

// event is one recorded call, for assertions in tests.
type event struct {
	kind     string
	channel  int
	key      int
	velocity float64
	pan      float64
}

// Recording is a Sink that only records calls, for use in tests that
// assert note_on/note_off ordering without any real audio backend.
type Recording struct {
	events []event
}

// NewRecording returns an empty recording sink.
func NewRecording() *Recording {
	return &Recording{}
}

func (r *Recording) NoteOn(channel, key int, velocity float64) {
	r.events = append(r.events, event{kind: "on", channel: channel, key: key, velocity: velocity})
}

func (r *Recording) NoteOff(channel, key int) {
	r.events = append(r.events, event{kind: "off", channel: channel, key: key})
}

func (r *Recording) SetPan(channel int, pan float64) {
	r.events = append(r.events, event{kind: "pan", channel: channel, pan: pan})
}

func (r *Recording) Render(out []int16, numFrames int) {
	for i := range out {
		out[i] = 0
	}
}

// NoteOnEvent is one recorded NoteOn call, exposed for test assertions.
type NoteOnEvent struct {
	Channel  int
	Key      int
	Velocity float64
}

// NoteOns returns every NoteOn call recorded so far, in order.
func (r *Recording) NoteOns() []NoteOnEvent {
	var out []NoteOnEvent
	for _, e := range r.events {
		if e.kind == "on" {
			out = append(out, NoteOnEvent{Channel: e.channel, Key: e.key, Velocity: e.velocity})
		}
	}
	return out
}

// NoteOffCount returns how many NoteOff calls targeted (channel, key).
func (r *Recording) NoteOffCount(channel, key int) int {
	n := 0
	for _, e := range r.events {
		if e.kind == "off" && e.channel == channel && e.key == key {
			n++
		}
	}
	return n
}

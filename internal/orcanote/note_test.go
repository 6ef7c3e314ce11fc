package orcanote

import "testing"

type recordingSink struct {
	ons  []Note
	offs []Note
	pans map[int]float64
}

func newRecordingSink() *recordingSink {
	return &recordingSink{pans: make(map[int]float64)}
}

func (r *recordingSink) NoteOn(channel, key int, velocity float64) {
	r.ons = append(r.ons, Note{Channel: channel, Key: key, Velocity: velocity})
}
func (r *recordingSink) NoteOff(channel, key int) {
	r.offs = append(r.offs, Note{Channel: channel, Key: key})
}
func (r *recordingSink) SetPan(channel int, pan float64) { r.pans[channel] = pan }

func TestPushCallsNoteOn(t *testing.T) {
	b := New()
	sink := newRecordingSink()
	b.Push(Note{Channel: 0, Key: 60, Velocity: 1, RemainingLength: 4}, sink)
	if len(sink.ons) != 1 || sink.ons[0].Key != 60 {
		t.Fatalf("expected one NoteOn at key 60, got %v", sink.ons)
	}
	if len(b.Notes()) != 1 {
		t.Fatalf("expected one active note, got %d", len(b.Notes()))
	}
}

func TestAgeSilencesAtZero(t *testing.T) {
	b := New()
	sink := newRecordingSink()
	b.Push(Note{Channel: 0, Key: 60, RemainingLength: 1}, sink)
	b.Age(sink)
	if len(b.Notes()) != 0 {
		t.Errorf("expected note to be silenced, still have %d active", len(b.Notes()))
	}
	if len(sink.offs) != 1 {
		t.Errorf("expected one NoteOff, got %d", len(sink.offs))
	}
}

func TestAgeKeepsNonExpired(t *testing.T) {
	b := New()
	sink := newRecordingSink()
	b.Push(Note{Channel: 0, Key: 60, RemainingLength: 3}, sink)
	b.Age(sink)
	if len(b.Notes()) != 1 {
		t.Fatalf("expected note still active, got %d", len(b.Notes()))
	}
	if b.Notes()[0].RemainingLength != 2 {
		t.Errorf("RemainingLength = %d, want 2", b.Notes()[0].RemainingLength)
	}
}

func TestSilenceChannelOnlyTargetsChannel(t *testing.T) {
	b := New()
	sink := newRecordingSink()
	b.Push(Note{Channel: 0, Key: 60, RemainingLength: 10}, sink)
	b.Push(Note{Channel: 1, Key: 62, RemainingLength: 10}, sink)
	b.SilenceChannel(0, sink)
	if len(b.Notes()) != 1 || b.Notes()[0].Channel != 1 {
		t.Errorf("expected only channel 1 to remain, got %v", b.Notes())
	}
	if len(sink.offs) != 1 || sink.offs[0].Channel != 0 {
		t.Errorf("expected NoteOff for channel 0, got %v", sink.offs)
	}
}

func TestResetSilencesEverything(t *testing.T) {
	b := New()
	sink := newRecordingSink()
	b.Push(Note{Channel: 0, Key: 60, RemainingLength: 10}, sink)
	b.Push(Note{Channel: 1, Key: 62, RemainingLength: 10}, sink)
	b.Reset(sink)
	if len(b.Notes()) != 0 {
		t.Error("Reset should clear all notes")
	}
	if len(sink.offs) != 2 {
		t.Errorf("expected 2 NoteOff calls, got %d", len(sink.offs))
	}
}

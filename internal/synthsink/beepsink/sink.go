// Package beepsink is the real, audible synthsink.Sink: a small
// additive-sine synthesiser driven through github.com/faiface/beep and
// github.com/hajimehoshi/oto (spec.md §6.2 calls for "a synthesiser",
// not sample playback, so tones are generated rather than loaded from a
// soundfont — see SPEC_FULL.md's domain stack notes).
//
// Grounded on the teacher's audio wiring (VM.ManageAudio in
// internal/chip8/chip8.go of the retrieved bradford-hamilton-chippy
// repository), which opens a beep/speaker output and feeds it a
// beep.Streamer; here the streamer is a hand-rolled additive
// oscillator bank instead of a decoded mp3, and oto is pulled in
// directly as beep/speaker's own default backend on this platform.
package beepsink

import (
	"math"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// voice is one sounding note's oscillator state.
type voice struct {
	channel int
	key     int
	freq    float64
	phase   float64
	gain    float64
}

// Sink is a synthsink.Sink backed by a live speaker output. Zero value
// is not usable; construct with New.
type Sink struct {
	mu     sync.Mutex
	voices map[[2]int]*voice
	pan    [16]float64
}

// New opens the default audio device at 44.1kHz and returns a ready
// Sink. bufferSize is the speaker's internal buffer in samples; a
// small buffer favours latency, a large one favours underrun safety.
func New(bufferSize int) (*Sink, error) {
	if bufferSize <= 0 {
		bufferSize = 512
	}
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return nil, err
	}
	s := &Sink{voices: make(map[[2]int]*voice)}
	speaker.Play(s)
	return s, nil
}

// keyToFreq converts a MIDI note number to frequency in Hz, A4 (key 69)
// at 440Hz (standard equal temperament).
func keyToFreq(key int) float64 {
	return 440.0 * math.Pow(2, float64(key-69)/12.0)
}

// NoteOn starts a sine voice for (channel, key) at the given velocity
// (0..1 used as linear gain).
func (s *Sink) NoteOn(channel, key int, velocity float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voices[[2]int{channel, key}] = &voice{
		channel: channel,
		key:     key,
		freq:    keyToFreq(key),
		gain:    velocity,
	}
}

// NoteOff stops the voice for (channel, key), if any.
func (s *Sink) NoteOff(channel, key int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.voices, [2]int{channel, key})
}

// SetPan sets the stereo position (-1 left .. +1 right) every future
// sample for channel is mixed with.
func (s *Sink) SetPan(channel int, pan float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pan < -1 {
		pan = -1
	}
	if pan > 1 {
		pan = 1
	}
	s.pan[channel] = pan
}

// Render implements synthsink.Sink's additional API for non-streaming
// callers (e.g. offline rendering); Stream below is what the live
// speaker output actually pulls from.
func (s *Sink) Render(out []int16, numFrames int) {
	samples := make([][2]float64, numFrames)
	s.mix(samples)
	for i := 0; i < numFrames && i*2+1 < len(out); i++ {
		out[i*2] = int16(clamp(samples[i][0]) * 32767)
		out[i*2+1] = int16(clamp(samples[i][1]) * 32767)
	}
}

// Stream implements beep.Streamer, mixing all active voices into samples.
func (s *Sink) Stream(samples [][2]float64) (n int, ok bool) {
	s.mix(samples)
	return len(samples), true
}

// Err implements beep.Streamer.
func (s *Sink) Err() error { return nil }

func (s *Sink) mix(samples [][2]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range samples {
		samples[i] = [2]float64{0, 0}
	}
	for _, v := range s.voices {
		pan := s.pan[v.channel]
		left := v.gain * (1 - maxf(pan, 0))
		right := v.gain * (1 + minf(pan, 0))
		step := v.freq / float64(sampleRate)
		for i := range samples {
			sample := math.Sin(2 * math.Pi * v.phase)
			v.phase += step
			if v.phase >= 1 {
				v.phase -= 1
			}
			samples[i][0] += sample * left
			samples[i][1] += sample * right
		}
	}
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

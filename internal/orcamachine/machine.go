// Package orcamachine wires the grid, variable store, note book,
// operator context, RNG, and synth sink into the single host-facing
// object: the machine a player loads a grid into and runs.
//
// Grounded on the teacher's internal/emulator.Emulator (retrieved
// nitro-core-dx repository), which holds the CPU/PPU/APU/memory bus
// together and exposes Step/RunFrame/Reset/LoadROM to cmd/emulator; here
// the same wiring shape drives the grid evaluator instead of a CPU, and
// RunFrame's tick cadence is derived from BPM rather than a fixed
// instructions-per-frame count (spec.md §6.4).
package orcamachine

import (
	"fmt"

	"nitro-core-dx/internal/orcagrid"
	"nitro-core-dx/internal/orcaio"
	"nitro-core-dx/internal/orcalog"
	"nitro-core-dx/internal/orcanote"
	"nitro-core-dx/internal/orcaop"
	"nitro-core-dx/internal/orcarand"
	"nitro-core-dx/internal/orcavars"
	"nitro-core-dx/internal/synthsink"
)

const (
	// DefaultBPM is the tempo a fresh Machine starts at (spec.md §6.4).
	DefaultBPM = 120
	// FrameRate is the fixed host frame rate RunFrame's tick cadence is
	// derived from (spec.md §6.4).
	FrameRate = 60
	minBPM    = 1
	maxBPM    = 900
)

// Machine is the full interpreter: a grid under evaluation, its
// supporting collaborators, and the frame/tick clock that drives it.
type Machine struct {
	grid  *orcagrid.Grid
	vars  *orcavars.Store
	notes *orcanote.Book
	ctx   *orcaop.Context
	log   *orcalog.Logger

	bpm           int
	ticks         uint64
	frameCount    uint64
	framesPerTick int
}

// New returns a Machine with an empty zero-by-zero grid, default tempo,
// and the given sink and RNG (either may be nil; a nil Sink silently
// drops note events, matching synthsink.Sink's contract).
func New(sink synthsink.Sink, rng orcarand.Source, log *orcalog.Logger) *Machine {
	if rng == nil {
		rng = orcarand.New(1)
	}
	grid := orcagrid.New(0, 0)
	vars := orcavars.New()
	notes := orcanote.New()
	m := &Machine{
		grid:  grid,
		vars:  vars,
		notes: notes,
		ctx: &orcaop.Context{
			Grid:  grid,
			Vars:  vars,
			Notes: notes,
			Sink:  sink,
			RNG:   rng,
		},
		log: log,
		bpm: DefaultBPM,
	}
	m.recomputeFramesPerTick()
	return m
}

func (m *Machine) recomputeFramesPerTick() {
	// frames_per_tick = floor(FPS / (bpm/15)) = floor(15*FPS/bpm)
	// (spec.md §6.4).
	fpt := (15 * FrameRate) / m.bpm
	if fpt < 1 {
		fpt = 1
	}
	m.framesPerTick = fpt
}

// SetBPM sets the tempo driving RunFrame's tick cadence, clamped to
// [1, 900].
func (m *Machine) SetBPM(bpm int) {
	if bpm < minBPM {
		bpm = minBPM
	}
	if bpm > maxBPM {
		bpm = maxBPM
	}
	m.bpm = bpm
	m.recomputeFramesPerTick()
	if m.log != nil {
		m.log.Logf(orcalog.ComponentHost, orcalog.LevelInfo, "bpm set to %d", bpm)
	}
}

// BPM returns the current tempo.
func (m *Machine) BPM() int { return m.bpm }

// Ticks returns the number of evaluator ticks run so far.
func (m *Machine) Ticks() uint64 { return m.ticks }

// Resize reinitialises the grid, discarding its contents, and resets the
// variable store and note book (spec.md §6.3).
func (m *Machine) Resize(width, height int) {
	m.grid.Resize(width, height)
	m.vars.Reset()
	m.notes.Reset(m.ctx.Sink)
}

// Reset clears grid flags, the variable store, and the note book without
// touching the grid's glyphs or the tick counter (spec.md §6.3).
func (m *Machine) Reset() {
	m.grid.ClearTickFlags()
	m.vars.Reset()
	m.notes.Reset(m.ctx.Sink)
}

// Place writes a single glyph as a user edit (spec.md §6.3).
func (m *Machine) Place(x, y int, glyph byte) bool {
	return m.grid.Place(x, y, glyph)
}

// PeekCell returns the glyph currently at (x, y) without marking any
// flags, for host UI rendering.
func (m *Machine) PeekCell(x, y int) byte {
	return m.grid.Peek(x, y)
}

// CellDescription returns the description of the last operator read or
// write that touched (x, y), or "" if none has. Descriptions are not
// cleared between ticks, so it may date from an earlier tick.
func (m *Machine) CellDescription(x, y int) string {
	c := m.grid.CellAt(x, y)
	if c == nil {
		return ""
	}
	return c.Desc
}

// Width and Height report the grid's current dimensions.
func (m *Machine) Width() int  { return m.grid.Width() }
func (m *Machine) Height() int { return m.grid.Height() }

// Load replaces the grid with the parsed contents of text (spec.md
// §6.1) and resets the variable store and note book, matching a fresh
// cartridge load.
func (m *Machine) Load(text string) error {
	g, err := orcaio.LoadFromText(text)
	if err != nil {
		if m.log != nil {
			m.log.Logf(orcalog.ComponentHost, orcalog.LevelError, "load failed: %v", err)
		}
		return fmt.Errorf("orcamachine: load: %w", err)
	}
	m.grid = g
	m.ctx.Grid = g
	m.vars.Reset()
	m.notes.Reset(m.ctx.Sink)
	m.ticks = 0
	m.frameCount = 0
	return nil
}

// Save serialises the current grid back to text (spec.md §6.1).
func (m *Machine) Save() string {
	return orcaio.ToText(m.grid)
}

// Tick runs one full evaluator pass (spec.md §4.3): clear per-tick
// flags, age active notes, then scan the grid row-major, evaluating
// every cell that is not already ticked.
func (m *Machine) Tick() {
	m.grid.ClearTickFlags()
	m.notes.Age(m.ctx.Sink)
	// Ticks is 1-indexed: the tick currently being evaluated counts as
	// already elapsed for C/D's modulo timing (spec.md §8 scenarios 2/3).
	m.ticks++
	m.ctx.Ticks = m.ticks

	width, height := m.grid.Width(), m.grid.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			orcaop.EvalCell(m.ctx, x, y)
		}
	}
	if m.log != nil {
		m.log.Logf(orcalog.ComponentGrid, orcalog.LevelDebug, "tick %d complete", m.ticks)
	}
}

// RunFrame advances the host frame clock by one frame at FrameRate,
// running exactly one Tick whenever the BPM-derived tick boundary is
// crossed, then rendering num_frames of audio into out via the sink
// (spec.md §6.4). Safe to call with a nil Sink (Render then isn't
// called).
func (m *Machine) RunFrame(out []int16, numFrames int) {
	m.frameCount++
	if m.frameCount%uint64(m.framesPerTick) == 0 {
		m.Tick()
	}
	if m.ctx.Sink != nil {
		m.ctx.Sink.Render(out, numFrames)
	}
}

// ActiveNotes returns the notes currently sounding, for host UI display.
func (m *Machine) ActiveNotes() []orcanote.Note {
	return m.ctx.Notes.Notes()
}

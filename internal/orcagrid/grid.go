// Package orcagrid implements the rectangular cell grid and the five
// read/write/lock primitives operators use to touch their neighbours.
//
// The addressing shape (bounds-checked accessors that silently clamp
// out-of-range coordinates instead of erroring) is carried over from the
// teacher's memory bus (internal/memory/bus.go in the retrieved
// nitro-core-dx repository), adapted from a banked linear address space
// to a two-dimensional one.
package orcagrid

import "nitro-core-dx/internal/orcaglyph"

// CellFlags is a bitset of per-tick cell state, cleared at the start of
// every tick.
type CellFlags uint8

const (
	// Ticked marks a cell already visited by the evaluator this tick.
	Ticked CellFlags = 1 << iota
	// Banged marks a cell a neighbour's bang reached this tick.
	Banged
	// Read marks a cell some operator has read this tick.
	Read
	// Written marks a cell some operator has written this tick.
	Written
	// Locked marks a cell claimed as an operand or output this tick; the
	// evaluator must skip it entirely.
	Locked
)

// Cell is a single grid position: a glyph plus its per-tick flags.
type Cell struct {
	Glyph byte
	Flags CellFlags
	// Desc is the short description of the last read/write touching this
	// cell, used only by the host UI's cell_description operation; it
	// carries no evaluation semantics.
	Desc string
}

// Grid is a fixed-size, row-major array of cells.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New returns a width x height grid, every cell initialised to the empty
// glyph.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{width: width, height: height, cells: make([]Cell, width*height)}
	g.fillEmpty()
	return g
}

func (g *Grid) fillEmpty() {
	for i := range g.cells {
		g.cells[i] = Cell{Glyph: orcaglyph.Empty}
	}
}

// Width returns the grid's column count.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's row count.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a real cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) index(x, y int) int { return y*g.width + x }

// CellAt returns a pointer to the cell at (x, y), or nil if out of
// bounds. Intended for the evaluator's own bookkeeping (Tick/flag
// clearing); operator bodies should use the five primitives below.
func (g *Grid) CellAt(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.index(x, y)]
}

// Resize reinitialises the grid to width x height, zero-filled with the
// empty glyph. Prior contents are discarded.
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.width = width
	g.height = height
	g.cells = make([]Cell, width*height)
	g.fillEmpty()
}

// ClearTickFlags clears all per-tick flags on every cell. Called once at
// the start of each tick, before the evaluator scans the grid.
func (g *Grid) ClearTickFlags() {
	for i := range g.cells {
		g.cells[i].Flags = 0
	}
}

// Place sets the glyph at (x, y) directly, as a user edit rather than an
// operator effect: no flags are touched. Returns false if out of bounds.
func (g *Grid) Place(x, y int, glyph byte) bool {
	c := g.CellAt(x, y)
	if c == nil {
		return false
	}
	c.Glyph = glyph
	return true
}

// --- the five operator-facing primitives (spec §4.2) ---

// ReadGlyph returns the glyph at (x, y) and marks the cell Read. Out of
// bounds reads return the empty glyph and touch nothing.
func (g *Grid) ReadGlyph(x, y int, desc string) byte {
	c := g.CellAt(x, y)
	if c == nil {
		return orcaglyph.Empty
	}
	c.Flags |= Read
	c.Desc = desc
	return c.Glyph
}

// ReadLocked returns the glyph at (x, y) and marks the cell both Read and
// Locked, claiming it as an operand for the rest of this tick. Out of
// bounds reads return the empty glyph without side effects.
func (g *Grid) ReadLocked(x, y int, desc string) byte {
	c := g.CellAt(x, y)
	if c == nil {
		return orcaglyph.Empty
	}
	c.Flags |= Read | Locked
	c.Desc = desc
	return c.Glyph
}

// Peek returns the glyph at (x, y) without touching any flags. Used to
// read a cell's prior value across a two-phase update (e.g. C, I, Z
// reading their own output cell before overwriting it).
func (g *Grid) Peek(x, y int) byte {
	c := g.CellAt(x, y)
	if c == nil {
		return orcaglyph.Empty
	}
	return c.Glyph
}

// WriteLocked stores glyph at (x, y) and marks the cell both Written and
// Locked. Out of bounds writes are silently dropped.
func (g *Grid) WriteLocked(x, y int, glyph byte, desc string) {
	c := g.CellAt(x, y)
	if c == nil {
		return
	}
	c.Glyph = glyph
	c.Flags |= Written | Locked
	c.Desc = desc
}

// Lock marks the cell at (x, y) Locked without reading or writing it.
// Out of bounds locks are no-ops.
func (g *Grid) Lock(x, y int) {
	c := g.CellAt(x, y)
	if c == nil {
		return
	}
	c.Flags |= Locked
}

// Bang marks the cell at (x, y) Banged. Out of bounds bangs are no-ops.
func (g *Grid) Bang(x, y int) {
	c := g.CellAt(x, y)
	if c == nil {
		return
	}
	c.Flags |= Banged
}

// Package orcaio implements the grid text format: load_from_text,
// to_text, and the ParseError taxonomy of spec.md §6.1/§7.
//
// Grounded on the original Orca reference implementation's
// Machine::load_string/to_string (original_source/core/machine.cpp) and
// on the teacher's cartridge loader (internal/memory/cartridge.go in the
// retrieved nitro-core-dx repository), which validates input and
// returns a wrapped error rather than panicking.
package orcaio

import (
	"fmt"
	"strings"

	"nitro-core-dx/internal/orcaglyph"
	"nitro-core-dx/internal/orcagrid"
)

// ParseError reports a problem loading a grid from text.
type ParseError struct {
	Reason string
	Line   int // 0-based; -1 if not line-specific
	Col    int // 0-based; -1 if not column-specific
}

func (e *ParseError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("orca: parse error: %s", e.Reason)
	}
	if e.Col < 0 {
		return fmt.Sprintf("orca: parse error at line %d: %s", e.Line+1, e.Reason)
	}
	return fmt.Sprintf("orca: parse error at line %d, column %d: %s", e.Line+1, e.Col+1, e.Reason)
}

// LoadFromText parses text into a rectangular Grid. Width is the longest
// line's length; shorter lines are right-padded with the empty glyph.
// A trailing newline is optional. Every byte must be a valid glyph.
func LoadFromText(text string) (*orcagrid.Grid, error) {
	if text == "" {
		return nil, &ParseError{Reason: "empty input", Line: -1, Col: -1}
	}

	raw := strings.TrimSuffix(text, "\n")
	lines := strings.Split(raw, "\n")

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	height := len(lines)

	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			if !orcaglyph.IsValid(line[x]) {
				return nil, &ParseError{Reason: fmt.Sprintf("invalid glyph %q", line[x]), Line: y, Col: x}
			}
		}
	}

	g := orcagrid.New(width, height)
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			g.Place(x, y, line[x])
		}
	}
	return g, nil
}

// ToText serialises a Grid back to text: each row joined left to right,
// rows separated by newlines, with a trailing newline after the last
// row. Rows are always emitted at the grid's full width, so round
// tripping a rectangular, newline-terminated input reproduces it
// exactly.
func ToText(g *orcagrid.Grid) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			b.WriteByte(g.Peek(x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

package orcaop

import (
	"testing"

	"nitro-core-dx/internal/orcagrid"
)

func TestEvalBangScenario(t *testing.T) {
	// spec.md §8 scenario 6: "*#**" after one tick -> ".#**", every cell
	// from the '#' onward LOCKED.
	ctx, g := newTestContext([]string{"*#**"})
	for x := 0; x < 4; x++ {
		EvalCell(ctx, x, 0)
	}
	if got := rowString(g, 0); got != ".#**" {
		t.Fatalf("row after bang+comment = %q, want %q", got, ".#**")
	}
	for x := 1; x < 4; x++ {
		if g.CellAt(x, 0).Flags&orcagrid.Locked == 0 {
			t.Errorf("cell %d should be LOCKED after the comment", x)
		}
	}
}

func TestEvalBangPropagatesToNorthAndWestOnly(t *testing.T) {
	// Resolved open question (spec.md §9): only N and W neighbours are
	// re-dispatched in place this tick.
	ctx, g := newTestContext([]string{"...", ".*."})
	g.Place(1, 0, 'J') // north neighbour: jumper, would write below it
	g.Place(0, 1, 'J') // west neighbour
	g.Place(2, 1, 'J') // east neighbour: should NOT fire this tick
	EvalCell(ctx, 1, 1)

	northCell := g.CellAt(1, 0)
	if northCell.Flags&orcagrid.Ticked == 0 {
		t.Error("north neighbour should have been re-dispatched and marked ticked")
	}
	westCell := g.CellAt(0, 1)
	if westCell.Flags&orcagrid.Ticked == 0 {
		t.Error("west neighbour should have been re-dispatched and marked ticked")
	}
	eastCell := g.CellAt(2, 1)
	if eastCell.Flags&orcagrid.Ticked != 0 {
		t.Error("east neighbour should not be re-dispatched this tick, only banged")
	}
	if eastCell.Flags&orcagrid.Banged == 0 {
		t.Error("east neighbour should still be marked banged")
	}
}

func TestEvalCommentNoClosingLocksToEndOfRow(t *testing.T) {
	ctx, g := newTestContext([]string{"#AB"})
	EvalCell(ctx, 0, 0)
	for x := 0; x < 3; x++ {
		if g.CellAt(x, 0).Flags&orcagrid.Locked == 0 {
			t.Errorf("cell %d should be LOCKED to end of row", x)
		}
	}
}

func TestEvalCommentClosingLimitsLockRange(t *testing.T) {
	ctx, g := newTestContext([]string{"#A#B"})
	EvalCell(ctx, 0, 0)
	for x := 0; x < 3; x++ {
		if g.CellAt(x, 0).Flags&orcagrid.Locked == 0 {
			t.Errorf("cell %d should be LOCKED within the comment", x)
		}
	}
	if g.CellAt(3, 0).Flags&orcagrid.Locked != 0 {
		t.Error("cell after closing '#' should not be LOCKED")
	}
}

package orcaop

import (
	"testing"

	"nitro-core-dx/internal/orcagrid"
)

func TestEvalCellSkipsAlreadyTicked(t *testing.T) {
	ctx, g := newTestContext([]string{"1A2", "..."})
	c := g.CellAt(1, 0)
	c.Flags |= orcagrid.Ticked
	EvalCell(ctx, 1, 0)
	if g.Peek(1, 1) != '.' {
		t.Error("an already-ticked cell must not be evaluated again")
	}
}

func TestEvalCellSkipsInertData(t *testing.T) {
	ctx, g := newTestContext([]string{"5"})
	EvalCell(ctx, 0, 0)
	c := g.CellAt(0, 0)
	if c.Flags&orcagrid.Ticked != 0 {
		t.Error("inert data must not be marked ticked")
	}
}

func TestEvalCellLowercaseOnlyFiresWhenBanged(t *testing.T) {
	ctx, g := newTestContext([]string{"1a2", "..."})
	EvalCell(ctx, 1, 0)
	if g.Peek(1, 1) != '.' {
		t.Error("an unbanged lowercase operator is inert data and must not fire")
	}
}

func TestEvalCellBangedLowercaseFires(t *testing.T) {
	ctx, g := newTestContext([]string{"1a2", "..."})
	g.CellAt(1, 0).Flags |= orcagrid.Banged
	EvalCell(ctx, 1, 0)
	if g.Peek(1, 1) == '.' {
		t.Error("a banged lowercase operator should fire like its uppercase form")
	}
}

func TestEvalCellSkipsLockedNonBang(t *testing.T) {
	ctx, g := newTestContext([]string{"1A2", "..."})
	g.CellAt(1, 0).Flags |= orcagrid.Locked
	EvalCell(ctx, 1, 0)
	if g.Peek(1, 1) != '.' {
		t.Error("a locked non-bang operator must not fire")
	}
}

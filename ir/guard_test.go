package ir

import "testing"

func reg(t *testing.T, comp *Component, prefix string, width uint64) *Cell {
	t.Helper()
	b := NewBuilder(comp, DefaultLibrary())
	c, err := b.Cell(prefix, "std_reg", width)
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}
	return c
}

func TestGuardEquality(t *testing.T) {
	comp := NewComponent("main")
	fsm := reg(t, comp, "fsm", 32)
	b := NewBuilder(comp, DefaultLibrary())
	c1, err := b.Const(3, 32)
	if err != nil {
		t.Fatalf("Const: %v", err)
	}
	c2, err := b.Const(3, 32)
	if err != nil {
		t.Fatalf("Const: %v", err)
	}

	g1 := Eq(fsm.Get("out"), c1.Get("out"))
	g1b := Eq(fsm.Get("out"), c1.Get("out"))
	g2 := Eq(fsm.Get("out"), c2.Get("out"))

	if !g1.Equal(g1b) {
		t.Fatalf("identical guards should be structurally equal")
	}
	if g1.Equal(g2) {
		t.Fatalf("guards over distinct cells (even same value) must not be equal")
	}

	and := And(g1, Not(g2))
	andSame := And(g1, Not(g2))
	if !and.Equal(andSame) {
		t.Fatalf("compound guards built the same way should be equal")
	}
	if and.Equal(g1) {
		t.Fatalf("a compound guard must not equal one of its operands")
	}
}

func TestGuardTotalityPanicsOnWidthMismatch(t *testing.T) {
	comp := NewComponent("main")
	fsm32 := reg(t, comp, "fsm", 32)
	bit := reg(t, comp, "flag", 1)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Eq over mismatched widths to panic")
		}
	}()
	Eq(fsm32.Get("out"), bit.Get("out"))
}

func TestGuardTotalityPanicsOnNonDriverOperand(t *testing.T) {
	comp := NewComponent("main")
	fsm := reg(t, comp, "fsm", 32)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Eq over a sink operand to panic")
		}
	}()
	// fsm["in"] is a sink, not a driver.
	Eq(fsm.Get("in"), fsm.Get("out"))
}

func TestPortGuardRequiresWidthOne(t *testing.T) {
	comp := NewComponent("main")
	fsm := reg(t, comp, "fsm", 32)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected PortGuard over a wide port to panic")
		}
	}()
	PortGuard(fsm.Get("out"))
}

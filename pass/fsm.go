package pass

import "github.com/futil-lang/futilc/ir"

// emitCounter wires the self-incrementing counter boilerplate shared by
// all three compilers: an adder bumps fsm by one every cycle until
// doneGuard holds, the group asserts its own done on doneGuard, and a
// continuous assignment resets fsm to zero on the same cycle so the
// group is reusable on a later activation.
func emitCounter(b *ir.Builder, comp *ir.Component, group *ir.Group, fsm, signalOn *ir.Cell, doneGuard *ir.Guard) error {
	incr, err := b.Cell("incr", "std_add", 32)
	if err != nil {
		return err
	}
	one, err := b.Const(1, 32)
	if err != nil {
		return err
	}
	resetVal, err := b.Const(0, 32)
	if err != nil {
		return err
	}
	notDone := ir.Not(doneGuard)

	left, err := b.Assign(incr.Get("left"), fsm.Get("out"), nil)
	if err != nil {
		return err
	}
	right, err := b.Assign(incr.Get("right"), one.Get("out"), nil)
	if err != nil {
		return err
	}
	fsmIn, err := b.Assign(fsm.Get("in"), incr.Get("out"), notDone)
	if err != nil {
		return err
	}
	fsmWE, err := b.Assign(fsm.Get("write_en"), signalOn.Get("out"), notDone)
	if err != nil {
		return err
	}
	done, err := b.Assign(group.Done(), signalOn.Get("out"), doneGuard)
	if err != nil {
		return err
	}
	group.Assign(left)
	group.Assign(right)
	group.Assign(fsmIn)
	group.Assign(fsmWE)
	group.Assign(done)

	resetIn, err := b.Assign(fsm.Get("in"), resetVal.Get("out"), doneGuard)
	if err != nil {
		return err
	}
	resetWE, err := b.Assign(fsm.Get("write_en"), signalOn.Get("out"), doneGuard)
	if err != nil {
		return err
	}
	comp.Continuous = append(comp.Continuous, resetIn, resetWE)
	return nil
}

// groupStatic looks up a group's static attribute. If accumulateStatic
// claimed a child was static but the attribute is missing by the time a
// compiler emits against it, that is a bug in the accumulator, reported
// as a pass error rather than silently treating the node as dynamic.
func groupStatic(g *ir.Group) (uint64, error) {
	v, ok := g.Static()
	if !ok {
		return 0, errf("static-timing: group %q lost its static attribute between accumulation and emission", g.Name)
	}
	return v, nil
}

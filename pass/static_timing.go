// Package pass implements the static-timing compilation pass: it
// recognizes control fragments whose constituent groups carry a known,
// fixed "static" cycle latency and rewrites them into a single flat
// group driven by a counter-based FSM. A general pass manager and
// visitor plumbing are a separate concern; this package implements only
// the FinishSeq/FinishPar/FinishIf hooks the pass requires, plus the
// minimal post-order driver needed to invoke them (driver.go).
package pass

import (
	"github.com/golang/glog"

	"github.com/futil-lang/futilc/ir"
)

// fsmWidth is the fixed FSM counter width this pass always synthesizes.
// A future version could size it to ceil(log2(T+1)) instead; tests must
// not assume a particular width.
const fsmWidth = 32

// StaticTiming is the static-timing pass.
type StaticTiming struct{}

// accumulateStatic folds the static latencies of stmts using fold,
// returning (k, true) iff every statement is an Enable of a group
// carrying a "static" attribute. It is side-effect free and returns
// (0, false) the moment any statement fails to qualify: a control
// fragment is only static if every one of its children is.
func accumulateStatic(stmts []ir.Control, fold func(acc, x uint64) uint64) (uint64, bool) {
	acc := uint64(0)
	for _, s := range stmts {
		en, ok := s.(*ir.Enable)
		if !ok {
			return 0, false
		}
		v, ok := en.Group.Static()
		if !ok {
			return 0, false
		}
		acc = fold(acc, v)
	}
	return acc, true
}

// FinishSeq lowers a static Seq to a one-hot-by-range FSM with per-group
// go-windows.
func (StaticTiming) FinishSeq(s *ir.Seq, comp *ir.Component, sigs ir.LibrarySignatures) (Action, error) {
	total, ok := accumulateStatic(s.Stmts, func(acc, x uint64) uint64 { return acc + x })
	if !ok {
		return Continue(), nil
	}

	b := ir.NewBuilder(comp, sigs)
	seqGroup, err := b.AddGroup("static_seq", nil)
	if err != nil {
		return Action{}, err
	}
	fsm, err := b.Cell("fsm", "std_reg", fsmWidth)
	if err != nil {
		return Action{}, err
	}
	signalOn, err := b.Const(1, 1)
	if err != nil {
		return Action{}, err
	}

	var cur uint64
	for _, stmt := range s.Stmts {
		en := stmt.(*ir.Enable)
		static, err := groupStatic(en.Group)
		if err != nil {
			return Action{}, err
		}

		startConst, err := b.Const(cur, fsmWidth)
		if err != nil {
			return Action{}, err
		}
		endConst, err := b.Const(cur+static, fsmWidth)
		if err != nil {
			return Action{}, err
		}

		// NOTE: do not generate fsm.out >= 0 — fsm is unsigned, so that
		// comparison is always true and some downstream tools flag it.
		// A single-cycle group collapses to an equality instead.
		var goGuard *ir.Guard
		switch {
		case static == 1:
			goGuard = ir.Eq(fsm.Get("out"), startConst.Get("out"))
		case cur == 0:
			goGuard = ir.Le(fsm.Get("out"), endConst.Get("out"))
		default:
			goGuard = ir.And(
				ir.Ge(fsm.Get("out"), startConst.Get("out")),
				ir.Lt(fsm.Get("out"), endConst.Get("out")),
			)
		}

		assign, err := b.Assign(en.Group.Go(), signalOn.Get("out"), goGuard)
		if err != nil {
			return Action{}, err
		}
		seqGroup.Assign(assign)
		cur += static
	}

	doneGuard := ir.Eq(fsm.Get("out"), mustConst(b, cur, fsmWidth))
	if err := emitCounter(b, comp, seqGroup, fsm, signalOn, doneGuard); err != nil {
		return Action{}, err
	}
	seqGroup.Attributes[ir.StaticAttr] = cur

	glog.V(1).Infof("static-timing: compiled seq of %d groups into %q (static=%d)", len(s.Stmts), seqGroup.Name, cur)
	return Change(&ir.Enable{Group: seqGroup}), nil
}

// FinishPar lowers a static Par to a single counter FSM with per-group
// prefix go-windows.
func (StaticTiming) FinishPar(s *ir.Par, comp *ir.Component, sigs ir.LibrarySignatures) (Action, error) {
	maxTime, ok := accumulateStatic(s.Stmts, func(acc, x uint64) uint64 {
		if x > acc {
			return x
		}
		return acc
	})
	if !ok {
		return Continue(), nil
	}

	b := ir.NewBuilder(comp, sigs)
	parGroup, err := b.AddGroup("static_par", map[string]uint64{ir.StaticAttr: maxTime})
	if err != nil {
		return Action{}, err
	}
	fsm, err := b.Cell("fsm", "std_reg", fsmWidth)
	if err != nil {
		return Action{}, err
	}
	signalOn, err := b.Const(1, 1)
	if err != nil {
		return Action{}, err
	}

	for _, stmt := range s.Stmts {
		en := stmt.(*ir.Enable)
		static, err := groupStatic(en.Group)
		if err != nil {
			return Action{}, err
		}
		stateConst, err := b.Const(static, fsmWidth)
		if err != nil {
			return Action{}, err
		}
		// child.go = 1 while fsm.out <= static_time. A short child's own
		// done handshake makes the extra go pulses past its own latency
		// a no-op; the outer FSM just waits for the slowest child.
		goGuard := ir.Le(fsm.Get("out"), stateConst.Get("out"))
		assign, err := b.Assign(en.Group.Go(), signalOn.Get("out"), goGuard)
		if err != nil {
			return Action{}, err
		}
		parGroup.Assign(assign)
	}

	doneGuard := ir.Eq(fsm.Get("out"), mustConst(b, maxTime, fsmWidth))
	if err := emitCounter(b, comp, parGroup, fsm, signalOn, doneGuard); err != nil {
		return Action{}, err
	}

	glog.V(1).Infof("static-timing: compiled par of %d groups into %q (static=%d)", len(s.Stmts), parGroup.Name, maxTime)
	return Change(&ir.Enable{Group: parGroup}), nil
}

// FinishIf lowers a static conditional to a counter FSM with
// condition-compute, condition-latch, and mutually exclusive branch
// windows.
func (StaticTiming) FinishIf(s *ir.If, comp *ir.Component, sigs ir.LibrarySignatures) (Action, error) {
	tEnable, tok := s.TBranch.(*ir.Enable)
	fEnable, fok := s.FBranch.(*ir.Enable)
	if !tok || !fok {
		return Continue(), nil
	}
	ctime, cok := s.CondGroup.Static()
	ttime, ttok := tEnable.Group.Static()
	ftime, ftok := fEnable.Group.Static()
	if !cok || !ttok || !ftok {
		return Continue(), nil
	}

	maxtf := ttime
	if ftime > maxtf {
		maxtf = ftime
	}
	total := ctime + 1 + maxtf

	b := ir.NewBuilder(comp, sigs)
	ifGroup, err := b.AddGroup("static_if", map[string]uint64{ir.StaticAttr: total})
	if err != nil {
		return Action{}, err
	}
	fsm, err := b.Cell("fsm", "std_reg", fsmWidth)
	if err != nil {
		return Action{}, err
	}
	signalOn, err := b.Const(1, 1)
	if err != nil {
		return Action{}, err
	}
	condStored, err := b.Cell("cond_stored", "std_reg", 1)
	if err != nil {
		return Action{}, err
	}

	condTimeConst, err := b.Const(ctime, fsmWidth)
	if err != nil {
		return Action{}, err
	}
	trueEndConst, err := b.Const(ttime+ctime+1, fsmWidth)
	if err != nil {
		return Action{}, err
	}
	falseEndConst, err := b.Const(ftime+ctime+1, fsmWidth)
	if err != nil {
		return Action{}, err
	}

	// The "done" comparison constant is, by value, always total — but we
	// pick one of the two branch-end constants (ties prefer the
	// false-branch constant, since ttime > ftime is a strict
	// comparison). Tests must compare by value, not by which constant
	// cell produced it.
	maxConst := falseEndConst
	if ttime > ftime {
		maxConst = trueEndConst
	}
	doneGuard := ir.Eq(fsm.Get("out"), maxConst.Get("out"))

	var condGo *ir.Guard
	if ctime == 0 {
		condGo = ir.Eq(fsm.Get("out"), condTimeConst.Get("out"))
	} else {
		condGo = ir.Lt(fsm.Get("out"), condTimeConst.Get("out"))
	}
	condDone := ir.Eq(fsm.Get("out"), condTimeConst.Get("out"))

	tGo := ir.And(
		ir.And(ir.Gt(fsm.Get("out"), condTimeConst.Get("out")), ir.Lt(fsm.Get("out"), trueEndConst.Get("out"))),
		ir.PortGuard(condStored.Get("out")),
	)
	fGo := ir.And(
		ir.And(ir.Gt(fsm.Get("out"), condTimeConst.Get("out")), ir.Lt(fsm.Get("out"), falseEndConst.Get("out"))),
		ir.Not(ir.PortGuard(condStored.Get("out"))),
	)

	condGoAssign, err := b.Assign(s.CondGroup.Go(), signalOn.Get("out"), condGo)
	if err != nil {
		return Action{}, err
	}
	condStoredWE, err := b.Assign(condStored.Get("write_en"), signalOn.Get("out"), condDone)
	if err != nil {
		return Action{}, err
	}
	tGoAssign, err := b.Assign(tEnable.Group.Go(), signalOn.Get("out"), tGo)
	if err != nil {
		return Action{}, err
	}
	fGoAssign, err := b.Assign(fEnable.Group.Go(), signalOn.Get("out"), fGo)
	if err != nil {
		return Action{}, err
	}
	ifGroup.Assign(condGoAssign)
	ifGroup.Assign(condStoredWE)
	ifGroup.Assign(tGoAssign)
	ifGroup.Assign(fGoAssign)

	if err := emitCounter(b, comp, ifGroup, fsm, signalOn, doneGuard); err != nil {
		return Action{}, err
	}

	saveCond, err := b.Assign(condStored.Get("in"), s.Port, condDone)
	if err != nil {
		return Action{}, err
	}
	ifGroup.Assign(saveCond)

	glog.V(1).Infof("static-timing: compiled if (cond=%d true=%d false=%d) into %q (static=%d)",
		ctime, ttime, ftime, ifGroup.Name, total)
	return Change(&ir.Enable{Group: ifGroup}), nil
}

// mustConst builds a constant(value, width) cell and returns its out
// port. It is only used for comparisons the caller has already proven
// cannot fail for any other reason (the component and builder are known
// good at this point in the compiler), so an error here would itself be
// an implementation bug — it panics instead of threading a fourth error
// return through call sites that cannot meaningfully recover from it.
func mustConst(b *ir.Builder, value, width uint64) *ir.Port {
	c, err := b.Const(value, width)
	if err != nil {
		panic(err)
	}
	return c.Get("out")
}

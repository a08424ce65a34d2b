package pass

import (
	"github.com/golang/glog"

	"github.com/futil-lang/futilc/ir"
)

// Run drives the static-timing pass over comp's control tree in
// post-order: children are rewritten before their parent is offered to
// the pass, so a compound node only becomes eligible once its own
// children are all static enables. Run is idempotent: once no compound
// node's children are all static enables, a second call changes nothing
// but the name generator's internal counters.
//
// This is not a general pass manager — it is the minimal post-order
// driver the single static-timing pass needs, wired directly to its
// three hooks.
func Run(comp *ir.Component, sigs ir.LibrarySignatures) error {
	st := &StaticTiming{}
	next, err := walk(comp.Control, comp, sigs, st)
	if err != nil {
		return errf("static-timing: component %q: %w", comp.Name, err)
	}
	comp.Control = next
	return nil
}

// walk recurses into n's children first, then — for the three compound
// variants this pass understands — offers n to the matching finish
// hook. Leaves (Enable, Empty, Print, Disable) pass through unchanged; a
// While is never compiled itself, but its body is walked and rewritten.
func walk(n ir.Control, comp *ir.Component, sigs ir.LibrarySignatures, st *StaticTiming) (ir.Control, error) {
	switch v := n.(type) {
	case *ir.Seq:
		if err := walkAll(v.Stmts, comp, sigs, st); err != nil {
			return nil, err
		}
		act, err := st.FinishSeq(v, comp, sigs)
		if err != nil {
			return nil, err
		}
		if act.Changed() {
			return act.Next(), nil
		}
		return v, nil

	case *ir.Par:
		if err := walkAll(v.Stmts, comp, sigs, st); err != nil {
			return nil, err
		}
		act, err := st.FinishPar(v, comp, sigs)
		if err != nil {
			return nil, err
		}
		if act.Changed() {
			return act.Next(), nil
		}
		return v, nil

	case *ir.If:
		tb, err := walk(v.TBranch, comp, sigs, st)
		if err != nil {
			return nil, err
		}
		v.TBranch = tb
		fb, err := walk(v.FBranch, comp, sigs, st)
		if err != nil {
			return nil, err
		}
		v.FBranch = fb

		act, err := st.FinishIf(v, comp, sigs)
		if err != nil {
			return nil, err
		}
		if act.Changed() {
			return act.Next(), nil
		}
		return v, nil

	case *ir.While:
		body, err := walk(v.Body, comp, sigs, st)
		if err != nil {
			return nil, err
		}
		v.Body = body
		glog.V(2).Infof("static-timing: while loops are not statically compiled, leaving as-is")
		return v, nil

	default:
		// Enable, Empty, Print, Disable: leaves, nothing to rewrite.
		return n, nil
	}
}

func walkAll(stmts []ir.Control, comp *ir.Component, sigs ir.LibrarySignatures, st *StaticTiming) error {
	for i, s := range stmts {
		rewritten, err := walk(s, comp, sigs, st)
		if err != nil {
			return err
		}
		stmts[i] = rewritten
	}
	return nil
}

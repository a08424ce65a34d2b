package pass

import "github.com/futil-lang/futilc/ir"

// evalGuard evaluates a synthesized guard tree against a concrete
// assignment of values to the ports it references. It exists only to let
// tests check properties of the actual guard trees the compilers emit —
// e.g. mutual exclusion, coverage — rather than re-deriving them by
// hand.
func evalGuard(g *ir.Guard, env map[*ir.Port]uint64) bool {
	switch g.Kind {
	case ir.GuardTrue:
		return true
	case ir.GuardPort:
		return env[g.Port] != 0
	case ir.GuardEq:
		return env[g.A] == env[g.B]
	case ir.GuardNeq:
		return env[g.A] != env[g.B]
	case ir.GuardLt:
		return env[g.A] < env[g.B]
	case ir.GuardLe:
		return env[g.A] <= env[g.B]
	case ir.GuardGt:
		return env[g.A] > env[g.B]
	case ir.GuardGe:
		return env[g.A] >= env[g.B]
	case ir.GuardAnd:
		return evalGuard(g.L, env) && evalGuard(g.R, env)
	case ir.GuardOr:
		return evalGuard(g.L, env) || evalGuard(g.R, env)
	case ir.GuardNot:
		return !evalGuard(g.Operand, env)
	default:
		panic("evalGuard: unknown guard kind")
	}
}

// constEnv maps every constant cell's out port to its instantiated
// value, so a test only needs to separately supply the handful of
// non-constant ports (fsm.out, cond_stored.out) it cares about.
func constEnv(comp *ir.Component) map[*ir.Port]uint64 {
	env := map[*ir.Port]uint64{}
	for _, c := range comp.Cells {
		if c.Prim == "constant" {
			env[c.Get("out")] = c.Params[0]
		}
	}
	return env
}

// assignmentTo returns the (first) assignment in assigns whose
// destination is dest.
func assignmentTo(assigns []ir.Assignment, dest *ir.Port) (ir.Assignment, bool) {
	for _, a := range assigns {
		if a.Dest == dest {
			return a, true
		}
	}
	return ir.Assignment{}, false
}

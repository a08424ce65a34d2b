package pass

import "github.com/futil-lang/futilc/ir"

// Action is the result of a finish-hook: either leave the node unchanged
// and keep traversing (Continue), or replace it with a freshly
// synthesized node (Change). A hook reports a fatal condition through
// its ordinary Go error return instead of a third Action value.
type Action struct {
	changed bool
	next    ir.Control
}

// Continue leaves the visited node unchanged.
func Continue() Action { return Action{} }

// Change replaces the visited node with next.
func Change(next ir.Control) Action { return Action{changed: true, next: next} }

// Changed reports whether this Action carries a replacement node.
func (a Action) Changed() bool { return a.changed }

// Next returns the replacement node. Only meaningful when Changed is true.
func (a Action) Next() ir.Control { return a.next }

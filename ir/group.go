package ir

// StaticAttr is the attribute key carrying a group's exact cycle latency.
const StaticAttr = "static"

// Group is a named collection of assignments plus an attribute map. Two
// pseudo-ports are implicit on every group: go (externally asserted to
// activate it) and done (asserted by the group when its work completes).
type Group struct {
	Name        string
	Attributes  map[string]uint64
	Assignments []Assignment

	goPort, donePort *Port
}

func newGroup(name string) *Group {
	g := &Group{Name: name, Attributes: map[string]uint64{}}
	g.goPort = &Port{Name: "go", Width: 1, Direction: In, Parent: PortParent{Group: g}}
	g.donePort = &Port{Name: "done", Width: 1, Direction: Out, Parent: PortParent{Group: g}}
	return g
}

// Go returns the group's implicit go port (a sink: other groups' logic
// drives it to activate this group).
func (g *Group) Go() *Port { return g.goPort }

// Done returns the group's implicit done port (a driver as seen from
// outside; the group itself is the one permitted to assign to it — see
// Builder.Assign).
func (g *Group) Done() *Port { return g.donePort }

// Static returns the group's static cycle latency and whether one is
// present. Absence means the group is dynamic.
func (g *Group) Static() (uint64, bool) {
	v, ok := g.Attributes[StaticAttr]
	return v, ok
}

// Assign appends an already-built assignment to the group's own list.
// Callers build the Assignment via Builder.Assign so direction/width
// checks run uniformly; Assign itself performs no validation.
func (g *Group) Assign(a Assignment) {
	g.Assignments = append(g.Assignments, a)
}

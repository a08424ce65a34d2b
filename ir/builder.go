package ir

// Builder provides scoped creation, inside a target component, of fresh
// primitive cells, fresh constant cells, and guarded assignments between
// named ports. It does not decide which
// assignment list an assignment belongs to — callers append the result to
// a group's Assignments or to the component's Continuous list themselves.
type Builder struct {
	comp *Component
	sigs LibrarySignatures
}

// NewBuilder scopes a Builder to comp, resolving primitive port
// signatures from sigs, a read-only catalog supplied by the caller.
func NewBuilder(comp *Component, sigs LibrarySignatures) *Builder {
	return &Builder{comp: comp, sigs: sigs}
}

// Cell instantiates a fresh primitive cell named uniquely from prefix,
// with the given primitive name and instantiation parameters (e.g. the
// bit width for std_reg/std_add). The cell is registered on the
// component before Cell returns.
func (b *Builder) Cell(prefix, prim string, params ...uint64) (*Cell, error) {
	sig, ok := b.sigs[prim]
	if !ok {
		return nil, errf("unknown primitive %q", prim)
	}
	portSigs, err := sig(params...)
	if err != nil {
		return nil, errf("primitive %q: %w", prim, err)
	}
	name, err := b.comp.namegen.Gen(prefix)
	if err != nil {
		return nil, err
	}
	if b.comp.FindCell(name) != nil {
		return nil, errf("name collision: cell %q already exists", name)
	}
	cell := &Cell{Name: name, Prim: prim, Params: append([]uint64{}, params...)}
	cell.ports = make(map[string]*Port, len(portSigs))
	for _, ps := range portSigs {
		cell.ports[ps.Name] = &Port{
			Name:      ps.Name,
			Width:     ps.Width,
			Direction: ps.Direction,
			Parent:    PortParent{Cell: cell},
		}
	}
	b.comp.addCell(cell)
	return cell, nil
}

// Const instantiates a fresh constant(value, width) cell.
func (b *Builder) Const(value, width uint64) (*Cell, error) {
	return b.Cell("const", "constant", value, width)
}

// AddGroup allocates a new empty group named uniquely from prefix,
// copying attrs into the new group's attribute map. The group is
// registered on the component before AddGroup returns.
func (b *Builder) AddGroup(prefix string, attrs map[string]uint64) (*Group, error) {
	name, err := b.comp.namegen.Gen(prefix)
	if err != nil {
		return nil, err
	}
	if b.comp.FindGroup(name) != nil {
		return nil, errf("name collision: group %q already exists", name)
	}
	g := newGroup(name)
	for k, v := range attrs {
		g.Attributes[k] = v
	}
	b.comp.addGroup(g)
	return g, nil
}

// Assign builds a guarded assignment from dest to src, validating that
// dest is writable and src is readable. A nil guard is the constant-true
// guard.
//
// The one exception to "dest must be a sink": a group is permitted to
// assign to its own implicit done port, even though done reads as a
// driver from everywhere else — exactly as a component drives its own
// output ports from the inside.
func (b *Builder) Assign(dest, src *Port, guard *Guard) (Assignment, error) {
	if !b.assignableDest(dest) {
		return Assignment{}, errf("assignment to %s: not a sink port", dest.QualifiedName())
	}
	if !src.IsDriver() {
		return Assignment{}, errf("assignment from %s: not a driver port", src.QualifiedName())
	}
	if dest.Width != src.Width {
		return Assignment{}, errf("width mismatch assigning %s (width %d) from %s (width %d)",
			dest.QualifiedName(), dest.Width, src.QualifiedName(), src.Width)
	}
	if guard == nil {
		guard = True()
	}
	return Assignment{Dest: dest, Src: src, Guard: guard}, nil
}

func (b *Builder) assignableDest(dest *Port) bool {
	if dest.IsSink() {
		return true
	}
	// A group driving its own done port.
	return dest.Parent.Group != nil && dest.Name == "done"
}

// Package ir implements the structural data model for the futil IR: ports,
// cells, groups, components, the guard algebra, and the recursive control
// tree. The surface parser, the general pass-manager, and the primitive
// cell library are external collaborators and are not part of this
// package; see the library signatures in signature.go for the minimal
// slice of the primitive catalog the static-timing pass needs.
package ir

import "fmt"

// Direction says whether a port is read (Out, a driver) or written
// (In, a sink) from the point of view of code outside its owner.
type Direction int

const (
	// Out marks a port as a driver: other assignments may read it.
	Out Direction = iota
	// In marks a port as a sink: only a driver may be assigned to it.
	In
)

func (d Direction) String() string {
	if d == Out {
		return "out"
	}
	return "in"
}

// PortParent identifies what a Port belongs to: a named cell instance, a
// group's implicit go/done pseudo-ports, or the enclosing component's own
// boundary ("this" in the surface syntax).
type PortParent struct {
	// Cell is non-nil when the port belongs to a cell instance.
	Cell *Cell
	// Group is non-nil when the port is a group's implicit go/done port.
	Group *Group
	// This is true when the port is a boundary port of the enclosing
	// component itself (Port::This in the surface AST).
	This bool
}

func (p PortParent) String() string {
	switch {
	case p.Cell != nil:
		return p.Cell.Name
	case p.Group != nil:
		return p.Group.Name
	default:
		return "this"
	}
}

// Port names an electrical signal: either (component_instance, port_name)
// or (this, port_name) at the enclosing component's boundary.
type Port struct {
	Name      string
	Width     uint64
	Direction Direction
	Parent    PortParent
}

// QualifiedName returns the "owner.port" form used in diagnostics.
func (p *Port) QualifiedName() string {
	return fmt.Sprintf("%s.%s", p.Parent.String(), p.Name)
}

// IsDriver reports whether the port may be read as an assignment source.
func (p *Port) IsDriver() bool {
	return p.Direction == Out
}

// IsSink reports whether the port may be the destination of an assignment.
func (p *Port) IsSink() bool {
	return p.Direction == In
}

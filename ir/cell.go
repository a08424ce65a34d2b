package ir

// Cell is a named instance of a primitive or user-defined component. The
// static-timing pass only ever instantiates three primitives: std_reg(W),
// std_add(W), and constant(V, W); ports are populated from the
// LibrarySignatures catalog at construction time (see builder.go).
type Cell struct {
	Name   string
	Prim   string
	Params []uint64
	ports  map[string]*Port
}

// Port returns the named port of the cell, or nil if the cell's signature
// does not define one with that name.
func (c *Cell) Port(name string) *Port {
	return c.ports[name]
}

// Get is a convenience wrapper over Port that panics if the port is
// missing — used at call sites where the caller already knows, from the
// primitive's signature, that the port must exist (a missing port here is
// an implementation bug in the signature catalog, not a pass-time error).
func (c *Cell) Get(name string) *Port {
	p := c.ports[name]
	if p == nil {
		panic("ir: cell " + c.Name + " (" + c.Prim + ") has no port " + name)
	}
	return p
}

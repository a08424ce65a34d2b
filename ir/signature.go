package ir

// PortSig describes one port of a primitive, as produced for a given set
// of instantiation parameters.
type PortSig struct {
	Name      string
	Width     uint64
	Direction Direction
}

// Signature builds the port list for a primitive given its instantiation
// parameters (e.g. the bit width for std_reg/std_add, or value+width for
// constant).
type Signature func(params ...uint64) ([]PortSig, error)

// LibrarySignatures is the read-only catalog of primitive signatures
// supplied by the pass's caller. The static-timing pass never mutates
// it; it only looks primitives up by name.
type LibrarySignatures map[string]Signature

// DefaultLibrary returns the slice of the primitive library the
// static-timing pass actually exercises: std_reg, std_add, and constant.
// A complete hardware-primitive library is a separate concern; this is
// only the part this pass needs to instantiate new structure.
func DefaultLibrary() LibrarySignatures {
	return LibrarySignatures{
		"std_reg": func(params ...uint64) ([]PortSig, error) {
			w, err := oneParam("std_reg", params)
			if err != nil {
				return nil, err
			}
			return []PortSig{
				{Name: "in", Width: w, Direction: In},
				{Name: "write_en", Width: 1, Direction: In},
				{Name: "out", Width: w, Direction: Out},
				{Name: "done", Width: 1, Direction: Out},
			}, nil
		},
		"std_add": func(params ...uint64) ([]PortSig, error) {
			w, err := oneParam("std_add", params)
			if err != nil {
				return nil, err
			}
			return []PortSig{
				{Name: "left", Width: w, Direction: In},
				{Name: "right", Width: w, Direction: In},
				{Name: "out", Width: w, Direction: Out},
			}, nil
		},
		"constant": func(params ...uint64) ([]PortSig, error) {
			if len(params) != 2 {
				return nil, errf("constant expects (value, width) params, got %d", len(params))
			}
			return []PortSig{
				{Name: "out", Width: params[1], Direction: Out},
			}, nil
		},
	}
}

func oneParam(prim string, params []uint64) (uint64, error) {
	if len(params) != 1 {
		return 0, errf("%s expects exactly one width parameter, got %d", prim, len(params))
	}
	return params[0], nil
}

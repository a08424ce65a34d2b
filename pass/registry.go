package pass

// Named is the minimal pass-registration protocol a pass manager
// consumes: a stable name and a human-readable description.
type Named interface {
	Name() string
	Description() string
}

// Name implements Named.
func (StaticTiming) Name() string { return "static-timing" }

// Description implements Named.
func (StaticTiming) Description() string {
	return "Opportunistically compile timed groups and generate timing information when possible."
}

var registry = map[string]func() *StaticTiming{
	"static-timing": func() *StaticTiming { return &StaticTiming{} },
}

// Lookup resolves a pass by its registered name. Only "static-timing" is
// registered here; a general pass manager and its catalog of other
// passes is a separate concern this package does not implement.
func Lookup(name string) (*StaticTiming, bool) {
	factory, ok := registry[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

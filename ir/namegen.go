package ir

import "fmt"

// NameGenerator hands out unique names within a component, scoped by
// prefix. It persists on the Component so that running the pass a
// second time continues the same sequence rather than colliding with
// names the first run produced, keeping repeated runs idempotent.
type NameGenerator struct {
	counters map[string]int
	used     map[string]bool
}

func newNameGenerator() *NameGenerator {
	return &NameGenerator{counters: map[string]int{}, used: map[string]bool{}}
}

// reserve marks a name as taken. The component calls it for every cell
// and group it registers.
func (ng *NameGenerator) reserve(name string) {
	ng.used[name] = true
}

// Gen returns a fresh name beginning with prefix, unique among every name
// this generator has produced or had reserved. It never reuses a name,
// even across repeated passes over the same component.
func (ng *NameGenerator) Gen(prefix string) (string, error) {
	for i := 0; i < 1<<20; i++ {
		n := ng.counters[prefix]
		ng.counters[prefix] = n + 1
		name := fmt.Sprintf("%s_%d", prefix, n)
		if !ng.used[name] {
			ng.used[name] = true
			return name, nil
		}
	}
	return "", errf("name generator exhausted its unique-name strategy for prefix %q", prefix)
}

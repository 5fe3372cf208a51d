// Package scenario provides named vessel-layout presets and a file loader.
// A scenario is purely configuration: the layouts populating the field and
// the physics parameter set, with no logic of its own.
package scenario

import (
	"sort"

	"echolab/internal/sim"
	"echolab/internal/vessel"
)

// Scenario bundles the vessel layouts and physics parameters for one run.
type Scenario struct {
	Name    string
	Layouts []vessel.Layout
	Params  sim.Params
}

// Factory constructs a Scenario.
type Factory func() Scenario

var registry = map[string]Factory{}

// Register adds a scenario factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registry[name] = f
}

// Get returns the named scenario, reporting whether it exists.
func Get(name string) (Scenario, bool) {
	f, ok := registry[name]
	if !ok {
		return Scenario{}, false
	}
	return f(), true
}

// Names lists the registered scenario names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

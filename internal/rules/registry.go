package rules

import "fmt"

// Default returns the full catalogue in registration order. The paragraph
// form of the runaway rule sits ahead of the EOF form because both start at
// "Runaway argument?" and the first match wins.
func Default() []Rule {
	return []Rule{
		UndefinedCommand{},
		BraceMismatch{},
		MathModeOnly{},
		RunawayArgument{},
		RunawayArgumentEOF{},
		UnderfullBox{},
		OverfullBox{},
		MissingPackage{},
		InvalidOption{},
		ExtraAlignment{},
	}
}

// Names lists all rule names in registration order.
func Names() []string {
	all := Default()
	names := make([]string, 0, len(all))
	for _, r := range all {
		names = append(names, r.Name())
	}
	return names
}

// Select filters the catalogue by the enabled map: a rule is kept unless
// explicitly disabled. Unknown names in the map are an error so typos in the
// configuration do not silently disable nothing.
func Select(enabled map[string]bool) ([]Rule, error) {
	known := make(map[string]bool, 16)
	for _, r := range Default() {
		known[r.Name()] = true
	}
	for name := range enabled {
		if !known[name] {
			return nil, fmt.Errorf("unknown rule %q", name)
		}
	}
	out := make([]Rule, 0, len(known))
	for _, r := range Default() {
		if on, found := enabled[r.Name()]; found && !on {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

package config

import (
	"slices"
)

// ResolveInheritance returns a copy of cfg with every environment's
// inheritance chain flattened:
//
//   - the common table is merged beneath each environment's own variables
//   - each environment's variables become parent variables overlaid by its
//     own, recursively up the extends chain, so the result is the union
//     common first, then each ancestor root-down, then the environment
//     itself, with nearer declarations winning and first-seen keys keeping
//     their position
//   - color and requires_confirmation are taken from the nearest ancestor
//     that sets them when the environment leaves them unset
//   - description is never inherited
//
// Resolution is memoized, so shared ancestors are flattened once. The
// input is not mutated. A cycle in the extends graph is reported as a
// [CircularReferenceError]; callers that validated first never see one.
func ResolveInheritance(cfg *Configuration) (*Configuration, error) {
	out := cfg.clone()

	if out.Common != nil {
		for _, e := range out.Environments {
			merged := out.Common.Clone()
			merged.Merge(e.Variables)
			e.Variables = merged
		}
	}

	resolved := make(map[string]*Environment, len(out.Environments))

	var resolve func(name string, path []string) (*Environment, error)

	resolve = func(name string, path []string) (*Environment, error) {
		if e, ok := resolved[name]; ok {
			return e, nil
		}

		if idx := slices.Index(path, name); idx >= 0 {
			cycle := append(slices.Clone(path[idx:]), name)

			return nil, &CircularReferenceError{Cycle: cycle}
		}

		e := out.Environments[name]
		if e == nil {
			return nil, &InvalidEnvironmentError{Name: name}
		}

		if e.Extends == "" {
			resolved[name] = e

			return e, nil
		}

		parent, err := resolve(e.Extends, append(path, name))
		if err != nil {
			return nil, err
		}

		vars := parent.Variables.Clone()
		vars.Merge(e.Variables)
		e.Variables = vars

		if e.Color == "" {
			e.Color = parent.Color
		}

		if e.RequiresConfirmation == nil && parent.RequiresConfirmation != nil {
			rc := *parent.RequiresConfirmation
			e.RequiresConfirmation = &rc
		}

		resolved[name] = e

		return e, nil
	}

	for _, name := range out.Names {
		if _, err := resolve(name, nil); err != nil {
			return nil, err
		}
	}

	return out, nil
}

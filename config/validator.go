package config

import (
	"fmt"
	"slices"
)

// Validate checks the structural rules of a raw document before any
// inheritance or interpolation runs:
//
//   - version and at least one environment are present
//   - every environment carries a description
//   - every extends reference and the default environment (when set) name
//     a declared environment
//   - the extends graph is acyclic
//   - common variables have non-empty keys and values
//
// The first violation found is returned; later stages assume a validated
// document.
func Validate(cfg *Configuration) error {
	if err := validateRequired(cfg); err != nil {
		return err
	}

	if err := validateReferences(cfg); err != nil {
		return err
	}

	if err := validateAcyclic(cfg); err != nil {
		return err
	}

	return validateCommon(cfg)
}

func validateRequired(cfg *Configuration) error {
	if cfg.Version == "" {
		return &MissingFieldError{Field: "version"}
	}

	if len(cfg.Names) == 0 {
		return &MissingFieldError{Field: "environments"}
	}

	for _, name := range cfg.Names {
		if cfg.Environments[name].Description == "" {
			return &ValidationError{Message: fmt.Sprintf(
				"environment %q is missing a description", name,
			)}
		}
	}

	return nil
}

func validateReferences(cfg *Configuration) error {
	for _, name := range cfg.Names {
		parent := cfg.Environments[name].Extends
		if parent == "" {
			continue
		}

		if _, ok := cfg.Environments[parent]; !ok {
			return &InvalidEnvironmentError{Name: parent}
		}
	}

	if def := cfg.Settings.DefaultEnvironment; def != "" {
		if _, ok := cfg.Environments[def]; !ok {
			return &InvalidEnvironmentError{Name: def}
		}
	}

	return nil
}

func validateAcyclic(cfg *Configuration) error {
	for _, name := range cfg.Names {
		if err := walkExtends(cfg, name, nil); err != nil {
			return err
		}
	}

	return nil
}

// walkExtends follows the extends chain from name, failing when a name on
// the current path repeats. The reported cycle runs from the first
// occurrence of the repeated name through its repeat.
func walkExtends(cfg *Configuration, name string, path []string) error {
	if idx := slices.Index(path, name); idx >= 0 {
		cycle := append(slices.Clone(path[idx:]), name)

		return &CircularReferenceError{Cycle: cycle}
	}

	parent := cfg.Environments[name].Extends
	if parent == "" {
		return nil
	}

	return walkExtends(cfg, parent, append(path, name))
}

func validateCommon(cfg *Configuration) error {
	if cfg.Common == nil {
		return nil
	}

	for key, value := range cfg.Common.All() {
		if key == "" {
			return &ValidationError{
				Message: "common variable has an empty key",
			}
		}

		if value == "" {
			return &ValidationError{Message: fmt.Sprintf(
				"common variable %q has an empty value", key,
			)}
		}
	}

	return nil
}

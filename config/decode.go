package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/ardnew/stand/env"
)

// Metadata field names reserved inside an environment table. Every other
// key of the table is a variable declaration.
const (
	fieldDescription          = "description"
	fieldExtends              = "extends"
	fieldColor                = "color"
	fieldRequiresConfirmation = "requires_confirmation"
)

func isMetadataField(key string) bool {
	switch key {
	case fieldDescription, fieldExtends, fieldColor, fieldRequiresConfirmation:
		return true
	}

	return false
}

// rawDocument is the decode target shared by the TOML reader. Environment
// tables decode as loose maps because variable keys sit beside the
// metadata fields.
type rawDocument struct {
	Version      string                    `toml:"version"`
	Settings     Settings                  `toml:"settings"`
	Encryption   *Encryption               `toml:"encryption"`
	Common       map[string]string         `toml:"common"`
	Environments map[string]map[string]any `toml:"environments"`
}

// decodeTOML decodes a TOML document, recovering declaration order from
// the decoder's key metadata. Maps alone lose order; the metadata key list
// is the only record of how the author laid the document out.
func decodeTOML(data []byte) (*Configuration, error) {
	var raw rawDocument

	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	cfg := &Configuration{
		Version:      raw.Version,
		Environments: make(map[string]*Environment, len(raw.Environments)),
		Settings:     raw.Settings,
		Encryption:   raw.Encryption,
	}

	if md.IsDefined("common") {
		cfg.Common = env.NewVars()
	}

	// Declaration order of variable keys per environment.
	varOrder := make(map[string][]string, len(raw.Environments))

	for _, key := range md.Keys() {
		switch {
		case len(key) == 2 && key[0] == "common":
			cfg.Common.Set(key[1], raw.Common[key[1]])

		case len(key) == 2 && key[0] == "environments":
			cfg.Names = append(cfg.Names, key[1])

		case len(key) == 3 && key[0] == "environments":
			varOrder[key[1]] = append(varOrder[key[1]], key[2])
		}
	}

	for _, name := range cfg.Names {
		e, err := environmentFromTable(
			name, raw.Environments[name], varOrder[name],
		)
		if err != nil {
			return nil, err
		}

		cfg.Environments[name] = e
	}

	return cfg, nil
}

// environmentFromTable converts one decoded environment table, separating
// metadata fields from variable declarations. keys is the table's key list
// in declaration order.
func environmentFromTable(
	name string,
	table map[string]any,
	keys []string,
) (*Environment, error) {
	e := &Environment{Variables: env.NewVars()}

	for _, key := range keys {
		value := table[key]

		switch key {
		case fieldDescription:
			s, err := stringField(name, key, value)
			if err != nil {
				return nil, err
			}

			e.Description = s

		case fieldExtends:
			s, err := stringField(name, key, value)
			if err != nil {
				return nil, err
			}

			e.Extends = s

		case fieldColor:
			s, err := stringField(name, key, value)
			if err != nil {
				return nil, err
			}

			e.Color = s

		case fieldRequiresConfirmation:
			b, ok := value.(bool)
			if !ok {
				return nil, &ValidationError{Message: fmt.Sprintf(
					"environment %q: %s must be a boolean, got %T",
					name, key, value,
				)}
			}

			e.RequiresConfirmation = &b

		default:
			s, ok := value.(string)
			if !ok {
				return nil, &ValidationError{Message: fmt.Sprintf(
					"environment %q: variable %q must be a string, got %T",
					name, key, value,
				)}
			}

			e.Variables.Set(key, s)
		}
	}

	return e, nil
}

func stringField(envName, field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", &ValidationError{Message: fmt.Sprintf(
			"environment %q: %s must be a string, got %T",
			envName, field, value,
		)}
	}

	return s, nil
}

package config

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/stand/env"
)

// legacyDocument is the decode target for the pre-TOML YAML layout.
// Ordered map slices keep variable declaration order intact.
type legacyDocument struct {
	Version      string        `yaml:"version"`
	Settings     Settings      `yaml:"settings"`
	Encryption   *Encryption   `yaml:"encryption"`
	Common       yaml.MapSlice `yaml:"common"`
	Environments yaml.MapSlice `yaml:"environments"`
}

// decodeYAML decodes the legacy YAML document layout. The structure
// mirrors the TOML layout field for field; only the surface syntax
// differs.
func decodeYAML(data []byte) (*Configuration, error) {
	var raw legacyDocument

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
	if err != nil {
		return nil, err
	}

	cfg := &Configuration{
		Version:      raw.Version,
		Environments: make(map[string]*Environment, len(raw.Environments)),
		Settings:     raw.Settings,
		Encryption:   raw.Encryption,
	}

	if raw.Common != nil {
		cfg.Common = env.NewVars()

		for _, item := range raw.Common {
			key := fmt.Sprint(item.Key)

			value, ok := item.Value.(string)
			if !ok {
				return nil, &ValidationError{Message: fmt.Sprintf(
					"common variable %q must be a string, got %T",
					key, item.Value,
				)}
			}

			cfg.Common.Set(key, value)
		}
	}

	for _, item := range raw.Environments {
		name := fmt.Sprint(item.Key)

		table, ok := item.Value.(yaml.MapSlice)
		if !ok {
			return nil, &ValidationError{Message: fmt.Sprintf(
				"environment %q must be a mapping, got %T", name, item.Value,
			)}
		}

		fields := make(map[string]any, len(table))
		keys := make([]string, 0, len(table))

		for _, field := range table {
			key := fmt.Sprint(field.Key)
			fields[key] = field.Value
			keys = append(keys, key)
		}

		e, err := environmentFromTable(name, fields, keys)
		if err != nil {
			return nil, err
		}

		cfg.Names = append(cfg.Names, name)
		cfg.Environments[name] = e
	}

	return cfg, nil
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/stand/pkg"
)

// Load reads the project's configuration document from root and runs the
// complete pipeline: decode, [Validate], [ResolveInheritance], and process
// environment interpolation. The result is fully resolved and ready to
// hand to callers; no later stage runs if an earlier one fails.
func Load(root string) (*Configuration, error) {
	cfg, err := LoadDocument(root)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	resolved, err := ResolveInheritance(cfg)
	if err != nil {
		return nil, err
	}

	if err := interpolateEnvironments(resolved); err != nil {
		return nil, err
	}

	return resolved, nil
}

// LoadDocument reads and decodes the project's configuration document from
// root without validating or resolving it. Edit-oriented callers use this
// to round-trip the document as written.
func LoadDocument(root string) (*Configuration, error) {
	return ReadDocument(pkg.ConfigFilePath(root))
}

// ReadDocument reads and decodes the document at path. The layout is
// chosen by extension: .yaml and .yml decode as the legacy layout,
// anything else as TOML.
func ReadDocument(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	var cfg *Configuration

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = decodeYAML(data)

	default:
		cfg, err = decodeTOML(data)
	}

	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return nil, err
		}

		return nil, &DecodeError{Path: path, Err: err}
	}

	return cfg, nil
}

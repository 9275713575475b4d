package config

import (
	"github.com/ardnew/stand/env"
)

// Environment is a named bundle of variables plus inheritance and display
// metadata.
type Environment struct {
	// Description is a human-readable summary. It is required and never
	// inherited from a parent.
	Description string

	// Extends names the parent environment whose variables and display
	// metadata this environment inherits. Empty means no parent.
	Extends string

	// Color is the display color associated with the environment, or empty
	// when unset. Inherited from the parent when unset.
	Color string

	// RequiresConfirmation marks the environment as needing explicit
	// confirmation before use (typically production). Nil means unset and
	// inheritable from the parent.
	RequiresConfirmation *bool

	// Variables holds the environment's own variable declarations in
	// document order.
	Variables *env.Vars
}

// clone returns an independent copy of the environment.
func (e *Environment) clone() *Environment {
	c := &Environment{
		Description: e.Description,
		Extends:     e.Extends,
		Color:       e.Color,
		Variables:   e.Variables.Clone(),
	}

	if e.RequiresConfirmation != nil {
		rc := *e.RequiresConfirmation
		c.RequiresConfirmation = &rc
	}

	return c
}

// Settings carries project-level options.
type Settings struct {
	// DefaultEnvironment names the environment assumed when none is given
	// explicitly. Optional; when set it must name a declared environment.
	DefaultEnvironment string `toml:"default_environment" yaml:"default_environment"`
}

// Encryption carries the project's value-encryption settings. The public
// key encrypts values written into the document; the matching private key
// is kept outside the document.
type Encryption struct {
	PublicKey string `toml:"public_key" yaml:"public_key"`
}

// Configuration is a fully decoded stand document. It is constructed once
// per load and read-only afterward.
type Configuration struct {
	// Version is the document format version. Required.
	Version string

	// Common holds variables shared by all environments at the lowest
	// merge precedence, or nil when the document has no common table.
	Common *env.Vars

	// Environments maps environment names to their declarations.
	Environments map[string]*Environment

	// Names lists the environment names in document order.
	Names []string

	// Settings holds project-level options.
	Settings Settings

	// Encryption holds value-encryption settings, or nil when the project
	// has encryption disabled.
	Encryption *Encryption
}

// Environment returns the named environment and whether it is declared.
func (c *Configuration) Environment(name string) (*Environment, bool) {
	e, ok := c.Environments[name]

	return e, ok
}

// clone returns a deep copy sharing no mutable state with the receiver.
func (c *Configuration) clone() *Configuration {
	out := &Configuration{
		Version:      c.Version,
		Environments: make(map[string]*Environment, len(c.Environments)),
		Names:        append([]string(nil), c.Names...),
		Settings:     c.Settings,
	}

	if c.Common != nil {
		out.Common = c.Common.Clone()
	}

	if c.Encryption != nil {
		enc := *c.Encryption
		out.Encryption = &enc
	}

	for name, e := range c.Environments {
		out.Environments[name] = e.clone()
	}

	return out
}

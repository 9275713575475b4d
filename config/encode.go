package config

import (
	"fmt"
	"os"
	"strings"
)

// Encode renders cfg as a TOML document in canonical layout: version,
// [settings], [encryption], [common], then each environment in
// declaration order with metadata fields before variables.
//
// The generic TOML encoder sorts map keys alphabetically, which would
// discard the declaration order this format is specified to keep, so the
// document is rendered directly.
func Encode(cfg *Configuration) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "version = %s\n", quoteValue(cfg.Version))

	if cfg.Settings.DefaultEnvironment != "" {
		sb.WriteString("\n[settings]\n")
		fmt.Fprintf(&sb, "default_environment = %s\n",
			quoteValue(cfg.Settings.DefaultEnvironment))
	}

	if cfg.Encryption != nil {
		sb.WriteString("\n[encryption]\n")
		fmt.Fprintf(&sb, "public_key = %s\n",
			quoteValue(cfg.Encryption.PublicKey))
	}

	if cfg.Common != nil {
		sb.WriteString("\n[common]\n")

		for key, value := range cfg.Common.All() {
			fmt.Fprintf(&sb, "%s = %s\n", quoteKey(key), quoteValue(value))
		}
	}

	for _, name := range cfg.Names {
		e := cfg.Environments[name]

		fmt.Fprintf(&sb, "\n[environments.%s]\n", quoteKey(name))
		fmt.Fprintf(&sb, "description = %s\n", quoteValue(e.Description))

		if e.Extends != "" {
			fmt.Fprintf(&sb, "extends = %s\n", quoteValue(e.Extends))
		}

		if e.Color != "" {
			fmt.Fprintf(&sb, "color = %s\n", quoteValue(e.Color))
		}

		if e.RequiresConfirmation != nil {
			fmt.Fprintf(&sb, "requires_confirmation = %t\n",
				*e.RequiresConfirmation)
		}

		for key, value := range e.Variables.All() {
			fmt.Fprintf(&sb, "%s = %s\n", quoteKey(key), quoteValue(value))
		}
	}

	return sb.String()
}

// WriteDocument renders cfg and writes it to path.
func WriteDocument(path string, cfg *Configuration) error {
	return os.WriteFile(path, []byte(Encode(cfg)), 0o644)
}

func quoteKey(key string) string {
	for _, r := range key {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z',
			r >= '0' && r <= '9', r == '_', r == '-':

		default:
			return quoteValue(key)
		}
	}

	if key == "" {
		return `""`
	}

	return key
}

func quoteValue(value string) string {
	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range value {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04X`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

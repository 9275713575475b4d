package config

import (
	"os"
	"strings"
)

// Interpolate substitutes every ${NAME} reference in value against the
// process environment. Unlike env-file expansion, this substitution is
// strict: an unset variable, an unterminated reference, and an empty name
// each fail with their own error. Replacement text is taken verbatim.
func Interpolate(value string) (string, error) {
	return interpolate(value, os.LookupEnv)
}

func interpolate(
	value string,
	lookup func(name string) (string, bool),
) (string, error) {
	start := strings.Index(value, "${")
	if start < 0 {
		return value, nil
	}

	var sb strings.Builder

	sb.Grow(len(value))

	offset := 0

	for start >= 0 {
		sb.WriteString(value[:start])

		rest := value[start+2:]

		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return "", &UnterminatedReferenceError{Offset: offset + start}
		}

		name := rest[:end]
		if name == "" {
			return "", &EmptyVariableNameError{}
		}

		replacement, ok := lookup(name)
		if !ok {
			return "", &InterpolationError{Variable: name}
		}

		sb.WriteString(replacement)

		consumed := start + 2 + end + 1
		offset += consumed
		value = value[consumed:]

		start = strings.Index(value, "${")
	}

	sb.WriteString(value)

	return sb.String(), nil
}

// interpolateEnvironments substitutes process environment references in
// every resolved environment's variable values and description, in place.
func interpolateEnvironments(cfg *Configuration) error {
	for _, name := range cfg.Names {
		e := cfg.Environments[name]

		desc, err := Interpolate(e.Description)
		if err != nil {
			return err
		}

		e.Description = desc

		vars := e.Variables.Clone()

		for key, value := range e.Variables.All() {
			expanded, err := Interpolate(value)
			if err != nil {
				return err
			}

			vars.Set(key, expanded)
		}

		e.Variables = vars
	}

	return nil
}

package env

import (
	"fmt"
	"slices"
	"strings"
)

// UndefinedBehavior selects how the cross-source expander treats a ${NAME}
// reference that has no definition in the merged mapping.
type UndefinedBehavior int

const (
	// UndefinedEmptyString substitutes the empty string (the default).
	UndefinedEmptyString UndefinedBehavior = iota
	// UndefinedError fails the whole resolution.
	UndefinedError
	// UndefinedLeaveUnexpanded substitutes the literal ${NAME} text.
	UndefinedLeaveUnexpanded
)

// ResolutionOptions controls cross-source expansion.
type ResolutionOptions struct {
	UndefinedVariables UndefinedBehavior
}

// CircularReferenceError reports a ${NAME} reference cycle. Cycle holds the
// names from the first occurrence of the repeated name through its repeat,
// so a cycle of length k is reported with k+1 entries.
type CircularReferenceError struct {
	Cycle []string
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf(
		"circular reference detected in variable expansion: %s",
		strings.Join(e.Cycle, " -> "),
	)
}

// UndefinedVariableError reports a reference to a name with no definition
// under [UndefinedError] behavior.
type UndefinedVariableError struct {
	Variable string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable referenced: %s", e.Variable)
}

// expandString performs a single left-to-right pass over value, replacing
// each ${NAME} placeholder with the result of lookup. Replacement text is
// not rescanned. An unterminated "${" stops expansion and leaves the
// remainder verbatim.
//
// Both expansion flavors are built on this scan; they differ only in the
// lookup they provide.
func expandString(
	value string,
	lookup func(name string) (string, error),
) (string, error) {
	start := strings.Index(value, "${")
	if start < 0 {
		return value, nil
	}

	var sb strings.Builder

	sb.Grow(len(value))

	for start >= 0 {
		sb.WriteString(value[:start])
		value = value[start+2:]

		end := strings.IndexByte(value, '}')
		if end < 0 {
			// No closing brace: keep the rest verbatim.
			sb.WriteString("${")
			sb.WriteString(value)

			return sb.String(), nil
		}

		name := value[:end]
		value = value[end+1:]

		replacement, err := lookup(name)
		if err != nil {
			return "", err
		}

		sb.WriteString(replacement)

		start = strings.Index(value, "${")
	}

	sb.WriteString(value)

	return sb.String(), nil
}

// expandInFile substitutes ${NAME} references against variables already
// committed during the same parse. Undefined names expand to the empty
// string; no cycle is possible because forward references never resolve.
func expandInFile(value string, committed *Vars) string {
	expanded, _ := expandString(value, func(name string) (string, error) {
		return committed.GetOr(name, ""), nil
	})

	return expanded
}

// expandAll cross-source expands every value of merged, giving each
// top-level key a fresh cycle-detection stack so unrelated keys cannot
// interfere with one another. The input mapping is never mutated.
func expandAll(merged *Vars, opts ResolutionOptions) (*Vars, error) {
	resolved := NewVars()

	for key, value := range merged.All() {
		stack := make([]string, 0, 4)

		expanded, err := expandValue(value, merged, opts, stack)
		if err != nil {
			return nil, err
		}

		resolved.Set(key, expanded)
	}

	return resolved, nil
}

// expandValue recursively expands value against the complete merged
// mapping. stack holds the names currently being expanded for this root;
// revisiting one is a cycle.
func expandValue(
	value string,
	all *Vars,
	opts ResolutionOptions,
	stack []string,
) (string, error) {
	return expandString(value, func(name string) (string, error) {
		if idx := slices.Index(stack, name); idx >= 0 {
			cycle := append(slices.Clone(stack[idx:]), name)

			return "", &CircularReferenceError{Cycle: cycle}
		}

		definition, ok := all.Get(name)
		if !ok {
			switch opts.UndefinedVariables {
			case UndefinedError:
				return "", &UndefinedVariableError{Variable: name}

			case UndefinedLeaveUnexpanded:
				return "${" + name + "}", nil

			default:
				return "", nil
			}
		}

		return expandValue(definition, all, opts, append(stack, name))
	})
}

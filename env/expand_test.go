package env

import (
	"errors"
	"slices"
	"testing"
)

func TestExpandAllSimple(t *testing.T) {
	merged := NewVars()
	merged.Set("HOST", "localhost")
	merged.Set("PORT", "8080")
	merged.Set("URL", "http://${HOST}:${PORT}/")

	resolved, err := expandAll(merged, ResolutionOptions{})
	if err != nil {
		t.Fatalf("expandAll failed: %v", err)
	}

	if got := resolved.GetOr("URL", ""); got != "http://localhost:8080/" {
		t.Errorf("Expected expanded URL, got %q", got)
	}
}

func TestExpandAllTransitive(t *testing.T) {
	merged := NewVars()
	merged.Set("A", "a")
	merged.Set("B", "${A}b")
	merged.Set("C", "${B}c")

	resolved, err := expandAll(merged, ResolutionOptions{})
	if err != nil {
		t.Fatalf("expandAll failed: %v", err)
	}

	if got := resolved.GetOr("C", ""); got != "abc" {
		t.Errorf("Expected C to be %q, got %q", "abc", got)
	}
}

func TestExpandAllUndefinedBehavior(t *testing.T) {
	tests := map[string]struct {
		opts ResolutionOptions
		want string
	}{
		"empty string": {
			ResolutionOptions{UndefinedVariables: UndefinedEmptyString},
			"before-after",
		},
		"leave unexpanded": {
			ResolutionOptions{UndefinedVariables: UndefinedLeaveUnexpanded},
			"before-${MISSING}-after",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			merged := NewVars()
			merged.Set("VALUE", "before-${MISSING}-after")

			resolved, err := expandAll(merged, tt.opts)
			if err != nil {
				t.Fatalf("expandAll failed: %v", err)
			}

			if got := resolved.GetOr("VALUE", ""); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExpandAllUndefinedError(t *testing.T) {
	merged := NewVars()
	merged.Set("VALUE", "${MISSING}")

	_, err := expandAll(merged, ResolutionOptions{
		UndefinedVariables: UndefinedError,
	})

	var undefErr *UndefinedVariableError
	if !errors.As(err, &undefErr) {
		t.Fatalf("Expected UndefinedVariableError, got %v", err)
	}

	if undefErr.Variable != "MISSING" {
		t.Errorf("Expected variable %q, got %q", "MISSING", undefErr.Variable)
	}
}

func TestExpandAllCycle(t *testing.T) {
	merged := NewVars()
	merged.Set("A", "${B}")
	merged.Set("B", "${A}")

	_, err := expandAll(merged, ResolutionOptions{})

	var cycleErr *CircularReferenceError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("Expected CircularReferenceError, got %v", err)
	}

	// A cycle of length k is reported with k+1 names, starting and
	// ending on the repeated one.
	if len(cycleErr.Cycle) != 3 {
		t.Fatalf("Expected cycle of 3 names, got %v", cycleErr.Cycle)
	}

	if cycleErr.Cycle[0] != cycleErr.Cycle[len(cycleErr.Cycle)-1] {
		t.Errorf("Expected cycle to start and end on the same name, got %v",
			cycleErr.Cycle)
	}
}

func TestExpandAllSelfCycle(t *testing.T) {
	merged := NewVars()
	merged.Set("A", "${A}")

	_, err := expandAll(merged, ResolutionOptions{})

	var cycleErr *CircularReferenceError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("Expected CircularReferenceError, got %v", err)
	}

	if !slices.Equal(cycleErr.Cycle, []string{"A", "A"}) {
		t.Errorf("Expected cycle [A A], got %v", cycleErr.Cycle)
	}
}

func TestExpandAllFreshStackPerKey(t *testing.T) {
	// Two keys referencing the same chain must not trip cycle detection
	// across top-level expansions.
	merged := NewVars()
	merged.Set("BASE", "x")
	merged.Set("ONE", "${BASE}")
	merged.Set("TWO", "${BASE}${ONE}")

	resolved, err := expandAll(merged, ResolutionOptions{})
	if err != nil {
		t.Fatalf("expandAll failed: %v", err)
	}

	if got := resolved.GetOr("TWO", ""); got != "xx" {
		t.Errorf("Expected TWO to be %q, got %q", "xx", got)
	}
}

func TestExpandAllPreservesInput(t *testing.T) {
	merged := NewVars()
	merged.Set("A", "a")
	merged.Set("B", "${A}")

	_, err := expandAll(merged, ResolutionOptions{})
	if err != nil {
		t.Fatalf("expandAll failed: %v", err)
	}

	if got := merged.GetOr("B", ""); got != "${A}" {
		t.Errorf("Expected input mapping untouched, got B=%q", got)
	}
}

func TestExpandStringUnterminated(t *testing.T) {
	got, err := expandString("pre ${OPEN never closes",
		func(string) (string, error) { return "", nil })
	if err != nil {
		t.Fatalf("expandString failed: %v", err)
	}

	if got != "pre ${OPEN never closes" {
		t.Errorf("Expected unterminated reference kept verbatim, got %q", got)
	}
}

func TestExpandStringNoRescan(t *testing.T) {
	// Replacement text containing ${...} must not be expanded again.
	got, err := expandString("${A}", func(string) (string, error) {
		return "${never}", nil
	})
	if err != nil {
		t.Fatalf("expandString failed: %v", err)
	}

	if got != "${never}" {
		t.Errorf("Expected replacement kept literally, got %q", got)
	}
}

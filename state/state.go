// Package state persists the small per-project runtime state kept under
// the project data directory: which environment is currently active and
// when it was entered.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ardnew/stand/pkg"
)

// FileName is the state file inside the project data directory.
const FileName = "state.json"

// State is the persisted runtime state. The zero value means no
// environment is active.
type State struct {
	// CurrentEnvironment is the active environment name, or empty.
	CurrentEnvironment string `json:"current_environment,omitempty"`

	// EnteredAt records when the active environment was entered.
	EnteredAt time.Time `json:"entered_at,omitzero"`
}

// Active reports whether an environment is currently active.
func (s *State) Active() bool { return s.CurrentEnvironment != "" }

// Path returns the state file path for the project at root, creating the
// data directory if needed.
func Path(root string) (string, error) {
	dir, err := pkg.DataDir(root)
	if err != nil {
		return "", fmt.Errorf("state directory: %w", err)
	}

	return filepath.Join(dir, FileName), nil
}

// Load reads the state for the project at root. A missing file is not an
// error; it loads as the zero state.
func Load(root string) (*State, error) {
	path, err := Path(root)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &State{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	var s State

	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode state %q: %w", path, err)
	}

	return &s, nil
}

// Save writes the state for the project at root with owner-only
// permissions.
func Save(root string, s *State) error {
	path, err := Path(root)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write state: %w", err)
	}

	return nil
}

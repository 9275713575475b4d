package pkg

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Prefix returns the identifier used to name per-user directories, derived
// from the executable's base name. Debugger binaries (dlv's __debug_bin*)
// and dot-prefixed names resolve to [Name] and the undotted name so paths
// stay stable across build modes.
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))
		id = strings.TrimLeft(id, ".")

		if strings.HasPrefix(id, "__debug_bin") || id == "" {
			return Name
		}

		return id
	},
)

// FindProjectRoot walks upward from dir looking for a directory containing
// a stand configuration document ([ConfigFileName] or the legacy
// [LegacyConfigFileName]). It returns [ErrNoProject] wrapped with the
// starting directory when the filesystem root is reached without a match.
func FindProjectRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", ErrNoProject.Wrap(err)
	}

	for {
		for _, name := range []string{ConfigFileName, LegacyConfigFileName} {
			info, err := os.Stat(filepath.Join(abs, name))
			if err == nil && !info.IsDir() {
				return abs, nil
			}
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrNoProject.Wrapf("searched from %q", dir)
		}

		abs = parent
	}
}

// ConfigFilePath returns the path of the configuration document inside the
// given project root, preferring [ConfigFileName] over the legacy layout.
func ConfigFilePath(root string) string {
	path := filepath.Join(root, ConfigFileName)

	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		return path
	}

	legacy := filepath.Join(root, LegacyConfigFileName)

	info, err = os.Stat(legacy)
	if err == nil && !info.IsDir() {
		return legacy
	}

	return path
}

// DataDir returns the per-project data directory used for state and key
// material, creating it if necessary.
func DataDir(root string) (string, error) {
	dir := filepath.Join(root, ConfigDirName)

	err := os.MkdirAll(dir, 0o700)
	if err != nil {
		return "", err
	}

	return dir, nil
}

package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()

	err := os.WriteFile(filepath.Join(root, ConfigFileName), nil, 0o644)
	if err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("Failed to create nested directories: %v", err)
	}

	found, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot failed: %v", err)
	}

	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatalf("EvalSymlinks failed: %v", err)
	}

	foundResolved, err := filepath.EvalSymlinks(found)
	if err != nil {
		t.Fatalf("EvalSymlinks failed: %v", err)
	}

	if foundResolved != resolved {
		t.Errorf("Expected root %q, got %q", resolved, foundResolved)
	}
}

func TestFindProjectRootLegacy(t *testing.T) {
	root := t.TempDir()

	err := os.WriteFile(filepath.Join(root, LegacyConfigFileName), nil, 0o644)
	if err != nil {
		t.Fatalf("Failed to create legacy config file: %v", err)
	}

	if _, err := FindProjectRoot(root); err != nil {
		t.Errorf("Expected legacy layout to be found, got %v", err)
	}
}

func TestFindProjectRootMissing(t *testing.T) {
	_, err := FindProjectRoot(t.TempDir())
	if !errors.Is(err, ErrNoProject) {
		t.Errorf("Expected ErrNoProject, got %v", err)
	}
}

func TestConfigFilePathPrefersTOML(t *testing.T) {
	root := t.TempDir()

	for _, name := range []string{ConfigFileName, LegacyConfigFileName} {
		err := os.WriteFile(filepath.Join(root, name), nil, 0o644)
		if err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}

	if got := ConfigFilePath(root); got != filepath.Join(root, ConfigFileName) {
		t.Errorf("Expected TOML document to be preferred, got %q", got)
	}
}

func TestConfigFilePathLegacyFallback(t *testing.T) {
	root := t.TempDir()

	err := os.WriteFile(filepath.Join(root, LegacyConfigFileName), nil, 0o644)
	if err != nil {
		t.Fatalf("Failed to create legacy config file: %v", err)
	}

	want := filepath.Join(root, LegacyConfigFileName)
	if got := ConfigFilePath(root); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestDataDirCreates(t *testing.T) {
	root := t.TempDir()

	dir, err := DataDir(root)
	if err != nil {
		t.Fatalf("DataDir failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}

	if !info.IsDir() {
		t.Errorf("Expected %q to be a directory", dir)
	}
}

package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ardnew/stand/pkg"
)

func TestLoadMissingIsZero(t *testing.T) {
	st, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if st.Active() {
		t.Error("Expected zero state to be inactive")
	}

	if st.CurrentEnvironment != "" {
		t.Errorf("Expected no current environment, got %q",
			st.CurrentEnvironment)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()

	saved := &State{
		CurrentEnvironment: "prod",
		EnteredAt:          time.Now().Truncate(time.Second),
	}

	if err := Save(root, saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.CurrentEnvironment != "prod" {
		t.Errorf("Expected current environment %q, got %q",
			"prod", loaded.CurrentEnvironment)
	}

	if !loaded.EnteredAt.Equal(saved.EnteredAt) {
		t.Errorf("Expected entered at %v, got %v",
			saved.EnteredAt, loaded.EnteredAt)
	}

	if !loaded.Active() {
		t.Error("Expected loaded state to be active")
	}
}

func TestSavePermissions(t *testing.T) {
	root := t.TempDir()

	if err := Save(root, &State{CurrentEnvironment: "dev"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	path := filepath.Join(root, pkg.ConfigDirName, FileName)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}

	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("Expected state file mode 0600, got %o", perm)
	}
}

func TestLoadCorruptState(t *testing.T) {
	root := t.TempDir()

	dir := filepath.Join(root, pkg.ConfigDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	err := os.WriteFile(filepath.Join(dir, FileName), []byte("{"), 0o600)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(root); err == nil {
		t.Error("Expected corrupt state to fail loading")
	}
}

package crypto

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"filippo.io/age"
)

// IdentityFileName is the private key file kept inside the project data
// directory. It must never be committed; only the public key lives in the
// configuration document.
const IdentityFileName = "keys.txt"

// ErrNoIdentity reports a missing identity file.
var ErrNoIdentity = errors.New("no identity file")

// GenerateIdentity creates a fresh X25519 key pair.
func GenerateIdentity() (*age.X25519Identity, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generate identity: %w", err)
	}

	return identity, nil
}

// ParseRecipient parses an age public key string.
func ParseRecipient(s string) (*age.X25519Recipient, error) {
	recipient, err := age.ParseX25519Recipient(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	return recipient, nil
}

// IdentityPath returns the identity file path inside the project data
// directory dataDir.
func IdentityPath(dataDir string) string {
	return filepath.Join(dataDir, IdentityFileName)
}

// LoadIdentity reads the identity file at path. Blank lines and
// #-comments (the layout written by [SaveIdentity] and the age tooling)
// are skipped; the first remaining line is the key.
func LoadIdentity(path string) (*age.X25519Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %q", ErrNoIdentity, path)
		}

		return nil, fmt.Errorf("read identity file: %w", err)
	}

	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		identity, err := age.ParseX25519Identity(line)
		if err != nil {
			return nil, fmt.Errorf("parse identity file %q: %w", path, err)
		}

		return identity, nil
	}

	return nil, fmt.Errorf("%w: %q contains no key", ErrNoIdentity, path)
}

// SaveIdentity writes identity to path with owner-only permissions, in
// the same commented layout age-keygen produces.
func SaveIdentity(path string, identity *age.X25519Identity) error {
	content := fmt.Sprintf(
		"# created: %s\n# public key: %s\n%s\n",
		time.Now().Format(time.RFC3339),
		identity.Recipient(),
		identity,
	)

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write identity file: %w", err)
	}

	return nil
}

package crypto

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	identity, err := GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity failed: %v", err)
	}

	tests := []string{
		"secret",
		"",
		"multi\nline\nsecret",
		"unicode: héllo wörld",
	}

	for _, plaintext := range tests {
		encrypted, err := Encrypt(plaintext, identity.Recipient())
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		if !IsEncrypted(encrypted) {
			t.Errorf("Expected marked ciphertext, got %q", encrypted)
		}

		decrypted, err := Decrypt(encrypted, identity)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}

		if decrypted != plaintext {
			t.Errorf("Expected %q, got %q", plaintext, decrypted)
		}
	}
}

func TestIsEncrypted(t *testing.T) {
	if IsEncrypted("plain value") {
		t.Error("Expected plain value to not be marked encrypted")
	}

	if !IsEncrypted(EncryptedPrefix + "abc") {
		t.Error("Expected marked value to be encrypted")
	}
}

func TestDecryptNotEncrypted(t *testing.T) {
	identity, err := GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity failed: %v", err)
	}

	_, err = Decrypt("plain value", identity)
	if !errors.Is(err, ErrNotEncrypted) {
		t.Errorf("Expected ErrNotEncrypted, got %v", err)
	}

	_, err = Decrypt(EncryptedPrefix, identity)
	if !errors.Is(err, ErrEmptyCiphertext) {
		t.Errorf("Expected ErrEmptyCiphertext, got %v", err)
	}
}

func TestDecryptWrongIdentity(t *testing.T) {
	identity, err := GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity failed: %v", err)
	}

	other, err := GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity failed: %v", err)
	}

	encrypted, err := Encrypt("secret", identity.Recipient())
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if _, err := Decrypt(encrypted, other); err == nil {
		t.Error("Expected decryption with wrong identity to fail")
	}
}

func TestIdentitySaveLoad(t *testing.T) {
	identity, err := GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity failed: %v", err)
	}

	path := IdentityPath(t.TempDir())

	if err := SaveIdentity(path, identity); err != nil {
		t.Fatalf("SaveIdentity failed: %v", err)
	}

	loaded, err := LoadIdentity(path)
	if err != nil {
		t.Fatalf("LoadIdentity failed: %v", err)
	}

	if loaded.String() != identity.String() {
		t.Error("Expected loaded identity to match saved identity")
	}
}

func TestLoadIdentityMissing(t *testing.T) {
	_, err := LoadIdentity(filepath.Join(t.TempDir(), "keys.txt"))
	if !errors.Is(err, ErrNoIdentity) {
		t.Errorf("Expected ErrNoIdentity, got %v", err)
	}
}

func TestParseRecipient(t *testing.T) {
	identity, err := GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity failed: %v", err)
	}

	recipient, err := ParseRecipient(" " + identity.Recipient().String() + "\n")
	if err != nil {
		t.Fatalf("ParseRecipient failed: %v", err)
	}

	if recipient.String() != identity.Recipient().String() {
		t.Error("Expected parsed recipient to match")
	}

	if _, err := ParseRecipient("not-a-key"); err == nil {
		t.Error("Expected invalid recipient to fail")
	}

	if !strings.HasPrefix(identity.Recipient().String(), "age1") {
		t.Errorf("Expected age1 public key, got %q", identity.Recipient())
	}
}

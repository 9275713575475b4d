// Package crypto encrypts and decrypts individual variable values with
// age X25519 keys.
//
// Ciphertext is stored inline in the configuration document as base64
// text behind the "encrypted:" prefix, so encrypted and plaintext values
// share one string representation and the document stays diffable.
package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"
)

// EncryptedPrefix marks a stored value as ciphertext.
const EncryptedPrefix = "encrypted:"

var (
	// ErrNotEncrypted reports a decrypt of a value without the
	// [EncryptedPrefix] marker.
	ErrNotEncrypted = errors.New("value is not encrypted")

	// ErrEmptyCiphertext reports a marker with nothing after it.
	ErrEmptyCiphertext = errors.New("encrypted value is empty")
)

// IsEncrypted reports whether value carries the ciphertext marker.
func IsEncrypted(value string) bool {
	return strings.HasPrefix(value, EncryptedPrefix)
}

// Encrypt encrypts plaintext to recipient and returns the marked,
// base64-encoded ciphertext ready to store in a document.
func Encrypt(plaintext string, recipient *age.X25519Recipient) (string, error) {
	var buf bytes.Buffer

	w, err := age.Encrypt(&buf, recipient)
	if err != nil {
		return "", fmt.Errorf("encrypt value: %w", err)
	}

	if _, err := io.WriteString(w, plaintext); err != nil {
		return "", fmt.Errorf("encrypt value: %w", err)
	}

	if err := w.Close(); err != nil {
		return "", fmt.Errorf("encrypt value: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())

	return EncryptedPrefix + encoded, nil
}

// Decrypt reverses [Encrypt] using the matching identity. The value must
// carry the ciphertext marker.
func Decrypt(value string, identity *age.X25519Identity) (string, error) {
	encoded, ok := strings.CutPrefix(value, EncryptedPrefix)
	if !ok {
		return "", ErrNotEncrypted
	}

	if encoded == "" {
		return "", ErrEmptyCiphertext
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode encrypted value: %w", err)
	}

	r, err := age.Decrypt(bytes.NewReader(ciphertext), identity)
	if err != nil {
		return "", fmt.Errorf("decrypt value: %w", err)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decrypt value: %w", err)
	}

	return string(plaintext), nil
}

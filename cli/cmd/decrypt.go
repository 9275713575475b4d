package cmd

import (
	"filippo.io/age"

	"github.com/ardnew/stand/crypto"
	"github.com/ardnew/stand/pkg"
)

// decrypter lazily loads the project identity the first time an encrypted
// value is actually seen, so commands over plaintext-only environments
// never touch the key file.
type decrypter struct {
	root     string
	identity *age.X25519Identity
	enabled  bool
}

// value returns v decrypted when decryption is enabled and v carries the
// ciphertext marker; otherwise v is returned unchanged.
func (d *decrypter) value(v string) (string, error) {
	if !d.enabled || !crypto.IsEncrypted(v) {
		return v, nil
	}

	if d.identity == nil {
		identity, err := loadIdentity(d.root)
		if err != nil {
			return "", err
		}

		d.identity = identity
	}

	return crypto.Decrypt(v, d.identity)
}

// loadIdentity reads the project's private key from its data directory.
func loadIdentity(root string) (*age.X25519Identity, error) {
	dataDir, err := pkg.DataDir(root)
	if err != nil {
		return nil, err
	}

	return crypto.LoadIdentity(crypto.IdentityPath(dataDir))
}

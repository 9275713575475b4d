package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ardnew/stand/config"
	"github.com/ardnew/stand/crypto"
	"github.com/ardnew/stand/pkg"
)

// Encrypt encrypts a value with the project public key and prints the
// marked ciphertext, ready to paste into the configuration document.
type Encrypt struct {
	Value string `arg:"" help:"Value to encrypt (reads stdin when omitted)" optional:""`
}

// Run executes the encrypt command.
func (c *Encrypt) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, err := projectRoot(ctx)
	if err != nil {
		return err
	}

	raw, err := config.LoadDocument(root)
	if err != nil {
		return err
	}

	if raw.Encryption == nil || raw.Encryption.PublicKey == "" {
		return pkg.ErrEncryptionDisabled.Wrapf("run keygen first")
	}

	recipient, err := crypto.ParseRecipient(raw.Encryption.PublicKey)
	if err != nil {
		return ErrEncrypt.Wrap(err)
	}

	value, err := readValue(c.Value)
	if err != nil {
		return err
	}

	encrypted, err := crypto.Encrypt(value, recipient)
	if err != nil {
		return ErrEncrypt.Wrap(err)
	}

	fmt.Fprintln(stdout(ctx), encrypted)

	return nil
}

// Decrypt decrypts a marked ciphertext with the project identity and
// prints the plaintext.
type Decrypt struct {
	Value string `arg:"" help:"Value to decrypt (reads stdin when omitted)" optional:""`
}

// Run executes the decrypt command.
func (c *Decrypt) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, err := projectRoot(ctx)
	if err != nil {
		return err
	}

	identity, err := loadIdentity(root)
	if err != nil {
		return ErrDecrypt.Wrap(err)
	}

	value, err := readValue(c.Value)
	if err != nil {
		return err
	}

	plaintext, err := crypto.Decrypt(value, identity)
	if err != nil {
		return ErrDecrypt.Wrap(err)
	}

	fmt.Fprintln(stdout(ctx), plaintext)

	return nil
}

// readValue returns the argument when given, otherwise the whole of stdin
// with one trailing newline trimmed.
func readValue(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", pkg.ErrReadInput.Wrap(err)
	}

	value := string(data)
	value = strings.TrimSuffix(value, "\n")
	value = strings.TrimSuffix(value, "\r")

	return value, nil
}

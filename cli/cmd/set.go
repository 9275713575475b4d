package cmd

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/ardnew/stand/config"
	"github.com/ardnew/stand/crypto"
	"github.com/ardnew/stand/env"
	"github.com/ardnew/stand/log"
	"github.com/ardnew/stand/pkg"
)

// Set writes a variable into the configuration document, either into one
// environment or into the shared common table.
type Set struct {
	Variable string `arg:"" help:"Variable name"`
	Value    string `arg:"" help:"Variable value"`

	Environment string `help:"Environment name (defaults to the active environment)" short:"E" xor:"target"`
	Common      bool   `help:"Set in the shared common table"                                  xor:"target"`
	Encrypt     bool   `help:"Encrypt the value with the project public key"         short:"e"`
}

// Run executes the set command.
func (s *Set) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, err := projectRoot(ctx)
	if err != nil {
		return err
	}

	// Edits apply to the document as written, before inheritance or
	// interpolation.
	raw, err := config.LoadDocument(root)
	if err != nil {
		return err
	}

	value := s.Value

	if s.Encrypt {
		if raw.Encryption == nil || raw.Encryption.PublicKey == "" {
			return pkg.ErrEncryptionDisabled.Wrapf("run keygen first")
		}

		recipient, err := crypto.ParseRecipient(raw.Encryption.PublicKey)
		if err != nil {
			return ErrEncrypt.Wrap(err)
		}

		value, err = crypto.Encrypt(value, recipient)
		if err != nil {
			return ErrEncrypt.Wrap(err)
		}
	}

	if s.Common {
		if raw.Common == nil {
			raw.Common = env.NewVars()
		}

		raw.Common.Set(s.Variable, value)
	} else {
		name, e, err := selectEnvironment(root, raw, s.Environment)
		if err != nil {
			return err
		}

		e.Variables.Set(s.Variable, value)

		log.DebugContext(ctx, "set variable",
			slog.String("environment", name),
			slog.String("variable", s.Variable),
		)
	}

	// Legacy YAML documents are rewritten in the TOML layout.
	confPath := filepath.Join(root, pkg.ConfigFileName)

	if err := config.WriteDocument(confPath, raw); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	return nil
}

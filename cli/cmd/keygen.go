package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/stand/config"
	"github.com/ardnew/stand/crypto"
	"github.com/ardnew/stand/log"
	"github.com/ardnew/stand/pkg"
)

// Keygen generates an age key pair for the project: the identity is
// written to the project data directory, the public key into the
// configuration document.
type Keygen struct {
	Force bool `help:"Replace an existing identity file" short:"f"`
}

// Run executes the keygen command.
func (k *Keygen) Run(ctx context.Context) (err error) {
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

	dataDir, err := pkg.DataDir(root)
	if err != nil {
		return err
	}

	keyPath := crypto.IdentityPath(dataDir)

	// Replacing the identity orphans every value encrypted to the old
	// key, so it is guarded separately from the document write.
	_, err = os.Stat(keyPath)
	if err == nil && !k.Force {
		return ErrWriteConfig.
			With(slog.String("file", keyPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	identity, err := crypto.GenerateIdentity()
	if err != nil {
		return err
	}

	if err := crypto.SaveIdentity(keyPath, identity); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", keyPath)).
			Wrap(err)
	}

	raw.Encryption = &config.Encryption{
		PublicKey: identity.Recipient().String(),
	}

	confPath := filepath.Join(root, pkg.ConfigFileName)

	if err := config.WriteDocument(confPath, raw); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(ctx, "generated project key pair",
		slog.String("identity", keyPath),
	)

	out := stdout(ctx)

	fmt.Fprintf(out, "public key: %s\n", identity.Recipient())
	fmt.Fprintf(out, "identity written to %s (keep it out of version control)\n", keyPath)

	return nil
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/stand/config"
	"github.com/ardnew/stand/crypto"
	"github.com/ardnew/stand/env"
	"github.com/ardnew/stand/log"
	"github.com/ardnew/stand/pkg"
)

// Init creates a new project configuration document in the working
// directory.
type Init struct {
	Force   bool `help:"Overwrite an existing configuration document" short:"f"`
	Encrypt bool `help:"Generate an encryption key pair for the project" short:"e"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	dir := workDirFrom(ctx)
	confPath := filepath.Join(dir, pkg.ConfigFileName)

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	cfg := defaultConfiguration()

	if i.Encrypt {
		identity, err := crypto.GenerateIdentity()
		if err != nil {
			return ErrWriteConfig.Wrap(err)
		}

		dataDir, err := pkg.DataDir(dir)
		if err != nil {
			return ErrWriteConfig.Wrap(err)
		}

		keyPath := crypto.IdentityPath(dataDir)

		if err := crypto.SaveIdentity(keyPath, identity); err != nil {
			return ErrWriteConfig.
				With(slog.String("file", keyPath)).
				Wrap(err)
		}

		cfg.Encryption = &config.Encryption{
			PublicKey: identity.Recipient().String(),
		}

		fmt.Fprintf(stdout(ctx), "public key: %s\n", identity.Recipient())
		fmt.Fprintf(stdout(ctx), "identity written to %s (keep it out of version control)\n", keyPath)
	}

	if err := config.WriteDocument(confPath, cfg); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration document",
		slog.String("path", confPath),
	)

	fmt.Fprintf(stdout(ctx), "created %s\n", confPath)

	return nil
}

// defaultConfiguration is the scaffold written by init: a development
// environment and a production environment that extends it.
func defaultConfiguration() *config.Configuration {
	rc := true

	dev := &config.Environment{
		Description: "Local development",
		Color:       "green",
		Variables:   env.NewVars(),
	}
	dev.Variables.Set("APP_ENV", "development")

	prod := &config.Environment{
		Description:          "Production",
		Extends:              "dev",
		Color:                "red",
		RequiresConfirmation: &rc,
		Variables:            env.NewVars(),
	}
	prod.Variables.Set("APP_ENV", "production")

	common := env.NewVars()
	common.Set("APP_NAME", "my-app")

	return &config.Configuration{
		Version:      "1",
		Common:       common,
		Environments: map[string]*config.Environment{"dev": dev, "prod": prod},
		Names:        []string{"dev", "prod"},
		Settings:     config.Settings{DefaultEnvironment: "dev"},
	}
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/stand/pkg"
)

// Get prints a single variable from a resolved environment.
type Get struct {
	Variable string `arg:"" help:"Variable name"`

	Environment string `help:"Environment name (defaults to the active environment)" short:"E"`
	Decrypt     bool   `help:"Decrypt the value if it is encrypted"                   short:"d"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, cfg, err := loadProject(ctx)
	if err != nil {
		return err
	}

	name, e, err := selectEnvironment(root, cfg, g.Environment)
	if err != nil {
		return err
	}

	value, ok := e.Variables.Get(g.Variable)
	if !ok {
		return pkg.ErrUnknownVariable.
			Wrapf("%q in environment %q", g.Variable, name)
	}

	dec := decrypter{root: root, enabled: g.Decrypt}

	value, err = dec.value(value)
	if err != nil {
		return ErrDecrypt.With(slog.String("variable", g.Variable)).Wrap(err)
	}

	fmt.Fprintln(stdout(ctx), value)

	return nil
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
)

// Env renders a resolved environment for shell consumption.
type Env struct {
	Name string `arg:"" help:"Environment name (defaults to the active environment)" optional:""`

	Format  string `default:"export"                enum:"export,dotenv" help:"Output format" short:"o"`
	Decrypt bool   `help:"Decrypt encrypted values" short:"d"`
}

// Run executes the env command.
func (c *Env) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, cfg, err := loadProject(ctx)
	if err != nil {
		return err
	}

	_, e, err := selectEnvironment(root, cfg, c.Name)
	if err != nil {
		return err
	}

	dec := decrypter{root: root, enabled: c.Decrypt}
	out := stdout(ctx)

	for key, value := range e.Variables.All() {
		value, err = dec.value(value)
		if err != nil {
			return ErrDecrypt.With(slog.String("variable", key)).Wrap(err)
		}

		if c.Format == "dotenv" {
			fmt.Fprintf(out, "%s=%s\n", key, dotenvQuote(value))
		} else {
			fmt.Fprintf(out, "export %s=%s\n", key, shellQuote(value))
		}
	}

	return nil
}

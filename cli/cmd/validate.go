package cmd

import (
	"context"
	"fmt"
)

// Validate checks the configuration document: structure, inheritance, and
// interpolation.
type Validate struct{}

// Run executes the validate command.
func (v *Validate) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	// A full load exercises every stage that could reject the document.
	_, cfg, err := loadProject(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout(ctx), "configuration valid (%d environments)\n",
		len(cfg.Names))

	return nil
}

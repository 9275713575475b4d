package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/stand/state"
)

// List prints every declared environment in document order.
type List struct{}

// Run executes the list command.
func (l *List) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, cfg, err := loadProject(ctx)
	if err != nil {
		return err
	}

	st, err := state.Load(root)
	if err != nil {
		return err
	}

	width := 0
	for _, name := range cfg.Names {
		width = max(width, len(name))
	}

	out := stdout(ctx)

	for _, name := range cfg.Names {
		e := cfg.Environments[name]

		marker := " "
		if name == st.CurrentEnvironment {
			marker = "*"
		}

		var notes string

		if name == cfg.Settings.DefaultEnvironment {
			notes += " (default)"
		}

		if e.RequiresConfirmation != nil && *e.RequiresConfirmation {
			notes += " (confirm)"
		}

		fmt.Fprintf(out, "%s %-*s  %s%s\n",
			marker,
			width, styleFor(e.Color).Render(name),
			e.Description,
			notes,
		)
	}

	return nil
}

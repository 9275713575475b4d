package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ardnew/stand/state"
)

// Current shows or changes the active environment recorded in project
// state.
type Current struct {
	Name string `arg:"" help:"Environment to activate" optional:""`

	Clear bool `help:"Deactivate the current environment"         short:"c"`
	Yes   bool `help:"Confirm activating a protected environment" short:"y"`
}

// Run executes the current command.
func (c *Current) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, cfg, err := loadProject(ctx)
	if err != nil {
		return err
	}

	out := stdout(ctx)

	if c.Clear {
		if err := state.Save(root, &state.State{}); err != nil {
			return ErrSaveState.Wrap(err)
		}

		fmt.Fprintln(out, "cleared active environment")

		return nil
	}

	if c.Name == "" {
		st, err := state.Load(root)
		if err != nil {
			return err
		}

		switch {
		case st.Active():
			e := cfg.Environments[st.CurrentEnvironment]

			label := st.CurrentEnvironment
			if e != nil {
				label = styleFor(e.Color).Render(label)
			}

			fmt.Fprintln(out, label)

		case cfg.Settings.DefaultEnvironment != "":
			fmt.Fprintf(out, "no active environment (default: %s)\n",
				cfg.Settings.DefaultEnvironment)

		default:
			fmt.Fprintln(out, "no active environment")
		}

		return nil
	}

	e, ok := cfg.Environment(c.Name)
	if !ok {
		return unknownEnvironment(cfg, c.Name)
	}

	if e.RequiresConfirmation != nil && *e.RequiresConfirmation && !c.Yes {
		return ErrConfirmation.With(slog.String("environment", c.Name))
	}

	st := &state.State{
		CurrentEnvironment: c.Name,
		EnteredAt:          time.Now(),
	}

	if err := state.Save(root, st); err != nil {
		return ErrSaveState.Wrap(err)
	}

	fmt.Fprintf(out, "switched to %s\n", styleFor(e.Color).Render(c.Name))

	return nil
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/stand/config"
)

// Show prints an environment's resolved variables together with where
// each one came from.
type Show struct {
	Name    string `arg:"" help:"Environment name (defaults to the active environment)" optional:""`
	Values  bool   `help:"Include variable values in text output"                       short:"v"`
	Decrypt bool   `help:"Decrypt encrypted values"                                     short:"d"`
	Format  string `default:"text"                                                      enum:"text,json,yaml,dotenv" help:"Output format" short:"o"`
}

// Run executes the show command.
func (s *Show) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, cfg, err := loadProject(ctx)
	if err != nil {
		return err
	}

	name, e, err := selectEnvironment(root, cfg, s.Name)
	if err != nil {
		return err
	}

	// The raw document distinguishes an environment's own declarations
	// from what inheritance folded in.
	raw, err := config.LoadDocument(root)
	if err != nil {
		return err
	}

	dec := decrypter{root: root, enabled: s.Decrypt}

	values := make(map[string]string, e.Variables.Len())

	for key, value := range e.Variables.All() {
		values[key], err = dec.value(value)
		if err != nil {
			return ErrDecrypt.With(slog.String("variable", key)).Wrap(err)
		}
	}

	out := stdout(ctx)

	switch s.Format {
	case "json":
		return writeJSON(out, e.Variables.Keys(), values)

	case "yaml":
		return writeYAML(out, e.Variables.Keys(), values)

	case "dotenv":
		for _, key := range e.Variables.Keys() {
			fmt.Fprintf(out, "%s=%s\n", key, dotenvQuote(values[key]))
		}

		return nil
	}

	s.writeText(out, name, e, raw, values)

	return nil
}

func (s *Show) writeText(
	out io.Writer,
	name string,
	e *config.Environment,
	raw *config.Configuration,
	values map[string]string,
) {
	fmt.Fprintf(out, "%s: %s\n", styleFor(e.Color).Render(name), e.Description)

	if e.Extends != "" {
		fmt.Fprintf(out, "extends: %s\n", e.Extends)
	}

	if e.RequiresConfirmation != nil && *e.RequiresConfirmation {
		fmt.Fprintln(out, "requires confirmation")
	}

	width := 0
	for _, key := range e.Variables.Keys() {
		width = max(width, len(key))
	}

	for _, key := range e.Variables.Keys() {
		if s.Values {
			fmt.Fprintf(out, "  %-*s = %q [%s]\n",
				width, key, values[key], provenance(raw, name, key))
		} else {
			fmt.Fprintf(out, "  %-*s  [%s]\n",
				width, key, provenance(raw, name, key))
		}
	}
}

// provenance reports where an environment's variable was declared: in the
// environment itself, in a named ancestor, or in the common table.
func provenance(raw *config.Configuration, envName, key string) string {
	for cur := envName; cur != ""; {
		e, ok := raw.Environments[cur]
		if !ok {
			break
		}

		if e.Variables.Has(key) {
			if cur == envName {
				return "local"
			}

			return "inherited from " + cur
		}

		cur = e.Extends
	}

	if raw.Common != nil && raw.Common.Has(key) {
		return "common"
	}

	return "local"
}

// writeJSON renders the variables as a JSON object in declaration order.
// The generic encoder sorts map keys, so the object is assembled by hand
// from individually encoded strings.
func writeJSON(out io.Writer, keys []string, values map[string]string) error {
	var sb strings.Builder

	sb.WriteString("{\n")

	for i, key := range keys {
		k, err := json.Marshal(key)
		if err != nil {
			return ErrRenderOutput.Wrap(err)
		}

		v, err := json.Marshal(values[key])
		if err != nil {
			return ErrRenderOutput.Wrap(err)
		}

		if i > 0 {
			sb.WriteString(",\n")
		}

		fmt.Fprintf(&sb, "  %s: %s", k, v)
	}

	sb.WriteString("\n}\n")

	_, err := io.WriteString(out, sb.String())

	return err
}

func writeYAML(out io.Writer, keys []string, values map[string]string) error {
	doc := make(yaml.MapSlice, 0, len(keys))

	for _, key := range keys {
		doc = append(doc, yaml.MapItem{Key: key, Value: values[key]})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return ErrRenderOutput.Wrap(err)
	}

	_, err = out.Write(data)

	return err
}

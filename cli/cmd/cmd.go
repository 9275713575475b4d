package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/stand/config"
	"github.com/ardnew/stand/pkg"
	"github.com/ardnew/stand/state"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type workDirKey struct{}

// WithWorkDir returns a new context.Context recording the directory
// commands treat as their working directory. Empty means the process
// working directory.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

func workDirFrom(ctx context.Context) string {
	dir, ok := ctx.Value(workDirKey{}).(string)
	if !ok || dir == "" {
		return "."
	}

	return dir
}

type stdoutKey struct{}

// WithStdout returns a new context.Context redirecting command output to w.
func WithStdout(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

// stdout returns the writer command output goes to.
func stdout(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok && w != nil {
		return w
	}

	ktx := kongContextFrom(ctx)
	if ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// projectRoot locates the project containing the working directory.
func projectRoot(ctx context.Context) (string, error) {
	return pkg.FindProjectRoot(workDirFrom(ctx))
}

// loadProject locates the project and loads its fully resolved
// configuration.
func loadProject(ctx context.Context) (string, *config.Configuration, error) {
	root, err := projectRoot(ctx)
	if err != nil {
		return "", nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return "", nil, pkg.ErrLoadConfig.Wrap(err)
	}

	return root, cfg, nil
}

// selectEnvironment returns the environment to operate on: the explicit
// name when given, otherwise the active environment from project state,
// otherwise the configured default.
func selectEnvironment(
	root string,
	cfg *config.Configuration,
	name string,
) (string, *config.Environment, error) {
	if name == "" {
		st, err := state.Load(root)
		if err != nil {
			return "", nil, err
		}

		name = st.CurrentEnvironment
	}

	if name == "" {
		name = cfg.Settings.DefaultEnvironment
	}

	if name == "" {
		return "", nil, pkg.ErrUnknownEnvironment.
			Wrapf("no environment given, none active, no default configured")
	}

	e, ok := cfg.Environment(name)
	if !ok {
		return "", nil, unknownEnvironment(cfg, name)
	}

	return name, e, nil
}

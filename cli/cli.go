package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/stand/cli/cmd"
	"github.com/ardnew/stand/pkg"
)

// CLI is the top-level command-line interface for stand.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Chdir string `help:"Run as if started in DIR" placeholder:"DIR" short:"C" type:"existingdir"`

	Init     cmd.Init     `cmd:"" help:"Create a project configuration document"`
	List     cmd.List     `cmd:"" help:"List declared environments"`
	Show     cmd.Show     `cmd:"" help:"Show an environment's resolved variables"`
	Get      cmd.Get      `cmd:"" help:"Print one variable from an environment"`
	Set      cmd.Set      `cmd:"" help:"Set a variable in the configuration document"`
	Env      cmd.Env      `cmd:"" help:"Render an environment for shell consumption"`
	Validate cmd.Validate `cmd:"" help:"Validate the configuration document"`
	Current  cmd.Current  `cmd:"" help:"Show or change the active environment"`
	Keygen   cmd.Keygen   `cmd:"" help:"Generate an age key pair for value encryption"`
	Encrypt  cmd.Encrypt  `cmd:"" help:"Encrypt a value with the project public key"`
	Decrypt  cmd.Decrypt  `cmd:"" help:"Decrypt a value with the project identity"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`
}

// Run executes the stand CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those
	// flags during normal parsing, but this early scan also catches boolean
	// flags like --log-caller.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Vars{"version": pkg.Name + " " + pkg.Version}.
			CloneWith(cli.Pprof.vars()),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithWorkDir(ctx, cli.Chdir)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}

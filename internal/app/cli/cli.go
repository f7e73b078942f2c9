//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"consolelog/internal/app/generator"
	"consolelog/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli represents the command-line interface for the application
type cli struct {
	args      []string
	out       io.Writer
	errOut    io.Writer
	runner    Runner
	generator generator.Generator
	log       logger.Logger
}

// NewCLI creates a new cli instance reading os.Args
func NewCLI(runner Runner, generator generator.Generator, log logger.Logger) CLI {
	return &cli{
		args:      os.Args[1:],
		out:       os.Stdout,
		errOut:    os.Stderr,
		runner:    runner,
		generator: generator,
		log:       log,
	}
}

// Execute parses the arguments, runs the selected command and returns the exit code
func (c *cli) Execute() (int, error) {
	opts, err := Parse(c.args)
	if err != nil {
		c.log.Debug().Err(err).Msg("Failed to parse arguments")
		fmt.Fprintf(c.errOut, "%s %v\n", errorLabel.Render(" Error "), err)
		fmt.Fprintf(c.errOut, "Use '%s' for more information.\n", commandName.Render("consolelog help"))

		return 1, err
	}

	switch opts.Type {
	case CommandHelp:
		return c.handleHelp()
	case CommandVersion:
		return c.handleVersion()
	case CommandInit:
		return c.handleInit(opts)
	default:
		return c.handleRun(opts)
	}
}

// handleRun opens the console until the user quits or a signal arrives
func (c *cli) handleRun(opts *Options) (int, error) {
	c.log.Debug().Msgf("Running (no-ui: %t, verbose: %t, watch: '%s')", opts.NoUI, opts.Verbose, opts.WatchDir)

	if err := c.runner.Run(context.Background(), opts); err != nil {
		c.log.Error().Err(err).Msg("Run failed")
		fmt.Fprintf(c.errOut, "%s %v\n", errorLabel.Render(" Error "), err)

		return 1, err
	}

	return 0, nil
}

// handleInit generates consolelog.yaml
func (c *cli) handleInit(opts *Options) (int, error) {
	genOpts := generator.DefaultOptions()
	genOpts.WatchDir = opts.WatchDir

	if err := c.generator.Generate(genOpts, opts.Force, opts.DryRun); err != nil {
		c.log.Error().Err(err).Msg("Failed to generate config")
		fmt.Fprintf(c.errOut, "%s %v\n", errorLabel.Render(" Error "), err)

		return 1, err
	}

	if !opts.DryRun {
		fmt.Fprintf(c.out, "Generated %s\n", commandName.Render(genOpts.Path))
	}

	return 0, nil
}

// handleHelp displays help information
func (c *cli) handleHelp() (int, error) {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, RenderHelp())

	return 0, nil
}

// handleVersion displays version information
func (c *cli) handleVersion() (int, error) {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.out, RenderTitle())

	return 0, nil
}

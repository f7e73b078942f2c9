//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator
package generator

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"consolelog/internal/app/console"
	"consolelog/internal/app/errors"
	"consolelog/internal/config"
	"consolelog/internal/config/logger"
)

const header = "# consolelog configuration\n# Values left out fall back to built-in defaults; CONSOLELOG_* env vars override scalars.\n\n"

// Options contains the configuration for generating consolelog.yaml
type Options struct {
	Path     string
	WatchDir string
}

// DefaultOptions returns sensible defaults for generation
func DefaultOptions() Options {
	return Options{
		Path: config.ConfigFile,
	}
}

// Generator defines the interface for generating consolelog.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a new generator instance
func NewGenerator(log logger.Logger) Generator {
	return &generator{
		out: os.Stdout,
		log: log,
	}
}

// Generate writes the default configuration to opts.Path, or prints it when dryRun is set
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if opts.Path == "" {
		opts.Path = config.ConfigFile
	}

	if !dryRun && !force {
		if _, err := os.Stat(opts.Path); err == nil {
			return fmt.Errorf("%w: %s", errors.ErrFileExists, opts.Path)
		}
	}

	content, err := Render(opts)
	if err != nil {
		return err
	}

	if dryRun {
		_, err := g.out.Write(content)
		return err
	}

	if err := os.WriteFile(opts.Path, content, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	g.log.Info().Msgf("Generated %s", opts.Path)

	return nil
}

// Render encodes the default configuration, adding a watch section when opts.WatchDir is set
func Render(opts Options) ([]byte, error) {
	cfg := config.DefaultConfig()
	cfg.Console.Rules = console.RulesConfig(console.DefaultRules())

	if opts.WatchDir != "" {
		cfg.Watch = &config.Watch{
			Dir:      opts.WatchDir,
			Include:  []string{"**/*"},
			Ignore:   []string{".git/**"},
			Debounce: config.WatchDebounce,
		}
	}

	var buf bytes.Buffer

	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return buf.Bytes(), nil
}

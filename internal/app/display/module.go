package display

import (
	"os"

	"go.uber.org/fx"

	"consolelog/internal/config"
)

// Options selects how the surface is presented
type Options struct {
	Headless bool
}

// Module provides the display surface and the marshaller the terminal UI attaches to
var Module = fx.Options(
	fx.Provide(
		NewProgram,
		NewBufferFromConfig,
		NewSurface,
	),
)

// NewBufferFromConfig creates the line buffer sized by the console configuration
func NewBufferFromConfig(cfg *config.Config, program *Program) *Buffer {
	return NewBuffer(cfg.Console.Buffer, program)
}

// NewSurface returns the buffer itself for the terminal UI or a stdout writer when headless
func NewSurface(opts Options, buf *Buffer) Surface {
	if opts.Headless {
		return NewWriter(os.Stdout, buf)
	}

	return buf
}

package console

import (
	"go.uber.org/fx"

	"consolelog/internal/config"
)

// Module provides the console, its style table and the shared verbosity switch
var Module = fx.Options(
	fx.Provide(
		newStyleTable,
		newVerbosity,
		NewConsole,
	),
)

func newStyleTable(cfg *config.Config) (*StyleTable, error) {
	return NewStyleTableFromConfig(&cfg.Console)
}

func newVerbosity(cfg *config.Config) *Verbosity {
	return NewVerbosity(cfg.Console.Verbose)
}

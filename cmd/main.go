package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"consolelog/internal/app"
	"consolelog/internal/app/display"
	"consolelog/internal/config"
	"consolelog/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	noUI := hasNoUIFlag(os.Args[1:])
	application := createApp(cfg, noUI)
	application.Run()
}

// hasNoUIFlag checks if --no-ui flag is present in args
func hasNoUIFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--no-ui" {
			return true
		}
	}

	return false
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, noUI bool) *fx.App {
	// The TUI owns stdout; headless mode prints the console there and logs to stderr
	var logOutput io.Writer = io.Discard
	if noUI {
		logOutput = os.Stderr
	}

	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.StopTimeout(config.ShutdownTimeout),
		fx.Supply(
			cfg,
			logger.Output{Writer: logOutput},
			display.Options{Headless: noUI},
		),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}

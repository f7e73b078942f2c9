package wire

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"consolelog/internal/app/console"
	"consolelog/internal/app/display"
	"consolelog/internal/app/ui/panel"
	"consolelog/internal/config"
	"consolelog/internal/config/logger"
)

// UI runs the console panel until the user quits or ctx is cancelled
type UI func(ctx context.Context) error

// Module provides the UI factory
var Module = fx.Options(
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config    *config.Config
	Buffer    *display.Buffer
	Program   *display.Program
	Styles    *console.StyleTable
	Verbosity *console.Verbosity
	Logger    logger.Logger
}

// NewUI creates a factory that builds the panel program and routes console writes through it
func NewUI(params UIParams) UI {
	log := params.Logger.WithComponent("UI")

	return func(ctx context.Context) error {
		model := panel.NewModel(params.Buffer, params.Styles, params.Verbosity, params.Config.Console.SavePath, log)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Program.Attach(p.Send)
		defer params.Program.Detach()

		log.Debug().Msg("Console panel started")

		if _, err := p.Run(); err != nil {
			// Cancelling ctx kills the program; that is a normal shutdown
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return nil
			}

			return err
		}

		return nil
	}
}

//go:generate mockgen -source=run.go -destination=run_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"consolelog/internal/app/console"
	"consolelog/internal/app/display"
	"consolelog/internal/app/monitor"
	"consolelog/internal/app/phase"
	"consolelog/internal/app/status"
	"consolelog/internal/app/ui/wire"
	"consolelog/internal/app/watcher"
	"consolelog/internal/config"
	"consolelog/internal/config/logger"
)

// Runner opens the console, starts the producers and blocks until shutdown
type Runner interface {
	Run(ctx context.Context, opts *Options) error
}

// RunnerParams contains dependencies for creating a runner
type RunnerParams struct {
	fx.In

	Config      *config.Config
	Console     console.Console
	Verbosity   *console.Verbosity
	Broadcaster status.Broadcaster
	Watcher     watcher.Watcher
	Monitor     monitor.Monitor
	Phase       phase.Phase
	UI          wire.UI
	Logger      logger.Logger
}

type runner struct {
	cfg         *config.Config
	console     console.Console
	verbosity   *console.Verbosity
	broadcaster status.Broadcaster
	watcher     watcher.Watcher
	monitor     monitor.Monitor
	phase       phase.Phase
	ui          wire.UI
	log         logger.Logger
}

// NewRunner creates a new runner instance
func NewRunner(params RunnerParams) Runner {
	return &runner{
		cfg:         params.Config,
		console:     params.Console,
		verbosity:   params.Verbosity,
		broadcaster: params.Broadcaster,
		watcher:     params.Watcher,
		monitor:     params.Monitor,
		phase:       params.Phase,
		ui:          params.UI,
		log:         params.Logger.WithComponent("RUNNER"),
	}
}

// Run subscribes the console to the broadcaster, starts producers and waits for the UI or a signal
func (r *runner) Run(ctx context.Context, opts *Options) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Verbose {
		r.verbosity.Set(true)
	}

	handle := r.broadcaster.Subscribe(r.console.Listener(r.verbosity))
	defer r.broadcaster.Unsubscribe(handle)

	r.console.Header(fmt.Sprintf("%s v%s", config.AppName, config.Version))
	r.fire(ctx, phase.Start)

	if watch := r.watchConfig(opts); watch != nil {
		if err := r.watcher.Start(ctx, watch); err != nil {
			r.log.Error().Err(err).Msgf("Failed to watch '%s'", watch.Dir)
			r.console.Error("Failed to watch '%s': %v", watch.Dir, err)
			r.fire(ctx, phase.Stop)

			return err
		}

		defer r.watcher.Close()
	}

	r.monitor.Start(ctx)
	r.fire(ctx, phase.Ready)

	var err error

	if opts.NoUI {
		<-ctx.Done()
	} else {
		err = r.ui(ctx)
	}

	r.fire(context.Background(), phase.Stop)
	r.fire(context.Background(), phase.Done)

	if opts.SavePath != "" {
		r.drain()

		if saveErr := r.save(opts.SavePath); saveErr != nil && err == nil {
			err = saveErr
		}
	}

	return err
}

// watchConfig returns the configured watch section, overridden by the --watch flag
func (r *runner) watchConfig(opts *Options) *config.Watch {
	if opts.WatchDir == "" {
		return r.cfg.Watch
	}

	watch := &config.Watch{
		Include:  []string{"**/*"},
		Ignore:   []string{".git/**"},
		Debounce: config.WatchDebounce,
	}

	if r.cfg.Watch != nil {
		*watch = *r.cfg.Watch
	}

	watch.Dir = opts.WatchDir

	return watch
}

func (r *runner) save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		r.log.Error().Err(err).Msgf("Failed to create '%s'", path)
		return err
	}
	defer file.Close()

	if err := r.console.Save(file, display.FormatForPath(path)); err != nil {
		r.log.Error().Err(err).Msgf("Failed to save console to '%s'", path)
		return err
	}

	r.log.Info().Msgf("Saved console to %s", path)

	return nil
}

// drain lets the final phase statuses reach the console before it is saved
func (r *runner) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := r.broadcaster.Drain(ctx); err != nil {
		r.log.Warn().Err(err).Msg("Saving before all statuses were delivered")
	}
}

func (r *runner) fire(ctx context.Context, event string) {
	if err := r.phase.Fire(ctx, event); err != nil {
		r.log.Debug().Err(err).Msgf("Skipped phase event '%s'", event)
	}
}

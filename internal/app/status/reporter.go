package status

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"consolelog/internal/config"
	"consolelog/internal/config/logger"
)

const sentryFlushTimeout = 2 * time.Second

// Reporter records listener failures; it never returns them to the publisher
type Reporter interface {
	Report(h Handle, err error, s Status)
	Flush(ctx context.Context)
}

// NopReporter returns a reporter that discards failures
func NopReporter() Reporter {
	return nopReporter{}
}

type nopReporter struct{}

func (nopReporter) Report(Handle, error, Status) {}
func (nopReporter) Flush(context.Context)        {}

// logReporter writes listener failures to the application logger
type logReporter struct {
	log logger.Logger
}

// NewLogReporter creates a reporter backed by the application logger
func NewLogReporter(log logger.Logger) Reporter {
	return &logReporter{log: log}
}

func (r *logReporter) Report(h Handle, err error, s Status) {
	r.log.Warn().
		Err(err).
		Str("listener", h.String()).
		Str("category", s.Category.String()).
		Msgf("Status listener failed for '%s'", s.Message)
}

func (r *logReporter) Flush(context.Context) {}

// sentryReporter forwards failures to sentry in addition to the wrapped reporter
type sentryReporter struct {
	next Reporter
	hub  *sentry.Hub
}

// NewSentryReporter creates a reporter that captures listener failures as sentry exceptions
func NewSentryReporter(dsn string, next Reporter) (Reporter, error) {
	r, err := newSentryReporter(sentry.ClientOptions{
		Dsn:     dsn,
		Release: config.AppName + "@" + config.Version,
	}, next)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func newSentryReporter(opts sentry.ClientOptions, next Reporter) (*sentryReporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, err
	}

	if next == nil {
		next = NopReporter()
	}

	return &sentryReporter{
		next: next,
		hub:  sentry.NewHub(client, sentry.NewScope()),
	}, nil
}

// Report runs on listener goroutines, so each capture gets its own hub and scope
func (r *sentryReporter) Report(h Handle, err error, s Status) {
	r.next.Report(h, err, s)

	hub := r.hub.Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("listener", h.String())
		scope.SetTag("category", s.Category.String())
	})
	hub.CaptureException(err)
}

func (r *sentryReporter) Flush(ctx context.Context) {
	timeout := sentryFlushTimeout

	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	r.hub.Flush(timeout)
	r.next.Flush(ctx)
}

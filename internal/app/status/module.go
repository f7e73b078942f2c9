package status

import (
	"context"

	"go.uber.org/fx"

	"consolelog/internal/config"
	"consolelog/internal/config/logger"
)

// Module provides the status broadcaster and its diagnostics reporter
var Module = fx.Module("status",
	fx.Provide(
		NewReporter,
		NewBroadcaster,
	),
	fx.Invoke(registerLifecycle),
)

// NewReporter logs listener failures and also sends them to sentry when a DSN is configured
func NewReporter(cfg *config.Config, log logger.Logger) (Reporter, error) {
	base := NewLogReporter(log.WithComponent("STATUS"))

	if cfg.Diagnostics.DSN == "" {
		return base, nil
	}

	return NewSentryReporter(cfg.Diagnostics.DSN, base)
}

func registerLifecycle(lc fx.Lifecycle, b Broadcaster) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return b.Close(ctx)
		},
	})
}

package app

import (
	"go.uber.org/fx"

	"consolelog/internal/app/cli"
	"consolelog/internal/app/console"
	"consolelog/internal/app/display"
	"consolelog/internal/app/generator"
	"consolelog/internal/app/monitor"
	"consolelog/internal/app/phase"
	"consolelog/internal/app/status"
	"consolelog/internal/app/ui/wire"
	"consolelog/internal/app/watcher"
	"consolelog/internal/config/logger"
)

var Module = fx.Options(
	logger.Module,
	status.Module,
	display.Module,
	console.Module,
	watcher.Module,
	monitor.Module,
	phase.Module,
	generator.Module,
	wire.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)

package phase

import "go.uber.org/fx"

// Module provides the lifecycle phase tracker
var Module = fx.Options(
	fx.Provide(NewPhase),
)

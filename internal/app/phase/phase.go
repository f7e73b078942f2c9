package phase

import (
	"context"
	"fmt"
	"sync"

	"github.com/looplab/fsm"

	"consolelog/internal/app/status"
	"consolelog/internal/config"
	"consolelog/internal/config/logger"
)

// FSM states
const (
	Idle     = "idle"
	Starting = "starting"
	Running  = "running"
	Stopping = "stopping"
	Stopped  = "stopped"
)

// FSM events
const (
	Start = "start"
	Ready = "ready"
	Stop  = "stop"
	Done  = "done"
)

// FSM callbacks
const (
	OnStarting = "enter_starting"
	OnRunning  = "enter_running"
	OnStopping = "enter_stopping"
	OnStopped  = "enter_stopped"
)

// Phase tracks the application lifecycle and announces each transition as a status
type Phase interface {
	Current() string
	Fire(ctx context.Context, event string) error
}

type phase struct {
	mu  sync.Mutex
	fsm *fsm.FSM
}

// NewPhase creates a lifecycle tracker in the idle state
func NewPhase(broadcaster status.Broadcaster, log logger.Logger) Phase {
	return &phase{fsm: newPhaseFSM(broadcaster, log.WithComponent("PHASE"))}
}

// newPhaseFSM creates a state machine for the application lifecycle
func newPhaseFSM(broadcaster status.Broadcaster, log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: Start, Src: []string{Idle}, Dst: Starting},
			{Name: Ready, Src: []string{Starting}, Dst: Running},
			{Name: Stop, Src: []string{Starting, Running}, Dst: Stopping},
			{Name: Done, Src: []string{Stopping}, Dst: Stopped},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("STATE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
			OnStarting: func(ctx context.Context, e *fsm.Event) {
				broadcaster.Raise(fmt.Sprintf("Starting %s %s", config.AppName, config.Version), status.WithCategory(status.Subtle))
			},
			OnRunning: func(ctx context.Context, e *fsm.Event) {
				broadcaster.Raise(fmt.Sprintf("%s is running", config.AppName), status.WithCategory(status.Standout))
			},
			OnStopping: func(ctx context.Context, e *fsm.Event) {
				broadcaster.Raise("Shutting down", status.WithCategory(status.Warning))
			},
			OnStopped: func(ctx context.Context, e *fsm.Event) {
				broadcaster.Raise("Stopped", status.WithCategory(status.Subtle))
			},
		},
	)
}

// Current returns the current state
func (p *phase) Current() string {
	return p.fsm.Current()
}

// Fire triggers event, returning an fsm error when the transition is not allowed
func (p *phase) Fire(ctx context.Context, event string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.fsm.Event(ctx, event)
}

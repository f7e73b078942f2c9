package status

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"consolelog/internal/app/errors"
)

// Listener receives published statuses; a returned error or panic is isolated and reported
type Listener func(ctx context.Context, s Status) error

// Handle identifies a single registration
type Handle uuid.UUID

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Broadcaster fans a status out to every registered listener without blocking the publisher
type Broadcaster interface {
	Subscribe(l Listener) Handle
	Unsubscribe(h Handle)
	Publish(s Status)
	Raise(message string, opts ...Option)
	Len() int
	Drain(ctx context.Context) error
	Close(ctx context.Context) error
}

type registration struct {
	handle   Handle
	listener Listener
}

// broadcaster implements the Broadcaster interface with one goroutine per listener call
type broadcaster struct {
	mu        sync.RWMutex
	listeners []registration
	closed    bool
	pendingMu sync.Mutex
	pending   int
	idle      chan struct{} // closed when pending drops to zero
	ctx       context.Context
	cancel    context.CancelFunc
	reporter  Reporter
}

// NewBroadcaster creates a new Broadcaster reporting listener failures to reporter
func NewBroadcaster(reporter Reporter) Broadcaster {
	ctx, cancel := context.WithCancel(context.Background())

	if reporter == nil {
		reporter = NopReporter()
	}

	return &broadcaster{
		ctx:      ctx,
		cancel:   cancel,
		reporter: reporter,
	}
}

// Subscribe registers a listener; the same listener may be registered more than once
func (b *broadcaster) Subscribe(l Listener) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	h := Handle(uuid.New())
	b.listeners = append(b.listeners, registration{handle: h, listener: l})

	return h
}

// Unsubscribe removes a registration, no-op if it is already gone
func (b *broadcaster) Unsubscribe(h Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, r := range b.listeners {
		if r.handle == h {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Publish invokes every listener registered at call time, each on its own goroutine
func (b *broadcaster) Publish(s Status) {
	b.mu.RLock()

	if b.closed || len(b.listeners) == 0 {
		b.mu.RUnlock()
		return
	}

	snapshot := make([]registration, len(b.listeners))
	copy(snapshot, b.listeners)

	// Count before unlocking so Close cannot start waiting ahead of these calls
	b.begin(len(snapshot))

	b.mu.RUnlock()

	for _, r := range snapshot {
		go b.invoke(r, s)
	}
}

// Raise builds a status from message and options and publishes it
func (b *broadcaster) Raise(message string, opts ...Option) {
	b.Publish(New(message, opts...))
}

// Len returns the number of registrations
func (b *broadcaster) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.listeners)
}

// Drain waits until no listener call is in flight, publishing stays open
func (b *broadcaster) Drain(ctx context.Context) error {
	return b.wait(ctx)
}

// Close stops publishing and waits for in-flight listeners until ctx is done
func (b *broadcaster) Close(ctx context.Context) error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	defer b.cancel()

	if err := b.wait(ctx); err != nil {
		return err
	}

	b.reporter.Flush(ctx)

	return nil
}

func (b *broadcaster) begin(n int) {
	b.pendingMu.Lock()
	defer b.pendingMu.Unlock()

	if b.pending == 0 {
		b.idle = make(chan struct{})
	}

	b.pending += n
}

func (b *broadcaster) end() {
	b.pendingMu.Lock()
	defer b.pendingMu.Unlock()

	b.pending--

	if b.pending == 0 {
		close(b.idle)
	}
}

func (b *broadcaster) wait(ctx context.Context) error {
	b.pendingMu.Lock()

	if b.pending == 0 {
		b.pendingMu.Unlock()
		return nil
	}

	idle := b.idle
	b.pendingMu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// invoke runs one listener inside its own failure boundary
func (b *broadcaster) invoke(r registration, s Status) {
	defer b.end()

	defer func() {
		if rec := recover(); rec != nil {
			b.reporter.Report(r.handle, fmt.Errorf("%w: %v", errors.ErrListenerPanic, rec), s)
		}
	}()

	if err := r.listener(b.ctx, s); err != nil {
		b.reporter.Report(r.handle, err, s)
	}
}

// NoOp returns a broadcaster that drops everything
func NoOp() Broadcaster {
	return &noOpBroadcaster{}
}

// noOpBroadcaster implements Broadcaster with no-op methods for testing
type noOpBroadcaster struct{}

func (n *noOpBroadcaster) Subscribe(l Listener) Handle          { return Handle(uuid.Nil) }
func (n *noOpBroadcaster) Unsubscribe(h Handle)                 {}
func (n *noOpBroadcaster) Publish(s Status)                     {}
func (n *noOpBroadcaster) Raise(message string, opts ...Option) {}
func (n *noOpBroadcaster) Len() int                             { return 0 }
func (n *noOpBroadcaster) Drain(ctx context.Context) error      { return nil }
func (n *noOpBroadcaster) Close(ctx context.Context) error      { return nil }

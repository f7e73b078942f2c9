package watcher

import (
	"sort"
	"sync"
	"time"
)

// Batcher collects paths and hands them over as one sorted batch once no new path arrived for the quiet period
type Batcher struct {
	mu      sync.Mutex
	quiet   time.Duration
	deliver func(paths []string)
	pending map[string]struct{}
	timer   *time.Timer
	stopped bool
}

// NewBatcher creates a batcher delivering to fn; a zero quiet period delivers every path on its own
func NewBatcher(quiet time.Duration, fn func(paths []string)) *Batcher {
	return &Batcher{
		quiet:   quiet,
		deliver: fn,
		pending: make(map[string]struct{}),
	}
}

// Add records a path and restarts the quiet period
func (b *Batcher) Add(path string) {
	b.mu.Lock()

	if b.stopped {
		b.mu.Unlock()
		return
	}

	if b.quiet <= 0 {
		b.mu.Unlock()
		b.deliver([]string{path})

		return
	}

	b.pending[path] = struct{}{}

	if b.timer != nil {
		b.timer.Stop()
	}

	b.timer = time.AfterFunc(b.quiet, b.flush)

	b.mu.Unlock()
}

// Stop drops pending paths and rejects further ones
func (b *Batcher) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}

	clear(b.pending)
}

func (b *Batcher) flush() {
	b.mu.Lock()

	if b.stopped || len(b.pending) == 0 {
		b.mu.Unlock()
		return
	}

	paths := make([]string, 0, len(b.pending))
	for p := range b.pending {
		paths = append(paths, p)
	}

	clear(b.pending)
	b.timer = nil

	b.mu.Unlock()

	sort.Strings(paths)
	b.deliver(paths)
}

package display

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"consolelog/internal/app/errors"
)

// Buffer is an in-memory Surface holding the most recent lines for rendering
// TotalLines counts every line appended since the last Clear, including trimmed ones
type Buffer struct {
	mu       sync.RWMutex
	lines    []Line
	max      int
	total    int
	version  uint64
	scroll   bool
	marshall Marshaller
}

// NewBuffer creates a buffer retaining up to max lines; marshaller may be nil
func NewBuffer(max int, marshaller Marshaller) *Buffer {
	if max <= 0 {
		max = 1
	}

	return &Buffer{
		lines:    make([]Line, 0, max),
		max:      max,
		marshall: marshaller,
	}
}

// Append adds a line
func (b *Buffer) Append(text string, pair Pair) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = append(b.lines, Line{Text: text, Pair: pair})
	b.total++
	b.version++

	// Trim in batches so appends stay amortized O(1)
	if len(b.lines) >= 2*b.max {
		n := copy(b.lines, b.lines[len(b.lines)-b.max:])
		b.lines = b.lines[:n]
	}
}

// Clear removes every line and resets the line count
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = make([]Line, 0, b.max)
	b.total = 0
	b.version++
}

// TotalLines returns the number of lines appended since the last Clear
func (b *Buffer) TotalLines() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.total
}

// Lines returns a copy of the retained lines, oldest first
func (b *Buffer) Lines() []Line {
	b.mu.RLock()
	defer b.mu.RUnlock()

	start := 0
	if len(b.lines) > b.max {
		start = len(b.lines) - b.max
	}

	out := make([]Line, len(b.lines)-start)
	copy(out, b.lines[start:])

	return out
}

// Version changes every time the contents change
func (b *Buffer) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.version
}

// ScrollToEnd records a request to follow the newest line
func (b *Buffer) ScrollToEnd() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.scroll = true
}

// TakeScroll reports and clears a pending ScrollToEnd request
func (b *Buffer) TakeScroll() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	requested := b.scroll
	b.scroll = false

	return requested
}

// Persist writes the retained lines to w
func (b *Buffer) Persist(w io.Writer, format Format) error {
	if format != FormatPlain && format != FormatStyled {
		return fmt.Errorf("%w: %d", errors.ErrUnknownFormat, int(format))
	}

	bw := bufio.NewWriter(w)

	for _, line := range b.Lines() {
		if _, err := bw.WriteString(renderLine(line, format)); err != nil {
			return err
		}

		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// InvokeRequired reports whether calls must be redirected to the owning goroutine
func (b *Buffer) InvokeRequired() bool {
	if b.marshall == nil {
		return false
	}

	return b.marshall.InvokeRequired()
}

// Invoke runs fn on the owning goroutine and returns once it has run
func (b *Buffer) Invoke(fn func()) {
	if b.marshall == nil {
		fn()
		return
	}

	b.marshall.Invoke(fn)
}

func renderLine(line Line, format Format) string {
	if format == FormatStyled && line.Text != "" {
		return line.Pair.Style().Render(line.Text)
	}

	return line.Text
}

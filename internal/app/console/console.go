//go:generate mockgen -source=console.go -destination=console_mock.go -package=console
package console

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"consolelog/internal/app/display"
	"consolelog/internal/app/errors"
	"consolelog/internal/app/status"
	"consolelog/internal/config"
	"consolelog/internal/config/logger"
)

const timestampSeparator = " - "

// Console writes categorized, styled and timestamped lines to a display surface
type Console interface {
	Log(entry status.Status, verbose bool)
	Info(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
	Success(format string, args ...any)
	Standout(format string, args ...any)
	Subtle(format string, args ...any)
	Event(format string, args ...any)
	EventWarning(format string, args ...any)
	Raw(text string, spaceBefore, spaceAfter bool)
	Header(message string)
	FormatTimestamped(message string) string
	Clear()
	TotalLines() int
	Save(w io.Writer, format display.Format) error
	Styles() *StyleTable
	Listener(v *Verbosity) status.Listener
}

type console struct {
	mu            sync.Mutex
	surface       display.Surface
	styles        *StyleTable
	timeFormat    string
	headerSpacing bool
	now           func() time.Time
	log           logger.Logger
}

// NewConsole creates a console writing to surface with the given style table
func NewConsole(surface display.Surface, styles *StyleTable, cfg *config.Config, log logger.Logger) Console {
	timeFormat := cfg.Console.TimestampFormat
	if timeFormat == "" {
		timeFormat = config.TimestampFormat
	}

	return &console{
		surface:       surface,
		styles:        styles,
		timeFormat:    timeFormat,
		headerSpacing: cfg.Console.HeaderSpacing,
		now:           time.Now,
		log:           log.WithComponent("CONSOLE"),
	}
}

// Log dispatches an entry by category, unknown categories panic
func (c *console) Log(entry status.Status, verbose bool) {
	rule, ok := c.styles.Lookup(entry.Category)
	if !ok {
		panic(fmt.Errorf("%w: %s", errors.ErrUnknownCategory, entry.Category))
	}

	if rule.Verbose && !verbose {
		return
	}

	lines, ok := c.format(entry, rule)
	if !ok {
		return
	}

	c.append(lines)
}

func (c *console) format(entry status.Status, rule StyleEntry) (lines []display.Line, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Msgf("Failed to format '%s' entry: %v", entry.Category, r)

			lines, ok = nil, false
		}
	}()

	text := entry.Message
	if rule.Timestamp {
		text = c.FormatTimestamped(text)
	}

	lines = append(lines, display.Line{Text: text, Pair: rule.Pair})

	if entry.Category == status.Error && entry.Err != nil {
		detail := fmt.Sprintf("%+v", entry.Err)
		if rule.Timestamp {
			detail = c.FormatTimestamped(detail)
		}

		lines = append(lines, display.Line{Text: detail, Pair: rule.Pair})
	}

	return lines, true
}

// Info writes a timestamped line in the info style
func (c *console) Info(format string, args ...any) {
	c.styled(StyleInfo, format, args)
}

// Warning writes a timestamped line in the warning style
func (c *console) Warning(format string, args ...any) {
	c.styled(StyleWarning, format, args)
}

// Error writes a timestamped line in the error style
func (c *console) Error(format string, args ...any) {
	c.styled(StyleError, format, args)
}

// Success writes a timestamped line in the success style
func (c *console) Success(format string, args ...any) {
	c.styled(StyleSuccess, format, args)
}

// Standout writes a timestamped line in the standout style
func (c *console) Standout(format string, args ...any) {
	c.styled(StyleStandout, format, args)
}

// Subtle writes a timestamped line in the subtle style
func (c *console) Subtle(format string, args ...any) {
	c.styled(StyleSubtle, format, args)
}

// Event writes a timestamped line in the event style
func (c *console) Event(format string, args ...any) {
	c.styled(StyleEvent, format, args)
}

// EventWarning writes a timestamped line in the event warning style
func (c *console) EventWarning(format string, args ...any) {
	c.styled(StyleEventWarning, format, args)
}

// styled formats a helper message; without args the format is used verbatim
func (c *console) styled(style Style, format string, args []any) {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}

	c.append([]display.Line{{Text: c.FormatTimestamped(message), Pair: c.styles.Pair(style)}})
}

// Raw writes text in the standard style with optional blank lines around it
func (c *console) Raw(text string, spaceBefore, spaceAfter bool) {
	c.append(c.raw(text, spaceBefore, spaceAfter))
}

// Header writes a message framed by dividers
func (c *console) Header(message string) {
	divider := c.styles.Divider()

	var lines []display.Line

	lines = append(lines, c.raw(divider, c.headerSpacing, false)...)
	lines = append(lines, c.raw(message, false, false)...)
	lines = append(lines, c.raw(divider, false, c.headerSpacing)...)

	c.append(lines)
}

func (c *console) raw(text string, spaceBefore, spaceAfter bool) []display.Line {
	pair := c.styles.Pair(StyleStandard)
	lines := make([]display.Line, 0, 3)

	if spaceBefore {
		lines = append(lines, display.Line{Pair: pair})
	}

	lines = append(lines, display.Line{Text: text, Pair: pair})

	if spaceAfter {
		lines = append(lines, display.Line{Pair: pair})
	}

	return lines
}

// FormatTimestamped prefixes message with the local wall-clock time
func (c *console) FormatTimestamped(message string) string {
	return c.now().Format(c.timeFormat) + timestampSeparator + message
}

// Clear removes every line from the surface
func (c *console) Clear() {
	c.invoke(c.surface.Clear)
}

// TotalLines returns the surface line count
func (c *console) TotalLines() int {
	return c.surface.TotalLines()
}

// Save persists the surface contents to w
func (c *console) Save(w io.Writer, format display.Format) error {
	return c.surface.Persist(w, format)
}

// Styles returns the style table read on every dispatch
func (c *console) Styles() *StyleTable {
	return c.styles
}

// Listener returns a status listener forwarding every status into Log
func (c *console) Listener(v *Verbosity) status.Listener {
	return func(_ context.Context, s status.Status) error {
		c.Log(s, v.Enabled())

		return nil
	}
}

// append writes lines as one contiguous block on the surface owner
func (c *console) append(lines []display.Line) {
	c.invoke(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		for _, line := range lines {
			c.surface.Append(line.Text, line.Pair)
		}

		c.surface.ScrollToEnd()
	})
}

// invoke runs fn on the surface owner, surface failures are logged and dropped
func (c *console) invoke(fn func()) {
	guarded := func() {
		defer func() {
			if r := recover(); r != nil {
				c.log.Error().Msgf("Failed to write to console surface: %v", r)
			}
		}()

		fn()
	}

	if c.surface.InvokeRequired() {
		c.surface.Invoke(guarded)
		return
	}

	guarded()
}

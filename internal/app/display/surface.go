//go:generate mockgen -source=surface.go -destination=surface_mock.go -package=display
package display

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Format selects how Persist writes the surface contents
type Format int

const (
	FormatPlain Format = iota
	FormatStyled
)

// Pair is the foreground/background color pair applied to one appended line
type Pair struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
}

// Style returns the lipgloss style that renders text in this pair
func (p Pair) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Background)
}

// Line is a single appended line of styled text
type Line struct {
	Text string
	Pair Pair
}

// Marshaller redirects calls onto the goroutine that owns a surface
// InvokeRequired cannot tell the owner apart, so code already on it (a bubbletea Update) must not call Invoke
type Marshaller interface {
	InvokeRequired() bool
	Invoke(fn func())
}

// Surface is the styled text display the console writes to
type Surface interface {
	Marshaller
	Append(text string, pair Pair)
	Clear()
	TotalLines() int
	Persist(w io.Writer, format Format) error
	ScrollToEnd()
}

// FormatForPath picks styled output for .ans/.ansi files and plain text otherwise
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ans", ".ansi":
		return FormatStyled
	default:
		return FormatPlain
	}
}

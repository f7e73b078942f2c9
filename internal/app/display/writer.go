package display

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/term"
)

// Writer is a Surface that streams every appended line to an output as well as buffering it
type Writer struct {
	*Buffer
	mu     sync.Mutex
	out    io.Writer
	styled bool
}

// NewWriter creates a streaming surface; lines are styled only when out is a terminal
func NewWriter(out io.Writer, buf *Buffer) *Writer {
	return &Writer{
		Buffer: buf,
		out:    out,
		styled: isTerminal(out),
	}
}

// Append buffers the line and writes it to the output
func (w *Writer) Append(text string, pair Pair) {
	w.Buffer.Append(text, pair)

	format := FormatPlain
	if w.styled {
		format = FormatStyled
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	_, _ = io.WriteString(w.out, renderLine(Line{Text: text, Pair: pair}, format)+"\n")
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(f.Fd())
}

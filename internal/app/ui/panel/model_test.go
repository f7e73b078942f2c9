package panel

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consolelog/internal/app/console"
	"consolelog/internal/app/display"
	"consolelog/internal/config/logger"
)

var testPair = display.Pair{Foreground: "#63D3EA", Background: "#333333"}

func newTestModel(t *testing.T, savePath string) (*Model, *display.Buffer) {
	t.Helper()

	buf := display.NewBuffer(100, nil)
	m := NewModel(buf, console.NewStyleTable(), console.NewVerbosity(false), savePath, logger.NewNopLogger())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})

	return m, buf
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func Test_NewModel(t *testing.T) {
	m := NewModel(display.NewBuffer(10, nil), console.NewStyleTable(), console.NewVerbosity(false), "out.txt", logger.NewNopLogger())

	assert.True(t, m.autoscroll)
	assert.Equal(t, 0, m.pending)
	assert.NotNil(t, m.Init())
}

func Test_Model_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, "")

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, m.viewport.Width)
	assert.Equal(t, 27, m.viewport.Height)

	m.Update(tea.WindowSizeMsg{Width: 10, Height: 2})
	assert.Equal(t, 1, m.viewport.Height)
}

func Test_Model_InvokeMsg(t *testing.T) {
	m, buf := newTestModel(t, "")
	p := display.NewProgram()
	msgs := make(chan tea.Msg, 1)

	p.Attach(func(msg tea.Msg) { msgs <- msg })
	defer p.Detach()

	done := make(chan struct{})

	go func() {
		p.Invoke(func() { buf.Append("from producer", testPair) })
		close(done)
	}()

	var msg tea.Msg

	select {
	case msg = <-msgs:
	case <-time.After(time.Second):
		t.Fatal("Expected invoke message")
	}

	_, ok := msg.(display.InvokeMsg)
	require.True(t, ok)

	m.Update(msg)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Invoke should return after Update ran it")
	}

	assert.Equal(t, 1, buf.TotalLines())
}

func Test_Model_TickRefresh(t *testing.T) {
	m, buf := newTestModel(t, "")

	buf.Append("hello panel", testPair)
	buf.ScrollToEnd()

	_, cmd := m.Update(tickMsg(time.Now()))

	assert.NotNil(t, cmd)
	assert.Contains(t, m.viewport.View(), "hello panel")
	assert.Equal(t, 1, m.lastTotal)
	assert.Equal(t, 0, m.pending)
}

func Test_Model_PendingWhileNotFollowing(t *testing.T) {
	m, buf := newTestModel(t, "")

	m.Update(runes("a"))
	require.False(t, m.autoscroll)

	buf.Append("one", testPair)
	buf.Append("two", testPair)
	m.Update(tickMsg(time.Now()))

	assert.Equal(t, 2, m.pending)
	assert.True(t, m.pulse.Active())
	assert.Contains(t, m.View(), "2 new")

	m.Update(runes("a"))

	assert.True(t, m.autoscroll)
	assert.Equal(t, 0, m.pending)
	assert.False(t, m.pulse.Active())
}

func Test_Model_ScrollStopsFollowing(t *testing.T) {
	m, buf := newTestModel(t, "")

	for i := 0; i < 20; i++ {
		buf.Append(fmt.Sprintf("line %d", i), testPair)
	}

	m.Update(tickMsg(time.Now()))
	require.True(t, m.viewport.AtBottom())

	m.Update(tea.KeyMsg{Type: tea.KeyUp})

	assert.False(t, m.autoscroll)
	assert.False(t, m.viewport.AtBottom())
}

func Test_Model_Keys(t *testing.T) {
	tests := []struct {
		name  string
		key   tea.KeyMsg
		check func(t *testing.T, m *Model, buf *display.Buffer, cmd tea.Cmd)
	}{
		{
			name: "quit",
			key:  runes("q"),
			check: func(t *testing.T, m *Model, buf *display.Buffer, cmd tea.Cmd) {
				require.NotNil(t, cmd)
				assert.Equal(t, tea.Quit(), cmd())
			},
		},
		{
			name: "force quit",
			key:  tea.KeyMsg{Type: tea.KeyCtrlC},
			check: func(t *testing.T, m *Model, buf *display.Buffer, cmd tea.Cmd) {
				require.NotNil(t, cmd)
				assert.Equal(t, tea.Quit(), cmd())
			},
		},
		{
			name: "clear",
			key:  tea.KeyMsg{Type: tea.KeyCtrlR},
			check: func(t *testing.T, m *Model, buf *display.Buffer, cmd tea.Cmd) {
				assert.Nil(t, cmd)
				assert.Equal(t, 0, buf.TotalLines())
				assert.Equal(t, 0, m.lastTotal)
			},
		},
		{
			name: "verbose",
			key:  runes("v"),
			check: func(t *testing.T, m *Model, buf *display.Buffer, cmd tea.Cmd) {
				assert.True(t, m.verbosity.Enabled())
				assert.Equal(t, "verbose on", m.notice)
			},
		},
		{
			name: "autoscroll",
			key:  runes("a"),
			check: func(t *testing.T, m *Model, buf *display.Buffer, cmd tea.Cmd) {
				assert.False(t, m.autoscroll)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, buf := newTestModel(t, "")
			buf.Append("existing", testPair)
			m.Update(tickMsg(time.Now()))

			_, cmd := m.Update(tt.key)
			tt.check(t, m, buf, cmd)
		})
	}
}

func Test_Model_Save(t *testing.T) {
	t.Run("writes plain text", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "console.txt")
		m, buf := newTestModel(t, path)

		buf.Append("first", testPair)
		buf.Append("second", testPair)

		m.Update(runes("s"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "first\nsecond\n", string(data))
		assert.Contains(t, m.notice, "saved")
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "console.txt")
		m, _ := newTestModel(t, path)

		m.Update(runes("s"))

		assert.Contains(t, m.notice, "save failed")
	})

	t.Run("no save path", func(t *testing.T) {
		m, _ := newTestModel(t, "")

		m.Update(runes("s"))

		assert.Contains(t, m.notice, "save path")
	})
}

func Test_Model_NoticeExpires(t *testing.T) {
	m, _ := newTestModel(t, "")

	m.Update(runes("v"))
	require.NotEmpty(t, m.notice)

	for i := 0; i < 100; i++ {
		m.Update(tickMsg(time.Now()))
	}

	assert.Empty(t, m.notice)
}

func Test_Model_View(t *testing.T) {
	m, buf := newTestModel(t, "")

	assert.Contains(t, m.View(), "Waiting for log entries")

	buf.Append("visible line", testPair)
	m.Update(tickMsg(time.Now()))

	view := m.View()
	assert.Contains(t, view, "consolelog")
	assert.Contains(t, view, "1 lines")
	assert.Contains(t, view, "visible line")
}

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Autoscroll.Keys(), "a")
	assert.Contains(t, km.Clear.Keys(), "ctrl+r")
	assert.Contains(t, km.Save.Keys(), "s")
	assert.Contains(t, km.Verbose.Keys(), "v")
	assert.Len(t, km.ShortHelp(), 7)
	assert.Len(t, km.FullHelp(), 2)
}

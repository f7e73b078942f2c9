package panel

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"consolelog/internal/app/console"
	"consolelog/internal/app/display"
	"consolelog/internal/app/errors"
	"consolelog/internal/app/ui/components"
	"consolelog/internal/config/logger"
)

type tickMsg time.Time

// Model renders a display buffer in a scrolling viewport
type Model struct {
	buffer    *display.Buffer
	styles    *console.StyleTable
	verbosity *console.Verbosity
	savePath  string
	log       logger.Logger

	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	pulse    *components.Pulse

	autoscroll  bool
	version     uint64
	lastTotal   int
	pending     int
	notice      string
	noticeTicks int
	width       int
	height      int
}

// NewModel creates a panel model following the newest line
func NewModel(buffer *display.Buffer, styles *console.StyleTable, verbosity *console.Verbosity, savePath string, log logger.Logger) *Model {
	return &Model{
		buffer:     buffer,
		styles:     styles,
		verbosity:  verbosity,
		savePath:   savePath,
		log:        log,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		viewport:   viewport.New(components.DefaultViewportWidth, 0),
		pulse:      components.NewPulse(),
		autoscroll: true,
	}
}

// Init starts the refresh ticker
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(components.UITickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles Bubble Tea messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case display.InvokeMsg:
		msg.Run()
		return m, nil

	case tickMsg:
		m.pulse.Update()

		if m.noticeTicks > 0 {
			m.noticeTicks--
			if m.noticeTicks == 0 {
				m.notice = ""
			}
		}

		m.refresh()

		return m, tick()

	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.ForceQuit):
		return tea.Quit

	case key.Matches(msg, m.keys.Autoscroll):
		m.toggleAutoscroll()

	case key.Matches(msg, m.keys.Clear):
		m.buffer.Clear()
		m.pending = 0
		m.pulse.Reset()
		m.refresh()

	case key.Matches(msg, m.keys.Save):
		m.save()

	case key.Matches(msg, m.keys.Verbose):
		if m.verbosity.Toggle() {
			m.setNotice("verbose on")
		} else {
			m.setNotice("verbose off")
		}

	default:
		m.scroll(msg)
	}

	return nil
}

// toggleAutoscroll flips follow mode, catching up to the newest line when enabled
func (m *Model) toggleAutoscroll() {
	m.autoscroll = !m.autoscroll

	if m.autoscroll {
		m.pending = 0
		m.pulse.Reset()
		m.viewport.GotoBottom()
	}
}

// scroll forwards navigation keys to the viewport and stops following when moved off the bottom
func (m *Model) scroll(msg tea.KeyMsg) {
	oldYOffset := m.viewport.YOffset

	m.viewport, _ = m.viewport.Update(msg)

	if m.viewport.YOffset == oldYOffset {
		return
	}

	if m.viewport.AtBottom() {
		m.pending = 0
		return
	}

	m.autoscroll = false
}

// save persists the buffer to the configured path, styled for .ansi files
func (m *Model) save() {
	if m.savePath == "" {
		m.setNotice(components.ErrorStyle.Render(errors.ErrSavePathEmpty.Error()))
		return
	}

	f, err := os.Create(m.savePath)
	if err != nil {
		m.log.Error().Err(err).Msgf("Failed to create '%s'", m.savePath)
		m.setNotice(components.ErrorStyle.Render("save failed"))

		return
	}
	defer f.Close()

	if err := m.buffer.Persist(f, display.FormatForPath(m.savePath)); err != nil {
		m.log.Error().Err(err).Msgf("Failed to save console to '%s'", m.savePath)
		m.setNotice(components.ErrorStyle.Render("save failed"))

		return
	}

	m.setNotice(fmt.Sprintf("saved %s", m.savePath))
}

func (m *Model) setNotice(notice string) {
	m.notice = notice
	m.noticeTicks = components.NoticeTicks
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	vh := height - components.HeaderHeight - components.FooterHeight
	if vh < 1 {
		vh = 1
	}

	m.viewport.Width = width
	m.viewport.Height = vh

	m.version = 0
	m.refresh()
}

// refresh re-renders the viewport when the buffer changed since the last render
func (m *Model) refresh() {
	follow := m.buffer.TakeScroll()
	version := m.buffer.Version()

	if version == m.version && !follow {
		return
	}

	m.version = version

	total := m.buffer.TotalLines()

	switch {
	case total < m.lastTotal:
		m.pending = 0
	case total > m.lastTotal && !m.autoscroll:
		m.pending += total - m.lastTotal
		m.pulse.Trigger()
	}

	m.lastTotal = total

	oldYOffset := m.viewport.YOffset

	m.viewport.SetContent(m.renderLines())

	if m.autoscroll {
		m.viewport.GotoBottom()
	} else {
		m.viewport.SetYOffset(oldYOffset)
	}
}

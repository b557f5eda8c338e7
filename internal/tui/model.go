package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibdrv/internal/device"
	apperrors "github.com/agbru/fibdrv/internal/errors"
	"github.com/agbru/fibdrv/internal/metrics"
)

const (
	sampleInterval    = 500 * time.Millisecond
	minValueWidth     = 16
	defaultValueWidth = 64
)

// TickMsg triggers a resource sample.
type TickMsg time.Time

// SampleMsg carries runtime and host snapshots.
type SampleMsg struct {
	Memory metrics.MemorySnapshot
	System metrics.SystemSnapshot
}

// Model is the bubbletea model of the device browser. It owns one open
// handle for its whole lifetime.
type Model struct {
	handle *device.Handle
	keymap KeyMap
	help   help.Model
	header HeaderModel
	stats  StatsModel
	memory *metrics.MemoryCollector
	system *metrics.SystemCollector

	pos   int64
	value string
	err   error

	width  int
	height int
}

// NewModel creates a browser over h and reads the value at the handle's
// current position.
func NewModel(h *device.Handle, deviceName, version string) Model {
	m := Model{
		handle: h,
		keymap: DefaultKeyMap(),
		help:   help.New(),
		header: NewHeaderModel(version, deviceName),
		memory: metrics.NewMemoryCollector(),
		system: metrics.NewSystemCollector(),
	}
	m.stats.SetSample(m.memory.Snapshot(), metrics.SystemSnapshot{})
	m.move(h.Position(), device.Absolute)
	return m
}

// Init starts the resource sampler.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles key presses, resizes and sampler ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleCmd(m.memory, m.system), tickCmd())

	case SampleMsg:
		m.stats.SetSample(msg.Memory, msg.System)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Up):
		m.move(-1, device.RelativeToCurrent)
	case key.Matches(msg, m.keymap.Down):
		m.move(1, device.RelativeToCurrent)
	case key.Matches(msg, m.keymap.PageUp):
		m.move(-PageStep, device.RelativeToCurrent)
	case key.Matches(msg, m.keymap.PageDown):
		m.move(PageStep, device.RelativeToCurrent)
	case key.Matches(msg, m.keymap.Home):
		m.move(0, device.Absolute)
	case key.Matches(msg, m.keymap.End):
		m.move(0, device.RelativeToBound)
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// move seeks and reads synchronously so that the displayed value always
// belongs to the displayed position.
func (m *Model) move(offset int64, whence device.Whence) {
	pos, err := m.handle.SeekMode(offset, whence)
	if err != nil {
		m.err = err
		return
	}
	m.pos = pos
	start := time.Now()
	value, err := m.handle.Value()
	m.stats.SetReading(value, time.Since(start))
	m.value = value
	m.err = err
}

// Position returns the displayed index.
func (m Model) Position() int64 { return m.pos }

// Value returns the displayed value.
func (m Model) Value() string { return m.value }

// Err returns the last seek or read error.
func (m Model) Err() error { return m.err }

// View renders the browser.
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = defaultValueWidth + 4
	}
	inner := max(width-4, minValueWidth)

	body := valueStyle.Render(strings.Join(wrapDigits(m.value, inner), "\n"))
	if m.err != nil {
		body = errorStyle.Render(m.err.Error())
	}
	panel := panelStyle.Width(inner + 2).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(m.pos, m.handle.MaxIndex()),
		panel,
		" "+m.stats.View(),
		" "+m.help.View(m.keymap),
	)
}

// wrapDigits splits s into lines of at most width characters.
func wrapDigits(s string, width int) []string {
	if width <= 0 || len(s) <= width {
		return []string{s}
	}
	lines := make([]string, 0, (len(s)+width-1)/width)
	for len(s) > width {
		lines = append(lines, s[:width])
		s = s[width:]
	}
	return append(lines, s)
}

func tickCmd() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func sampleCmd(mc *metrics.MemoryCollector, sc *metrics.SystemCollector) tea.Cmd {
	return func() tea.Msg {
		return SampleMsg{Memory: mc.Snapshot(), System: sc.Snapshot()}
	}
}

// Run browses h until the user quits or ctx is canceled, then closes h.
// It returns a process exit code.
func Run(ctx context.Context, h *device.Handle, deviceName, version string) int {
	initTUIStyles()
	defer func() { _ = h.Close() }()

	p := tea.NewProgram(NewModel(h, deviceName, version), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if apperrors.IsContextError(ctx.Err()) || errors.Is(err, tea.ErrProgramKilled) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return apperrors.ExitCode(fm.err)
	}
	return apperrors.ExitSuccess
}

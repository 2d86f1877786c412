// Package tui provides a Bubble Tea terminal user interface for picking
// and fetching datasets.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/rover/internal/config"
	"github.com/handiism/rover/internal/download"
	"github.com/handiism/rover/internal/manifest"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateSelect State = iota
	StateFetching
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	manifest *manifest.Manifest
	names    []string
	cursor   int
	selected map[string]bool
	logs     []LogEntry
	err      error

	// Batch context
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc

	// Current batch
	manager *download.Manager
	events  chan download.ProgressEvent
	fetched int
	total   int
	current string

	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model over the datasets of m.
func NewModel(ctx context.Context, m *manifest.Manifest, settings *config.Settings) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	batchCtx, cancel := context.WithCancel(ctx)

	return Model{
		state:    StateSelect,
		spinner:  sp,
		progress: prog,
		settings: settings,
		manifest: m,
		names:    m.Names(),
		selected: make(map[string]bool),
		logs:     make([]LogEntry, 0),
		parent:   ctx,
		ctx:      batchCtx,
		cancel:   cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// ProgressMsg carries one event from the running batch.
	ProgressMsg struct {
		Event download.ProgressEvent
	}

	// FetchDoneMsg is sent when the batch finishes.
	FetchDoneMsg struct {
		Err error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, waitForEvent(m.events))
		if msg.Event.Level == download.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case FetchDoneMsg:
		if m.manager != nil {
			m.fetched, m.total, m.current = m.manager.GetProgress()
		}
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateFetching {
			m.fetched, m.total, m.current = m.manager.GetProgress()
			var percent float64
			if m.total > 0 {
				percent = float64(m.fetched) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit

	case "esc":
		if m.state == StateSelect {
			return m, tea.Quit
		}
		if m.state == StateFetching {
			m.cancel()
		}

	case "up", "k":
		if m.state == StateSelect && m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.state == StateSelect && m.cursor < len(m.names)-1 {
			m.cursor++
		}

	case " ", "x":
		if m.state == StateSelect && len(m.names) > 0 {
			name := m.names[m.cursor]
			m.selected[name] = !m.selected[name]
		}

	case "a":
		if m.state == StateSelect {
			all := len(m.Selected()) < len(m.names)
			for _, name := range m.names {
				m.selected[name] = all
			}
		}

	case "v":
		if m.state == StateSelect {
			m.verbose = !m.verbose
		}

	case "enter":
		if m.state == StateSelect && len(m.Selected()) > 0 {
			return m.startFetch()
		}

	case "q":
		if m.state == StateComplete || m.state == StateError {
			return m, tea.Quit
		}

	case "r":
		if m.state == StateComplete || m.state == StateError {
			// Reset for a new batch
			m.state = StateSelect
			m.logs = nil
			m.err = nil
			m.manager = nil
			m.events = nil
			m.fetched, m.total, m.current = 0, 0, ""
			m.selected = make(map[string]bool)
			m.cancel()
			m.ctx, m.cancel = context.WithCancel(m.parent)
		}
	}

	return m, nil
}

// Selected returns the selected dataset names in list order.
func (m Model) Selected() []string {
	var names []string
	for _, name := range m.names {
		if m.selected[name] {
			names = append(names, name)
		}
	}
	return names
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

func (m Model) startFetch() (tea.Model, tea.Cmd) {
	names := m.Selected()
	events := make(chan download.ProgressEvent, 16)
	ctx := m.ctx

	m.events = events
	m.total = len(names)
	m.state = StateFetching
	m.manager = download.NewManager(m.manifest, download.NewHTTPFetcher(m.settings), func(event download.ProgressEvent) {
		select {
		case events <- event:
		case <-ctx.Done():
		}
	})

	return m, tea.Batch(
		runBatch(ctx, m.manager, names, events),
		waitForEvent(events),
		tickProgress(),
		m.spinner.Tick,
	)
}

// runBatch executes the batch off the UI goroutine. The batch itself is
// still sequential.
func runBatch(ctx context.Context, manager *download.Manager, names []string, events chan download.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		err := manager.Execute(ctx, names)
		close(events)
		return FetchDoneMsg{Err: err}
	}
}

func waitForEvent(events <-chan download.ProgressEvent) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// tickProgress returns a command to tick progress updates.
func tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("rover"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.manifestLine()))
	b.WriteString("\n\n")

	switch m.state {
	case StateSelect:
		b.WriteString(m.viewSelect())
	case StateFetching:
		b.WriteString(m.viewFetching())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) manifestLine() string {
	line := m.manifest.Path()
	if author, ok := m.manifest.Author(); ok {
		line += " by " + author
	}
	return line
}

func (m Model) viewSelect() string {
	var b strings.Builder

	if len(m.names) == 0 {
		b.WriteString(warningStyle.Render("The manifest lists no datasets."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(subtitleStyle.Render("Select datasets to fetch:"))
	b.WriteString("\n\n")

	width := 0
	for _, name := range m.names {
		width = max(width, lipgloss.Width(name))
	}
	nameStyle := lipgloss.NewStyle().Width(width)

	for i, name := range m.names {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if m.selected[name] {
			check = "[x]"
		}
		ds, _ := m.manifest.Lookup(name)
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", pointer, check, nameStyle.Render(name), dimStyle.Render(ds.Description)))
	}

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}
	b.WriteString("\n")
	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output directory: %s", m.outputDir())))
	b.WriteString("\n")

	return b.String()
}

func (m Model) outputDir() string {
	if m.settings.OutputDir == "" {
		return "."
	}
	return m.settings.OutputDir
}

func (m Model) viewFetching() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	if m.current != "" {
		b.WriteString(subtitleStyle.Render("Fetching " + m.current + "..."))
	} else {
		b.WriteString(subtitleStyle.Render("Resolving datasets..."))
	}
	b.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.fetched) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Datasets: %d/%d", m.fetched, m.total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"Fetch complete!\n\n"+
			"Datasets: %d\n"+
			"Directory: %s\n"+
			"Run: %s",
		m.fetched,
		m.outputDir(),
		m.manager.RunID(),
	))
	b.WriteString(box)
	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateSelect:
		return "↑/↓: move • space: toggle • a: all • v: verbose • enter: fetch • esc: quit"
	case StateFetching:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new batch • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(ctx context.Context, m *manifest.Manifest, settings *config.Settings) error {
	p := tea.NewProgram(NewModel(ctx, m, settings), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

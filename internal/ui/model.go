package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/golnk/internal/schema"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for a panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for a panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// cursorStyle defines the style for the selected row.
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	// errorStyle defines the style for inline errors.
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

const maxLogLines = 100

type linker interface {
	Link(source, dest string, opts schema.LinkOptions) ([]string, error)
}

type pickerState int

const (
	stateSelectSource pickerState = iota
	stateSelectDestination
	stateConfirm
	stateComplete
)

// Session describes how the picker starts. A non-empty Source (and
// Destination) skips the respective selection steps.
type Session struct {
	StartDir    string
	Source      string
	Destination string
	Options     schema.LinkOptions
}

// Result is the outcome of a linking run started from the picker.
type Result struct {
	Source      string
	Destination string
	Linked      []string
}

// linkDoneMsg is the [tea.Msg] returned when a linking run has finished.
type linkDoneMsg struct {
	linked []string
	err    error
}

// TeaModel is the principal [tea.Model] for the picker.
type TeaModel struct {
	width  int
	height int

	cancel context.CancelFunc

	linkHandler linker
	dirHandler  dirProvider
	opts        schema.LinkOptions

	state      pickerState
	currentDir string
	items      []listItem
	cursor     int
	listErr    error

	source      string
	destination string

	linking bool
	linked  []string
	linkErr error

	resultsViewport viewport.Model
	logs            []string
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(linkHandler linker, dirHandler dirProvider, cancel context.CancelFunc, session Session) TeaModel {
	m := TeaModel{
		cancel:          cancel,
		linkHandler:     linkHandler,
		dirHandler:      dirHandler,
		opts:            session.Options,
		currentDir:      filepath.Clean(session.StartDir),
		source:          session.Source,
		resultsViewport: viewport.New(80, 20),
		logs:            make([]string, 0, maxLogLines),
	}

	if m.source != "" {
		m.state = stateSelectDestination
		if session.Destination != "" {
			m.destination = session.Destination
			m.state = stateConfirm
		}
	}

	return m.reload()
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return nil
}

// Update is the principal message handling method of the model.
//
//nolint:ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resultsViewport.Width = max(m.width-2, 10)  //nolint:mnd
		m.resultsViewport.Height = max(m.height-8, 3) //nolint:mnd

	case linkDoneMsg:
		m.linking = false
		m.linked = msg.linked
		m.linkErr = msg.err
		m.state = stateComplete
		m.resultsViewport.SetContent(m.resultsContent())
		m.resultsViewport.GotoTop()

	case LogMsg:
		if len(m.logs) >= maxLogLines {
			m.logs = m.logs[1:]
		}
		m.logs = append(m.logs, strings.TrimSuffix(string(msg), "\n"))
	}

	if m.state == stateComplete {
		m.resultsViewport, cmd = m.resultsViewport.Update(msg)
	}

	return m, cmd
}

//nolint:ireturn
func (m TeaModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()

		return m, tea.Quit
	case "q":
		if !m.linking {
			return m, tea.Quit
		}
	}

	switch m.state {
	case stateSelectSource, stateSelectDestination:
		return m.handleBrowseKey(msg), nil

	case stateConfirm:
		switch msg.String() {
		case "y":
			if !m.linking {
				m.linking = true

				return m, m.linkCmd()
			}
		case "n":
			return m.restart(), nil
		}

	case stateComplete:
		if msg.String() == "n" {
			return m.restart(), nil
		}

		var cmd tea.Cmd
		m.resultsViewport, cmd = m.resultsViewport.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m TeaModel) handleBrowseKey(msg tea.KeyMsg) TeaModel {
	if len(m.items) == 0 {
		return m
	}

	switch msg.String() {
	case "up", "k":
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(m.items) - 1
		}

	case "down", "j":
		m.cursor = (m.cursor + 1) % len(m.items)

	case "right", "l":
		if item := m.items[m.cursor]; item.isDir && item.name != "." {
			return m.enter(item.path)
		}

	case "left", "h", "backspace":
		return m.enter(filepath.Dir(m.currentDir))

	case "enter":
		item := m.items[m.cursor]
		if item.name == ".." {
			return m.enter(item.path)
		}

		if m.state == stateSelectSource {
			m.source = item.path
			m.state = stateSelectDestination

			return m.reload()
		}

		if item.isDir {
			m.destination = item.path
			m.state = stateConfirm
		}
	}

	return m
}

func (m TeaModel) enter(dir string) TeaModel {
	if dir == m.currentDir {
		return m
	}

	m.currentDir = dir

	return m.reload()
}

func (m TeaModel) reload() TeaModel {
	m.cursor = 0
	m.items, m.listErr = readListing(m.dirHandler, m.currentDir, m.state == stateSelectSource)

	return m
}

func (m TeaModel) restart() TeaModel {
	m.state = stateSelectSource
	m.source = ""
	m.destination = ""
	m.linked = nil
	m.linkErr = nil

	return m.reload()
}

// Result returns the outcome of the last linking run, which is empty if the
// session ended before a run completed.
func (m TeaModel) Result() (Result, error) {
	if m.state != stateComplete {
		return Result{}, nil
	}

	return Result{
		Source:      m.source,
		Destination: m.destination,
		Linked:      m.linked,
	}, m.linkErr
}

func (m TeaModel) linkCmd() tea.Cmd {
	linkHandler := m.linkHandler
	source, destination, opts := m.source, m.destination, m.opts

	return func() tea.Msg {
		linked, err := linkHandler.Link(source, destination, opts)

		return linkDoneMsg{linked: linked, err: err}
	}
}

func (m TeaModel) resultsContent() string {
	if m.linkErr != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.linkErr))
	}

	if len(m.linked) == 0 {
		return "Nothing was linked."
	}

	var s strings.Builder
	for _, rel := range m.linked {
		if rel == "" {
			rel = m.destination
		}
		fmt.Fprintf(&s, "Created link: %s\n", rel)
	}

	return strings.TrimSuffix(s.String(), "\n")
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	width := max(m.width-2, 40) //nolint:mnd

	var title, body, help string

	switch m.state {
	case stateSelectSource:
		title = "Select source: " + m.currentDir
		body = m.listView()
		help = "↑/↓: move • →: open • ←: parent • enter: select • q: quit"

	case stateSelectDestination:
		title = "Select destination for " + m.source
		body = m.listView()
		help = "↑/↓: move • →: open • ←: parent • enter: select • q: quit"

	case stateConfirm:
		title = "Confirm"
		body = fmt.Sprintf("Link %s\n  -> %s\n\n", m.source, m.destination)
		if m.linking {
			body += "Linking..."
		} else {
			body += "Press 'y' to confirm or 'n' to start over."
		}
		help = "y: confirm • n: start over • q: quit"

	case stateComplete:
		title = "Complete"
		body = m.resultsViewport.View()
		help = "n: start over • q: quit"
	}

	sections := []string{
		borderStyle.Width(width).Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(width).Render(title),
				body,
			),
		),
	}

	if len(m.logs) > 0 {
		sections = append(sections, borderStyle.Width(width).Render(m.logsView()))
	}

	sections = append(sections, helpStyle.Width(width).Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m TeaModel) listView() string {
	var s strings.Builder

	if m.listErr != nil {
		s.WriteString(errorStyle.Render(m.listErr.Error()) + "\n")
	}

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		label := m.items[i].label()
		if i == m.cursor {
			s.WriteString(cursorStyle.Render("> "+label) + "\n")
		} else {
			s.WriteString("  " + label + "\n")
		}
	}

	return strings.TrimSuffix(s.String(), "\n")
}

// visibleRange returns the window of rows that fits the terminal while
// keeping the cursor visible.
func (m TeaModel) visibleRange() (int, int) {
	rows := len(m.items)
	if m.height > 0 {
		rows = max(m.height-10, 3) //nolint:mnd
	}

	if rows >= len(m.items) {
		return 0, len(m.items)
	}

	start := max(m.cursor-rows+1, 0)

	return start, start + rows
}

func (m TeaModel) logsView() string {
	lines := m.logs
	if len(lines) > 5 { //nolint:mnd
		lines = lines[len(lines)-5:]
	}

	return strings.Join(lines, "\n")
}

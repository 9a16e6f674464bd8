package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"cslines/internal/driver"
)

// maxListed bounds the file list; finished files scroll out first.
const maxListed = 12

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	width   int
	done    bool

	finished int
	changed  int
	cached   int
	failed   int
}

type fileItem struct {
	path  string
	state itemState
}

type itemState uint8

const (
	stateQueued itemState = iota
	stateFormatting
	stateDone
	stateChanged
	stateError
)

var stateLabels = [...]string{
	stateQueued:     "queued",
	stateFormatting: "formatting",
	stateDone:       "done",
	stateChanged:    "changed",
	stateError:      "error",
}

var stateColors = [...]lipgloss.Color{
	stateQueued:     "7",
	stateFormatting: "6",
	stateDone:       "2",
	stateChanged:    "3",
	stateError:      "1",
}

func (s itemState) String() string { return stateLabels[s] }

func (s itemState) finished() bool { return s >= stateDone }

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders formatting progress
// for files, fed by the driver's progress events.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76 // Default width

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file, state: stateQueued})
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(driver.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s (%d/%d)", m.title, m.finished, len(m.items))
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	for _, item := range m.visible() {
		name := truncate(item.path, nameWidth)
		statusStyled := lipgloss.NewStyle().Foreground(stateColors[item.state]).Render(fmt.Sprintf("%12s", item.state))
		b.WriteString(fmt.Sprintf("  %s %s", statusStyled, name))
		b.WriteString("\n")
	}
	if hidden := len(m.items) - len(m.visible()); hidden > 0 {
		b.WriteString(fmt.Sprintf("  %12s %d more\n", "", hidden))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  changed %d  cached %d  failed %d\n", m.changed, m.cached, m.failed))

	return b.String()
}

// visible keeps unfinished files ahead of finished ones, up to maxListed.
func (m *progressModel) visible() []fileItem {
	if len(m.items) <= maxListed {
		return m.items
	}
	out := make([]fileItem, 0, maxListed)
	for _, item := range m.items {
		if len(out) == maxListed {
			return out
		}
		if !item.state.finished() {
			out = append(out, item)
		}
	}
	for _, item := range m.items {
		if len(out) == maxListed {
			break
		}
		if item.state.finished() {
			out = append(out, item)
		}
	}
	return out
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	if ev.File == "" {
		return nil
	}
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	state, ok := eventState(ev)
	if !ok {
		return nil
	}
	wasFinished := m.items[idx].state.finished()
	m.items[idx].state = state
	if !wasFinished && state.finished() {
		m.finished++
		switch {
		case ev.Status == driver.StatusError:
			m.failed++
		case ev.Changed:
			m.changed++
		}
		if ev.Cached {
			m.cached++
		}
	}
	return m.prog.SetPercent(float64(m.finished) / float64(len(m.items)))
}

func eventState(ev driver.Event) (itemState, bool) {
	switch ev.Status {
	case driver.StatusQueued:
		return stateQueued, true
	case driver.StatusWorking:
		return stateFormatting, true
	case driver.StatusDone:
		if ev.Changed {
			return stateChanged, true
		}
		return stateDone, true
	case driver.StatusError:
		return stateError, true
	default:
		return 0, false
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}

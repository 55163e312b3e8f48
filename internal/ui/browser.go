// Package ui implements the interactive diagnostics browser behind
// `rcdiag render --ui`.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Entry is one browsable unit: a rendered diagnostics block for one dump.
type Entry struct {
	Title  string // dump path
	Body   string // fully rendered diagnostics text
	Errors int
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

type browserModel struct {
	entries  []Entry
	index    int
	view     viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool
}

// NewBrowserModel returns a Bubble Tea model that pages through rendered
// diagnostics, one dump per page.
func NewBrowserModel(entries []Entry) tea.Model {
	return &browserModel{entries: entries}
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		if !m.ready {
			m.view = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = msg.Height - headerHeight
		}
		m.setContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			if m.index > 0 {
				m.index--
				m.setContent()
			}
			return m, nil
		case "right", "l", "tab":
			if m.index < len(m.entries)-1 {
				m.index++
				m.setContent()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *browserModel) setContent() {
	if !m.ready || len(m.entries) == 0 {
		return
	}
	m.view.SetContent(m.entries[m.index].Body)
	m.view.GotoTop()
}

func (m *browserModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready || len(m.entries) == 0 {
		return "loading..."
	}

	entry := m.entries[m.index]
	title := runewidth.Truncate(entry.Title, max(m.width-20, 10), "...")
	header := titleStyle.Render(title)
	if entry.Errors > 0 {
		header += " " + errorStyle.Render(fmt.Sprintf("(%d errors)", entry.Errors))
	}
	status := statusStyle.Render(fmt.Sprintf("%d/%d  ←/→ switch dump  ↑/↓ scroll  q quit", m.index+1, len(m.entries)))

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(status)
	b.WriteByte('\n')
	b.WriteString(m.view.View())
	return b.String()
}

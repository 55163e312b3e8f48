package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{}
}

func TestBrowserNavigation(t *testing.T) {
	entries := []Entry{
		{Title: "a.dump", Body: "first body"},
		{Title: "b.dump", Body: "second body", Errors: 2},
	}
	var m tea.Model = NewBrowserModel(entries)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	if !strings.Contains(view, "a.dump") || !strings.Contains(view, "first body") {
		t.Errorf("initial view missing first entry:\n%s", view)
	}

	m, _ = m.Update(key("right"))
	view = m.View()
	if !strings.Contains(view, "b.dump") || !strings.Contains(view, "second body") {
		t.Errorf("view after right missing second entry:\n%s", view)
	}
	if !strings.Contains(view, "(2 errors)") {
		t.Errorf("view should show the error count:\n%s", view)
	}

	// Already at the last entry: stay put.
	m, _ = m.Update(key("tab"))
	if !strings.Contains(m.View(), "b.dump") {
		t.Error("tab past the last entry should not move")
	}

	m, _ = m.Update(key("left"))
	if !strings.Contains(m.View(), "a.dump") {
		t.Error("left should move back to the first entry")
	}
}

func TestBrowserQuit(t *testing.T) {
	var m tea.Model = NewBrowserModel([]Entry{{Title: "a.dump", Body: "x"}})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("command = %v, want tea.Quit", msg)
	}
	if m.View() != "" {
		t.Errorf("quitting view = %q, want empty", m.View())
	}
}

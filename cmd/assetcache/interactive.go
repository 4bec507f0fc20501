package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pixelforge/assetcache/manager"
	"github.com/pixelforge/assetcache/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateAcquire
)

type browserModel struct {
	mgr      *manager.Manager
	root     string
	records  []registry.Snapshot
	input    textinput.Model
	status   string
	err      error
	selected int
	state    modelState
}

func newBrowserModel(mgr *manager.Manager, root string) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "textures/player.png"
	ti.Prompt = "acquire: "
	ti.Width = 48

	return &browserModel{
		mgr:   mgr,
		root:  root,
		input: ti,
		state: stateBrowse,
	}
}

func (m *browserModel) Init() tea.Cmd {
	m.refresh()
	return nil
}

// refresh re-reads the registry into a stable, path-sorted view.
func (m *browserModel) refresh() {
	m.records = m.records[:0]
	m.mgr.Registry().Each(func(s registry.Snapshot) bool {
		m.records = append(m.records, s)
		return true
	})
	sort.Slice(m.records, func(i, j int) bool { return m.records[i].Path < m.records[j].Path })
	if m.selected >= len(m.records) {
		m.selected = len(m.records) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateAcquire {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateBrowse
			m.input.Blur()
			return m, nil
		case "enter":
			path := strings.TrimSpace(m.input.Value())
			m.state = stateBrowse
			m.input.Blur()
			m.input.SetValue("")
			if path == "" {
				return m, nil
			}
			if h, err := m.mgr.Acquire(path); err != nil {
				m.err = err
				m.status = ""
			} else {
				m.err = nil
				m.status = fmt.Sprintf("acquired %s (%s)", h.Path(), h.Asset().Type())
			}
			m.refresh()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.records)-1 {
			m.selected++
		}

	case "a":
		m.state = stateAcquire
		m.err = nil
		m.status = ""
		m.input.Focus()
		return m, textinput.Blink

	case "r":
		if s := m.selectedRecord(); s != nil {
			refs := m.mgr.Release(s.Path)
			m.status = fmt.Sprintf("released %s, refs=%d", s.Path, refs)
			m.err = nil
			m.refresh()
		}

	case "e":
		if s := m.selectedRecord(); s != nil {
			m.mgr.Evict(s.Path)
			m.status = fmt.Sprintf("evicted %s", s.Path)
			m.err = nil
			m.refresh()
		}

	case "p":
		n := m.mgr.CollectUnused()
		m.status = fmt.Sprintf("purged %d unused records", n)
		m.err = nil
		m.refresh()
	}

	return m, nil
}

func (m *browserModel) selectedRecord() *registry.Snapshot {
	if len(m.records) == 0 || m.selected >= len(m.records) {
		return nil
	}
	return &m.records[m.selected]
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Asset Cache"))
	b.WriteString(" ")
	b.WriteString(m.root)
	b.WriteString(fmt.Sprintf("  (%d records, %d bytes tracked)\n\n",
		m.mgr.ResourceCount(), m.mgr.TotalMemoryUsage()))

	if len(m.records) == 0 {
		b.WriteString(helpStyle.Render("cache is empty"))
		b.WriteString("\n")
	}
	for i, s := range m.records {
		line := fmt.Sprintf("%s %s refs=%d mem=%d",
			pathStyle.Render(fmt.Sprintf("%-40s", s.Path)),
			stateStyle.Render(fmt.Sprintf("%-8s", s.State)),
			s.Refs, s.MemoryUsage)
		if i == m.selected && m.state == stateBrowse {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.state == stateAcquire {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter acquire • esc back"))
		return b.String()
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ select • a acquire • r release • e evict • p purge • q quit"))
	return b.String()
}

func runInteractive(mgr *manager.Manager, root string) error {
	p := tea.NewProgram(newBrowserModel(mgr, root), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

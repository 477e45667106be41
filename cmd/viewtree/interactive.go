package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/declview/viewcore"
	"github.com/declview/viewcore/flatten"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	traitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD580"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectTree modelState = iota
	stateShowLeaves
)

type interactiveModel struct {
	err      error
	opts     []flatten.Option
	samples  []sample
	filtered []sample
	filter   textinput.Model
	leaves   []viewcore.Leaf
	selected int
	scroll   int
	height   int
	state    modelState
}

type flattenedMsg struct {
	err    error
	leaves []viewcore.Leaf
}

func newInteractiveModel(opts []flatten.Option) *interactiveModel {
	all := samples()

	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.Prompt = "/ "
	filter.Width = 24
	filter.Focus()

	return &interactiveModel{
		opts:     opts,
		samples:  all,
		filtered: all,
		filter:   filter,
		height:   24,
		state:    stateSelectTree,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) flattenSelected() tea.Msg {
	s := m.filtered[m.selected]
	leaves, err := flatten.CollectLeaves(s.build(), m.opts...)
	return flattenedMsg{leaves: leaves, err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		// "q" stays available to the filter input while selecting.
		case "q":
			if m.state == stateShowLeaves {
				return m, tea.Quit
			}

		case "up", "ctrl+k":
			switch m.state {
			case stateSelectTree:
				if m.selected > 0 {
					m.selected--
				}
			case stateShowLeaves:
				if m.scroll > 0 {
					m.scroll--
				}
			}
			return m, nil

		case "down", "ctrl+j":
			switch m.state {
			case stateSelectTree:
				if m.selected < len(m.filtered)-1 {
					m.selected++
				}
			case stateShowLeaves:
				if m.scroll < len(m.leaves)-1 {
					m.scroll++
				}
			}
			return m, nil

		case "enter":
			if m.state == stateSelectTree && len(m.filtered) > 0 {
				return m, m.flattenSelected
			}

		case "esc":
			if m.state == stateShowLeaves {
				m.state = stateSelectTree
				m.leaves = nil
				m.scroll = 0
				m.err = nil
				return m, nil
			}
			return m, tea.Quit
		}

	case flattenedMsg:
		m.leaves = msg.leaves
		m.err = msg.err
		m.scroll = 0
		m.state = stateShowLeaves
		return m, nil
	}

	if m.state == stateSelectTree {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	if query == "" {
		m.filtered = m.samples
	} else {
		m.filtered = nil
		for _, s := range m.samples {
			if strings.Contains(strings.ToLower(s.name), query) ||
				strings.Contains(strings.ToLower(s.describe), query) {
				m.filtered = append(m.filtered, s)
			}
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = 0
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("View Tree Browser"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectTree:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		if len(m.filtered) == 0 {
			b.WriteString(helpStyle.Render("no matching trees"))
			b.WriteString("\n")
		}
		for i, s := range m.filtered {
			line := nameStyle.Render(s.name) + "  " + s.describe
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + s.name + "  " + s.describe))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • type to filter • enter flatten • esc quit"))

	case stateShowLeaves:
		s := m.filtered[m.selected]
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
			b.WriteString(helpStyle.Render("esc back • q quit"))
			break
		}

		b.WriteString(fmt.Sprintf("%s flattened to %d leaves\n\n", nameStyle.Render(s.name), len(m.leaves)))

		visible := m.height - 7
		if visible < 1 {
			visible = 1
		}
		end := m.scroll + visible
		if end > len(m.leaves) {
			end = len(m.leaves)
		}
		for i := m.scroll; i < end; i++ {
			l := m.leaves[i]
			b.WriteString(fmt.Sprintf("%3d  %s", i, typeStyle.Render(l.Type.String())))
			if l.Traits != 0 {
				b.WriteString(" " + traitStyle.Render("["+l.Traits.String()+"]"))
			}
			b.WriteString("  " + helpStyle.Render(l.Path.String()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func runInteractive(opts []flatten.Option) error {
	p := tea.NewProgram(newInteractiveModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

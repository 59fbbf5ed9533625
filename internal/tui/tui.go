// Package tui implements an interactive read-only browser for formed
// teams, built on bubbletea. One team is shown at a time; navigation
// never mutates the teams.
package tui

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hackmatch/teamforge/internal/match"
	"github.com/hackmatch/teamforge/internal/render"
)

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	All  key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next team"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous team"),
		),
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all teams"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the bubbletea model for the team browser.
type Model struct {
	teams    []match.Team
	renderer *render.Renderer
	keys     keyMap
	viewport viewport.Model
	index    int // -1 shows all teams
	ready    bool
}

// NewModel creates a browser over the given teams.
func NewModel(teams []match.Team, colorMode string) Model {
	return Model{
		teams:    teams,
		renderer: render.NewRenderer(colorMode),
		keys:     defaultKeyMap(),
		index:    -1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.index = m.wrap(m.index + 1)
			m.refresh()
		case key.Matches(msg, m.keys.Prev):
			m.index = m.wrap(m.index - 1)
			m.refresh()
		case key.Matches(msg, m.keys.All):
			m.index = -1
			m.refresh()
		}

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.refresh()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// wrap keeps the team index in [-1, len(teams)), where -1 is the
// all-teams view.
func (m Model) wrap(index int) int {
	if len(m.teams) == 0 {
		return -1
	}
	if index < -1 {
		return len(m.teams) - 1
	}
	if index >= len(m.teams) {
		return -1
	}
	return index
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

func (m Model) content() string {
	var buf bytes.Buffer
	teams := m.teams
	if m.index >= 0 && m.index < len(m.teams) {
		teams = m.teams[m.index : m.index+1]
	}
	if err := m.renderer.Render(&buf, teams); err != nil {
		return fmt.Sprintf("render failed: %v", err)
	}
	return buf.String()
}

// View implements tea.Model.
func (m Model) View() string {
	header := m.headerView()
	if !m.ready {
		return header + "\n" + m.content() + "\n" + m.footerView()
	}
	return header + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m Model) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Teamforge")
	position := "all teams"
	if m.index >= 0 {
		position = fmt.Sprintf("team %d of %d", m.index+1, len(m.teams))
	}
	return fmt.Sprintf("%s · %s\n", title, position)
}

func (m Model) footerView() string {
	help := "→/l next · ←/h prev · a all · q quit"
	return lipgloss.NewStyle().Faint(true).Render(help)
}

// Run starts the interactive browser and blocks until the user quits.
func Run(teams []match.Team, colorMode string) error {
	p := tea.NewProgram(NewModel(teams, colorMode), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

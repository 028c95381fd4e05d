package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/trash-tide/internal/content"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Seed      int64
	Pack      content.Pack
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m := newMenuModel(a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// --- Styles (deep-sea teal) ---
var (
	seafoam   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	brightSea = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimSea    = lipgloss.NewStyle().Foreground(lipgloss.Color("23"))
	border    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	alert     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// --- Menu model ---

type menuItem int

const (
	itemStart menuItem = iota
	itemQuit
)

type screen int

const (
	screenMenu screen = iota
	screenRun
)

type menuModel struct {
	cfg AppConfig
	idx int

	screen screen
	run    *runModel

	status string
}

func newMenuModel(cfg AppConfig) menuModel {
	return menuModel{cfg: cfg}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.screen == screenRun {
		return m.updateRun(keyMsg)
	}
	return m.updateMenu(keyMsg)
}

func (m menuModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.idx = (m.idx + 1) % 2
		return m, nil
	case "down", "j":
		m.idx = (m.idx + 1) % 2
		return m, nil
	case "enter":
		switch menuItem(m.idx) {
		case itemStart:
			if m.run == nil {
				run, err := newRunModel(m.cfg)
				if err != nil {
					m.status = fmt.Sprintf("Could not start a run: %v", err)
					return m, nil
				}
				m.run = run
			}
			m.screen = screenRun
			return m, nil
		case itemQuit:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) updateRun(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.screen = screenMenu
		m.status = "Run paused. Start again to resume the same session."
		return m, nil
	case "enter":
		quit := m.run.submit()
		if quit {
			return m, tea.Quit
		}
		return m, nil
	case "backspace":
		if len(m.run.input) > 0 {
			m.run.input = m.run.input[:len(m.run.input)-1]
		}
		return m, nil
	default:
		if msg.Type == tea.KeyRunes {
			m.run.input += string(msg.Runes)
		}
		if msg.Type == tea.KeySpace {
			m.run.input += " "
		}
		return m, nil
	}
}

func (m menuModel) View() string {
	if m.screen == screenRun {
		return m.run.view()
	}

	title := brightSea.Render("TRASH TIDE") + dimSea.Render("  the guardian's diary")
	ver := dimSea.Render(fmt.Sprintf("v%s  (%s)  %s", m.cfg.Version, m.cfg.Commit, m.cfg.BuildDate))

	items := []string{
		"Begin your guardianship",
		"Quit",
	}

	out := ""
	out += title + "\n" + ver + "\n"
	out += border.Render("----------------------------------------") + "\n\n"

	for i, it := range items {
		cursor := "  "
		line := it
		if i == m.idx {
			cursor = "> "
			line = brightSea.Render(it)
		} else {
			line = seafoam.Render(it)
		}
		out += cursor + line + "\n"
	}

	out += "\n" + border.Render("----------------------------------------") + "\n"
	out += dimSea.Render("↑/↓ to move, Enter to select, q to quit") + "\n"
	if m.status != "" {
		out += "\n" + seafoam.Render(m.status) + "\n"
	}
	return out
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// chrome is the height taken by tabs, report title, summary and help
const chrome = 8

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetSize(msg.Width-2, max(msg.Height-chrome, 3))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.NextHabit):
			if n := len(m.habits); n > 0 {
				m.habit = (m.habit + 1) % n
				m.load()
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevHabit):
			if n := len(m.habits); n > 0 {
				m.habit = (m.habit - 1 + n) % n
				m.load()
			}
			return m, nil
		case key.Matches(msg, m.keys.NextReport):
			m.view = (m.view + 1) % len(views)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.PrevReport):
			m.view = (m.view - 1 + len(views)) % len(views)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

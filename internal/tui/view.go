package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitlog/internal/render"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.habits) == 0 {
		return docStyle.Render("No habits found. Add a habit first.\n\n" + m.help.View(m))
	}

	var status string
	switch {
	case m.err != nil:
		status = dangerStyle.Render(fmt.Sprintf("Error: %v", m.err))
	case m.table.Len() > 0:
		status = summaryStyle.Render(render.FormatSummary(m.summary))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		reportStyle.Render(views[m.view].title),
		docStyle.Render(m.table.View()),
		status,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, h := range m.habits {
		if i == m.habit {
			tabs = append(tabs, activeTabStyle.Render(h.Name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(h.Name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

package records

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitlog/internal/models"
)

var columns = []table.Column{
	{Title: "Id", Width: 6},
	{Title: "Date", Width: 12},
	{Title: "Quantity", Width: 10},
	{Title: "Unit", Width: 12},
}

// Model is a scrollable table of report rows
type Model struct {
	table table.Model
	rows  []models.RecordWithHabit
}

func New(width, height int) Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return Model{table: t}
}

func (m *Model) SetRecords(rows []models.RecordWithHabit) {
	m.rows = rows
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row{strconv.FormatInt(r.ID, 10), r.Day(), strconv.Itoa(r.Quantity), r.Unit}
	}
	m.table.SetRows(out)
	m.table.GotoTop()
}

func (m *Model) SetSize(width, height int) {
	m.table.SetWidth(width)
	m.table.SetHeight(height)
}

// Selected returns the highlighted record, if any
func (m Model) Selected() (models.RecordWithHabit, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return models.RecordWithHabit{}, false
	}
	return m.rows[i], true
}

func (m Model) Len() int { return len(m.rows) }

// KeyBindings lists the table navigation keys for the help view
func (m Model) KeyBindings() []key.Binding {
	km := m.table.KeyMap
	return []key.Binding{km.LineUp, km.LineDown, km.GotoTop, km.GotoBottom}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.rows) == 0 {
		return "No records found."
	}
	return m.table.View()
}

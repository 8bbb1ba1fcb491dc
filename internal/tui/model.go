// Package tui is a read-only report browser. It cycles through habits and
// through the report types that need no input beyond the current date.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/storage"
	"github.com/julianstephens/habitlog/internal/tracker"
	"github.com/julianstephens/habitlog/internal/tui/components/records"
)

// recentDays is the window of the "last days" view
const recentDays = 30

// view is one preset report anchored on today
type view struct {
	title string
	build func(habitID int64, today time.Time) models.ReportRequest
}

var views = []view{
	{
		title: fmt.Sprintf("Last %d days", recentDays),
		build: func(id int64, today time.Time) models.ReportRequest {
			return models.ReportRequest{Type: models.ReportDateToToday, HabitID: id, Date: today.AddDate(0, 0, -recentDays)}
		},
	},
	{
		title: "This month",
		build: func(id int64, today time.Time) models.ReportRequest {
			return models.ReportRequest{Type: models.ReportTotalForMonth, HabitID: id, Month: int(today.Month()), Year: today.Year()}
		},
	},
	{
		title: "Year to date",
		build: func(id int64, today time.Time) models.ReportRequest {
			return models.ReportRequest{Type: models.ReportYearToDate, HabitID: id, Date: today, Year: today.Year()}
		},
	},
	{
		title: "Last year",
		build: func(id int64, today time.Time) models.ReportRequest {
			return models.ReportRequest{Type: models.ReportTotalForYear, HabitID: id, Year: today.Year() - 1}
		},
	},
	{
		title: "All records",
		build: func(id int64, _ time.Time) models.ReportRequest {
			return models.ReportRequest{Type: models.ReportTotal, HabitID: id}
		},
	},
}

type Model struct {
	store   storage.Provider
	today   time.Time
	habits  []models.Habit
	habit   int
	view    int
	table   records.Model
	summary models.Summary
	err     error

	keys     KeyMap
	help     help.Model
	quitting bool
	width    int
	height   int
}

// NewModel loads the habit list and the first report
func NewModel(store storage.Provider, today time.Time) (Model, error) {
	habits, err := store.GetAllHabits()
	if err != nil {
		return Model{}, fmt.Errorf("failed to load habits: %w", err)
	}

	m := Model{
		store:  store,
		today:  today,
		habits: habits,
		table:  records.New(0, 10),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.load()
	return m, nil
}

// load runs the selected report. Errors are kept for the view instead of
// ending the program.
// reload re-reads the habit list, keeping the selection in range
func (m *Model) reload() {
	habits, err := m.store.GetAllHabits()
	if err != nil {
		logger.Error("Browser failed to reload habits", "error", err)
		m.err = err
		return
	}
	m.habits = habits
	if m.habit >= len(habits) {
		m.habit = max(len(habits)-1, 0)
	}
	m.load()
}

func (m *Model) load() {
	if len(m.habits) == 0 {
		m.err = nil
		m.summary = models.Summary{}
		m.table.SetRecords(nil)
		return
	}
	h := m.habits[m.habit]
	req := views[m.view].build(h.ID, m.today)

	rows, summary, err := tracker.Fetch(m.store, req)
	if err != nil {
		logger.Error("Browser report failed", "habit", h.Name, "type", req.Type, "error", err)
		m.err = err
		m.table.SetRecords(nil)
		m.summary = models.Summary{}
		return
	}
	m.err = nil
	m.summary = summary
	m.table.SetRecords(rows)
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.NextHabit, m.keys.NextReport, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.NextHabit, m.keys.PrevHabit, m.keys.NextReport, m.keys.PrevReport},
		m.table.KeyBindings(),
		{m.keys.Reload, m.keys.Help, m.keys.Quit},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/habitlog/internal/models"
)

// Kind classifies a one-line message
type Kind int

const (
	Info Kind = iota
	Success
	Warning
	Failure
)

// Renderer is the presentation sink for habits, records and reports
type Renderer interface {
	Report(rows []models.RecordWithHabit, summary models.Summary)
	Habits(habits []models.Habit)
	Records(rows []models.RecordWithHabit)
	Message(kind Kind, text string)
}

type styles struct {
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
	title   lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			header:  plain.Bold(true).Padding(0, 1),
			cell:    plain.Padding(0, 1),
			border:  plain,
			title:   plain.Bold(true),
			info:    plain,
			success: plain,
			warning: plain,
			failure: plain,
		}
	}
	return styles{
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1),
		cell:    lipgloss.NewStyle().Padding(0, 1),
		border:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		title:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// Table renders with lipgloss tables to a writer
type Table struct {
	w      io.Writer
	styles styles
}

func NewTable(w io.Writer, noColor bool) *Table {
	return &Table{w: w, styles: newStyles(noColor)}
}

func (t *Table) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.styles.border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.styles.header
			}
			return t.styles.cell
		}).
		Headers(headers...)
}

func (t *Table) Report(rows []models.RecordWithHabit, summary models.Summary) {
	if len(rows) == 0 {
		t.Message(Info, "No records found.")
		return
	}

	tbl := t.newTable("Id", "Date", "Quantity", "Unit")
	for _, r := range rows {
		tbl.Row(strconv.FormatInt(r.ID, 10), r.Day(), strconv.Itoa(r.Quantity), r.Unit)
	}

	fmt.Fprintln(t.w, t.styles.title.Render(summary.HabitName))
	fmt.Fprintln(t.w, tbl.Render())
	fmt.Fprintln(t.w, FormatSummary(summary))
}

// FormatSummary describes a report summary in one line
func FormatSummary(s models.Summary) string {
	noun := "records"
	if s.Count == 1 {
		noun = "record"
	}
	return fmt.Sprintf("%s: %d %s over %d %s", s.HabitName, s.Total, s.Unit, s.Count, noun)
}

func (t *Table) Habits(habits []models.Habit) {
	if len(habits) == 0 {
		t.Message(Info, "No habits found.")
		return
	}

	tbl := t.newTable("Id", "Name", "Unit")
	for _, h := range habits {
		tbl.Row(strconv.FormatInt(h.ID, 10), h.Name, h.Unit)
	}
	fmt.Fprintln(t.w, tbl.Render())
}

func (t *Table) Records(rows []models.RecordWithHabit) {
	if len(rows) == 0 {
		t.Message(Info, "No records found.")
		return
	}

	tbl := t.newTable("Id", "Date", "Habit", "Quantity", "Unit")
	for _, r := range rows {
		tbl.Row(strconv.FormatInt(r.ID, 10), r.Day(), r.HabitName, strconv.Itoa(r.Quantity), r.Unit)
	}
	fmt.Fprintln(t.w, tbl.Render())
}

func (t *Table) Message(kind Kind, text string) {
	var style lipgloss.Style
	switch kind {
	case Success:
		style = t.styles.success
	case Warning:
		style = t.styles.warning
	case Failure:
		style = t.styles.failure
	default:
		style = t.styles.info
	}
	fmt.Fprintln(t.w, style.Render(text))
}

package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habitlog/internal/models"
)

func record(id int64, date string, qty int) models.RecordWithHabit {
	d, _ := time.Parse("2006-01-02", date)
	return models.RecordWithHabit{
		Record:    models.Record{ID: id, Date: d, Quantity: qty, HabitID: 1},
		HabitName: "Reading",
		Unit:      "Pages",
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	r := NewTable(&buf, true)

	rows := []models.RecordWithHabit{record(1, "2024-03-01", 20), record(2, "2024-03-02", 15)}
	r.Report(rows, models.Summarize(models.Habit{ID: 1, Name: "Reading", Unit: "Pages"}, rows))

	out := buf.String()
	for _, want := range []string{"Reading", "2024-03-01", "2024-03-02", "20", "15", "Reading: 35 Pages over 2 records"} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
}

func TestReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewTable(&buf, true).Report(nil, models.Summary{})
	if got := strings.TrimSpace(buf.String()); got != "No records found." {
		t.Errorf("empty report = %q", got)
	}
}

func TestFormatSummarySingular(t *testing.T) {
	got := FormatSummary(models.Summary{Count: 1, Total: 7, Unit: "Hours", HabitName: "Coding"})
	if got != "Coding: 7 Hours over 1 record" {
		t.Errorf("FormatSummary() = %q", got)
	}
}

func TestHabitsAndRecords(t *testing.T) {
	var buf bytes.Buffer
	r := NewTable(&buf, true)

	r.Habits([]models.Habit{{ID: 3, Name: "Running", Unit: "Meters"}})
	r.Records([]models.RecordWithHabit{record(9, "2024-01-01", 5)})

	out := buf.String()
	for _, want := range []string{"Running", "Meters", "2024-01-01", "Reading", "Pages"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	r.Habits(nil)
	r.Records(nil)
	if got := buf.String(); got != "No habits found.\nNo records found.\n" {
		t.Errorf("empty listings = %q", got)
	}
}

func TestMessage(t *testing.T) {
	var buf bytes.Buffer
	NewTable(&buf, true).Message(Success, "Habit added.")
	if got := buf.String(); got != "Habit added.\n" {
		t.Errorf("Message() = %q", got)
	}
}

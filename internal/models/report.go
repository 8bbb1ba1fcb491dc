package models

import (
	"fmt"
	"time"
)

// ReportType selects the date predicate applied to a habit's records
type ReportType int

const (
	ReportDateToToday ReportType = iota + 1
	ReportDateToDate
	ReportTotalForMonth
	ReportYearToDate
	ReportTotalForYear
	ReportTotal
)

// ReportTypes lists every report type in menu order
var ReportTypes = []ReportType{
	ReportDateToToday,
	ReportDateToDate,
	ReportTotalForMonth,
	ReportYearToDate,
	ReportTotalForYear,
	ReportTotal,
}

var reportTypeNames = map[ReportType]string{
	ReportDateToToday:   "date-to-today",
	ReportDateToDate:    "date-to-date",
	ReportTotalForMonth: "month",
	ReportYearToDate:    "year-to-date",
	ReportTotalForYear:  "year",
	ReportTotal:         "total",
}

var reportTypeLabels = map[ReportType]string{
	ReportDateToToday:   "From a specific date to today",
	ReportDateToDate:    "From a specific date to another specific date",
	ReportTotalForMonth: "Total of a given month",
	ReportYearToDate:    "Year to date",
	ReportTotalForYear:  "Total for a specific year",
	ReportTotal:         "All records",
}

func (t ReportType) String() string {
	if name, ok := reportTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ReportType(%d)", int(t))
}

// Label is the menu text for the report type
func (t ReportType) Label() string {
	if label, ok := reportTypeLabels[t]; ok {
		return label
	}
	return t.String()
}

// ParseReportType maps a CLI name (e.g. "year-to-date") to a ReportType
func ParseReportType(s string) (ReportType, error) {
	for t, name := range reportTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown report type: %s", s)
}

// ReportRequest describes one report. Only the fields relevant to Type are read.
type ReportRequest struct {
	Type      ReportType
	HabitID   int64
	Date      time.Time
	StartDate time.Time
	EndDate   time.Time
	Month     int
	Year      int
}

// Summary aggregates the rows of a report
type Summary struct {
	Count     int
	Total     int64
	Unit      string
	HabitName string
}

// Summarize computes count and quantity total over report rows
func Summarize(habit Habit, rows []RecordWithHabit) Summary {
	s := Summary{
		Count:     len(rows),
		Unit:      habit.Unit,
		HabitName: habit.Name,
	}
	for _, r := range rows {
		s.Total += int64(r.Quantity)
	}
	return s
}

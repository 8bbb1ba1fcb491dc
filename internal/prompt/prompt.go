// Package prompt collects interactive input. Every prompt returns a Result
// whose Exit flag reports that the user abandoned the current flow, either by
// typing the exit sentinel or by aborting the form.
package prompt

import (
	"time"

	"github.com/julianstephens/habitlog/internal/models"
)

// Result is either a collected value or an early exit
type Result[T any] struct {
	Value T
	Exit  bool
}

func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

func Exit[T any]() Result[T] { return Result[T]{Exit: true} }

// MenuItem is an entry of the main menu
type MenuItem int

const (
	MenuAddHabit MenuItem = iota + 1
	MenuDeleteHabit
	MenuUpdateHabit
	MenuReport
	MenuAddRecord
	MenuDeleteRecord
	MenuViewRecords
	MenuUpdateRecord
	MenuQuit
)

// MenuItems lists the main menu in display order
var MenuItems = []MenuItem{
	MenuAddHabit,
	MenuDeleteHabit,
	MenuUpdateHabit,
	MenuReport,
	MenuAddRecord,
	MenuDeleteRecord,
	MenuViewRecords,
	MenuUpdateRecord,
	MenuQuit,
}

func (m MenuItem) String() string {
	switch m {
	case MenuAddHabit:
		return "Add Habit"
	case MenuDeleteHabit:
		return "Delete Habit"
	case MenuUpdateHabit:
		return "Update Habit"
	case MenuReport:
		return "Create Habit Report"
	case MenuAddRecord:
		return "Add Record"
	case MenuDeleteRecord:
		return "Delete Record"
	case MenuViewRecords:
		return "View Records"
	case MenuUpdateRecord:
		return "Update Record"
	case MenuQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// DateParser turns raw input into a date, rejecting out-of-range values
type DateParser func(string) (time.Time, error)

// Prompter is the interactive input source used by the tracker
type Prompter interface {
	Menu() (Result[MenuItem], error)
	Habit(habits []models.Habit) (Result[int64], error)
	Record(records []models.RecordWithHabit) (Result[int64], error)
	ReportType() (Result[models.ReportType], error)
	Date(title string, parse DateParser) (Result[time.Time], error)
	Month() (Result[int], error)
	Year() (Result[int], error)
	Quantity() (Result[int], error)
	Text(title string) (Result[string], error)
	Confirm(title string) (Result[bool], error)
}

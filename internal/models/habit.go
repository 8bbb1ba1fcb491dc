package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
)

// Habit is a named activity measured in a fixed unit
type Habit struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if strings.TrimSpace(h.Unit) == "" {
		return fmt.Errorf("habit unit cannot be empty")
	}
	return nil
}

// Record is one dated quantity logged against a habit
type Record struct {
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"`
	Quantity int       `json:"quantity"`
	HabitID  int64     `json:"habit_id"`
}

func (r *Record) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("record date cannot be empty")
	}
	if r.Quantity < 0 {
		return fmt.Errorf("quantity must be zero or greater")
	}
	if r.HabitID <= 0 {
		return fmt.Errorf("record must reference a habit")
	}
	return nil
}

// Day returns the record date in storage format (YYYY-MM-DD)
func (r Record) Day() string {
	return r.Date.Format(constants.DateFormat)
}

// RecordWithHabit is a record joined with the display fields of its habit
type RecordWithHabit struct {
	Record
	HabitName string `json:"habit_name"`
	Unit      string `json:"unit"`
}

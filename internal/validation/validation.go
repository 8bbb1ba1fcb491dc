package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitlog/internal/models"
)

// ConflictType represents the type of data problem found
type ConflictType string

const (
	ConflictDuplicateHabitName ConflictType = "duplicate_habit_name"
	ConflictFutureRecord       ConflictType = "future_record"
	ConflictNegativeQuantity   ConflictType = "negative_quantity"
	ConflictMissingHabit       ConflictType = "missing_habit"
)

// Conflict represents a detected problem in habits or records
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string // YYYY-MM-DD (if applicable)
	Items       []string
	RecordIDs   []int64
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

// Validator checks stored habits and records for inconsistencies
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Validate scans habits and records. Records older than the entry window
// are not flagged; the window only applies when a record is entered.
func (v *Validator) Validate(habits []models.Habit, records []models.RecordWithHabit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	byName := make(map[string][]string)
	known := make(map[int64]bool, len(habits))
	for _, h := range habits {
		known[h.ID] = true
		key := strings.ToLower(strings.TrimSpace(h.Name))
		if key == "" {
			continue
		}
		byName[key] = append(byName[key], fmt.Sprint(h.ID))
	}
	for _, h := range habits {
		key := strings.ToLower(strings.TrimSpace(h.Name))
		ids := byName[key]
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHabitName,
				Description: fmt.Sprintf("Duplicate habit name: %q (IDs: %s)", h.Name, strings.Join(ids, ", ")),
				Items:       []string{h.Name},
			})
			delete(byName, key)
		}
	}

	now := Today()
	for _, r := range records {
		if r.Date.After(now) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictFutureRecord,
				Description: fmt.Sprintf("Record %d for %q is dated in the future (%s)", r.ID, r.HabitName, r.Day()),
				Date:        r.Day(),
				Items:       []string{r.HabitName},
				RecordIDs:   []int64{r.ID},
			})
		}
		if r.Quantity < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNegativeQuantity,
				Description: fmt.Sprintf("Record %d for %q has a negative quantity (%d)", r.ID, r.HabitName, r.Quantity),
				Date:        r.Day(),
				Items:       []string{r.HabitName},
				RecordIDs:   []int64{r.ID},
			})
		}
		if !known[r.HabitID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingHabit,
				Description: fmt.Sprintf("Record %d references missing habit %d", r.ID, r.HabitID),
				Date:        r.Day(),
				RecordIDs:   []int64{r.ID},
			})
		}
	}

	return result
}

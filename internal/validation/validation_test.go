package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/habitlog/internal/models"
)

func fixClock(t *testing.T, day string) {
	t.Helper()
	now, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("bad fixture date: %v", err)
	}
	prev := Clock
	Clock = func() time.Time { return now.Add(15 * time.Hour) }
	t.Cleanup(func() { Clock = prev })
}

func TestParseRecordDate(t *testing.T) {
	fixClock(t, "2024-06-15")

	tests := []struct {
		name    string
		input   string
		wantErr error
		valid   bool
	}{
		{name: "today", input: "2024-06-15", valid: true},
		{name: "exactly one year back", input: "2023-06-15", valid: true},
		{name: "padded input", input: "  2024-01-02 ", valid: true},
		{name: "tomorrow", input: "2024-06-16", wantErr: ErrFutureDate},
		{name: "over a year back", input: "2023-06-14", wantErr: ErrTooOld},
		{name: "empty", input: "", wantErr: ErrEmpty},
		{name: "wrong layout", input: "15-06-2024"},
		{name: "impossible day", input: "2024-02-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecordDate(tt.input)
			if tt.valid {
				if err != nil {
					t.Errorf("ParseRecordDate(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ParseRecordDate(%q) expected error", tt.input)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseRecordDate(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseDayAllowsAnyRange(t *testing.T) {
	fixClock(t, "2024-06-15")
	if _, err := ParseDay("1999-01-01"); err != nil {
		t.Errorf("ParseDay rejected an old date: %v", err)
	}
	if _, err := ParseDay("2030-01-01"); err != nil {
		t.Errorf("ParseDay rejected a future date: %v", err)
	}
	if _, err := ParsePastDay("2030-01-01"); !errors.Is(err, ErrFutureDate) {
		t.Errorf("ParsePastDay error = %v, want ErrFutureDate", err)
	}
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) error
		input string
		ok    bool
	}{
		{"quantity zero", func(s string) error { _, err := ParseQuantity(s); return err }, "0", true},
		{"quantity positive", func(s string) error { _, err := ParseQuantity(s); return err }, "2000", true},
		{"quantity negative", func(s string) error { _, err := ParseQuantity(s); return err }, "-1", false},
		{"quantity text", func(s string) error { _, err := ParseQuantity(s); return err }, "ten", false},
		{"month low", func(s string) error { _, err := ParseMonth(s); return err }, "1", true},
		{"month high", func(s string) error { _, err := ParseMonth(s); return err }, "12", true},
		{"month zero", func(s string) error { _, err := ParseMonth(s); return err }, "0", false},
		{"month thirteen", func(s string) error { _, err := ParseMonth(s); return err }, "13", false},
		{"year", func(s string) error { _, err := ParseYear(s); return err }, "2024", true},
		{"year too large", func(s string) error { _, err := ParseYear(s); return err }, "10000", false},
		{"id", func(s string) error { _, err := ParseID(s); return err }, "7", true},
		{"id zero", func(s string) error { _, err := ParseID(s); return err }, "0", false},
		{"id empty", func(s string) error { _, err := ParseID(s); return err }, " ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			if tt.ok && err != nil {
				t.Errorf("unexpected error for %q: %v", tt.input, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Reading"); err != nil {
		t.Errorf("ValidateName(Reading) = %v", err)
	}
	if err := ValidateName("   "); !errors.Is(err, ErrEmpty) {
		t.Errorf("ValidateName(blank) = %v, want ErrEmpty", err)
	}
}

func TestValidate_DuplicateHabitNames(t *testing.T) {
	validator := New()

	habits := []models.Habit{
		{ID: 1, Name: "Reading", Unit: "Pages"},
		{ID: 2, Name: "Running", Unit: "Meters"},
		{ID: 3, Name: "reading ", Unit: "Minutes"},
	}

	result := validator.Validate(habits, nil)
	if len(result.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %s", len(result.Conflicts), result.FormatReport())
	}
	if result.Conflicts[0].Type != ConflictDuplicateHabitName {
		t.Errorf("expected ConflictDuplicateHabitName, got %s", result.Conflicts[0].Type)
	}
}

func TestValidate_Records(t *testing.T) {
	fixClock(t, "2024-06-15")
	validator := New()

	habits := []models.Habit{{ID: 1, Name: "Reading", Unit: "Pages"}}
	rec := func(id, habit int64, date string, qty int) models.RecordWithHabit {
		d, _ := time.Parse("2006-01-02", date)
		return models.RecordWithHabit{
			Record:    models.Record{ID: id, HabitID: habit, Date: d, Quantity: qty},
			HabitName: "Reading",
		}
	}
	records := []models.RecordWithHabit{
		rec(1, 1, "2024-06-01", 10),
		rec(2, 1, "2024-07-01", 10),
		rec(3, 1, "2024-06-02", -5),
		rec(4, 9, "2024-06-03", 1),
		rec(5, 1, "2020-01-01", 1),
	}

	result := validator.Validate(habits, records)

	got := map[ConflictType][]int64{}
	for _, c := range result.Conflicts {
		got[c.Type] = append(got[c.Type], c.RecordIDs...)
	}
	if ids := got[ConflictFutureRecord]; len(ids) != 1 || ids[0] != 2 {
		t.Errorf("future records = %v, want [2]", ids)
	}
	if ids := got[ConflictNegativeQuantity]; len(ids) != 1 || ids[0] != 3 {
		t.Errorf("negative records = %v, want [3]", ids)
	}
	if ids := got[ConflictMissingHabit]; len(ids) != 1 || ids[0] != 4 {
		t.Errorf("orphaned records = %v, want [4]", ids)
	}
}

func TestFormatReport_NoConflicts(t *testing.T) {
	result := New().Validate(nil, nil)
	if result.HasConflicts() {
		t.Fatal("expected no conflicts")
	}
	if got := result.FormatReport(); got != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", got)
	}
}

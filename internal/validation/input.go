package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
)

var (
	ErrEmpty      = errors.New("input cannot be empty")
	ErrFutureDate = errors.New("date cannot be in the future")
	ErrTooOld     = errors.New("date is too far in the past")
)

// Clock returns the current time; tests replace it
var Clock = time.Now

// Today is the current calendar day at UTC midnight
func Today() time.Time {
	y, m, d := Clock().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD date with no range restriction
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmpty
	}
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParsePastDay parses a date that must not be after today
func ParsePastDay(s string) (time.Time, error) {
	t, err := ParseDay(s)
	if err != nil {
		return time.Time{}, err
	}
	if t.After(Today()) {
		return time.Time{}, ErrFutureDate
	}
	return t, nil
}

// ParseRecordDate parses a record date: not in the future and no more than
// MaxRecordAgeYears before today.
func ParseRecordDate(s string) (time.Time, error) {
	t, err := ParsePastDay(s)
	if err != nil {
		return time.Time{}, err
	}
	if err := CheckRecordDate(t); err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// CheckRecordDate applies the record date window to an already parsed date
func CheckRecordDate(t time.Time) error {
	now := Today()
	if t.After(now) {
		return ErrFutureDate
	}
	if t.Before(now.AddDate(-constants.MaxRecordAgeYears, 0, 0)) {
		return fmt.Errorf("%w: records may go back at most %d year(s)", ErrTooOld, constants.MaxRecordAgeYears)
	}
	return nil
}

func ParseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q, expected a whole number", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("quantity must be zero or greater")
	}
	return n, nil
}

func ParseMonth(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month %q, expected 1-12", s)
	}
	return n, nil
}

func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 9999 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return n, nil
}

// ParseID parses a positive row id
func ParseID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid id %q, expected a positive number", s)
	}
	return n, nil
}

// ValidateName rejects blank habit names and units
func ValidateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmpty
	}
	return nil
}

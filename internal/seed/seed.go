package seed

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/storage"
)

// ErrNotEmpty is returned when the database already has habits or records
var ErrNotEmpty = errors.New("database already contains data")

// Habits are the sample habits inserted by Run
var Habits = []models.Habit{
	{Name: "Walking", Unit: "Steps"},
	{Name: "Running", Unit: "Meters"},
	{Name: "Reading", Unit: "Pages"},
	{Name: "Meditating", Unit: "Minutes"},
	{Name: "Coding", Unit: "Hours"},
	{Name: "Chocolate", Unit: "Grams"},
	{Name: "Drinking Water", Unit: "Milliliters"},
	{Name: "Glasses of Wine", Unit: "Milliliters"},
}

type Result struct {
	Habits  int
	Records int
}

// Run fills an empty database with sample habits and SeedRecordCount random
// records dated within the last year of today.
func Run(store storage.Provider, rng *rand.Rand, today time.Time) (Result, error) {
	habitCount, err := store.CountHabits()
	if err != nil {
		return Result{}, err
	}
	recordCount, err := store.CountRecords()
	if err != nil {
		return Result{}, err
	}
	if habitCount > 0 || recordCount > 0 {
		return Result{}, fmt.Errorf("%w (%d habits, %d records)", ErrNotEmpty, habitCount, recordCount)
	}

	ids := make([]int64, 0, len(Habits))
	for _, h := range Habits {
		id, err := store.AddHabit(h)
		if err != nil {
			return Result{Habits: len(ids)}, fmt.Errorf("failed to add habit %q: %w", h.Name, err)
		}
		ids = append(ids, id)
	}

	y, m, d := today.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(-constants.MaxRecordAgeYears, 0, 0)
	span := int(end.Sub(start).Hours()/24) + 1

	res := Result{Habits: len(ids)}
	for range constants.SeedRecordCount {
		record := models.Record{
			HabitID:  ids[rng.IntN(len(ids))],
			Date:     start.AddDate(0, 0, rng.IntN(span)),
			Quantity: constants.SeedMinQuantity + rng.IntN(constants.SeedMaxQuantity-constants.SeedMinQuantity+1),
		}
		if _, err := store.AddRecord(record); err != nil {
			return res, fmt.Errorf("failed to add record: %w", err)
		}
		res.Records++
	}

	logger.Info("Seeded database", "habits", res.Habits, "records", res.Records)
	return res, nil
}

package storage

import (
	"errors"

	"github.com/julianstephens/habitlog/internal/migration"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/query"
)

// ErrNotFound is returned when a habit or record id does not exist
var ErrNotFound = errors.New("not found")

// Executor runs prepared queries.
// ExecuteQuery returns an empty slice, not an error, when no rows match.
type Executor interface {
	ExecuteQuery(q query.Query) ([]Row, error)
	ExecuteUpdate(q query.Query) (int64, error)
}

type Provider interface {
	Executor

	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string

	// Habits
	AddHabit(models.Habit) (int64, error)
	GetHabit(id int64) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	DeleteHabit(id int64) error
	CountHabits() (int, error)

	// Records
	AddRecord(models.Record) (int64, error)
	GetRecord(id int64) (models.RecordWithHabit, error)
	GetAllRecords() ([]models.RecordWithHabit, error)
	DeleteRecord(id int64) error
	CountRecords() (int, error)

	// Diagnostics
	SchemaStatus() (migration.Status, error)
	ForeignKeysEnabled() (bool, error)
	OrphanedRecords() (int, error)
}

package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/storage"
)

func (s *Store) AddHabit(habit models.Habit) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO habits (Name, MeasurementUnit) VALUES (:name, :unit)",
		sql.Named("name", habit.Name), sql.Named("unit", habit.Unit))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *Store) GetHabit(id int64) (models.Habit, error) {
	var h models.Habit
	err := s.db.QueryRow(
		"SELECT Id, Name, MeasurementUnit FROM habits WHERE Id = ?", id,
	).Scan(&h.ID, &h.Name, &h.Unit)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("habit %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query("SELECT Id, Name, MeasurementUnit FROM habits ORDER BY Id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Unit); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// DeleteHabit removes the habit; its records go with it via ON DELETE CASCADE
func (s *Store) DeleteHabit(id int64) error {
	result, err := s.db.Exec("DELETE FROM habits WHERE Id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) CountHabits() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&n)
	return n, err
}

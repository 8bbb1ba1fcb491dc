package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/query"
	"github.com/julianstephens/habitlog/internal/storage"
)

const recordJoin = `
	SELECT r.Id, r.Date, r.Quantity, r.HabitId, h.Name, h.MeasurementUnit
	FROM records r JOIN habits h ON h.Id = r.HabitId`

// AddRecord inserts a record. A HabitID with no habit fails the foreign key.
func (s *Store) AddRecord(record models.Record) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO records (Date, Quantity, HabitId) VALUES (:date, :quantity, :habitId)",
		sql.Named("date", record.Day()),
		sql.Named("quantity", record.Quantity),
		sql.Named("habitId", record.HabitID))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *Store) GetRecord(id int64) (models.RecordWithHabit, error) {
	rows, err := s.ExecuteQuery(query.Query{
		SQL:    recordJoin + " WHERE r.Id = :id",
		Params: query.NewParams(query.Param{Name: "id", Value: query.Int(id)}),
	})
	if err != nil {
		return models.RecordWithHabit{}, err
	}
	if len(rows) == 0 {
		return models.RecordWithHabit{}, fmt.Errorf("record %d: %w", id, storage.ErrNotFound)
	}
	return rows[0].RecordWithHabit()
}

func (s *Store) GetAllRecords() ([]models.RecordWithHabit, error) {
	rows, err := s.ExecuteQuery(query.Query{SQL: recordJoin + " ORDER BY r.Date ASC, r.Id ASC"})
	if err != nil {
		return nil, err
	}
	return storage.RecordsFromRows(rows)
}

func (s *Store) DeleteRecord(id int64) error {
	result, err := s.db.Exec("DELETE FROM records WHERE Id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("record %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) CountRecords() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return n, err
}

package storage

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/models"
)

// Row is one result row keyed by column name
type Row struct {
	columns []string
	values  map[string]any
}

func NewRow(columns []string, values []any) Row {
	r := Row{columns: columns, values: make(map[string]any, len(columns))}
	for i, c := range columns {
		r.values[c] = values[i]
	}
	return r
}

func (r Row) Columns() []string { return r.columns }

func (r Row) Int64(column string) (int64, error) {
	switch v := r.values[column].(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case nil:
		return 0, fmt.Errorf("column %s is null or missing", column)
	default:
		return 0, fmt.Errorf("column %s: expected integer, got %T", column, v)
	}
}

func (r Row) Text(column string) (string, error) {
	switch v := r.values[column].(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", fmt.Errorf("column %s is null or missing", column)
	default:
		return "", fmt.Errorf("column %s: expected text, got %T", column, v)
	}
}

func (r Row) Date(column string) (time.Time, error) {
	s, err := r.Text(column)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %s: %w", column, err)
	}
	return t, nil
}

// RecordWithHabit decodes a row of the report/record join
// (Id, Date, Quantity, HabitId, Name, MeasurementUnit).
func (r Row) RecordWithHabit() (models.RecordWithHabit, error) {
	var (
		rec models.RecordWithHabit
		err error
		qty int64
	)
	if rec.ID, err = r.Int64("Id"); err != nil {
		return rec, err
	}
	if rec.Date, err = r.Date("Date"); err != nil {
		return rec, err
	}
	if qty, err = r.Int64("Quantity"); err != nil {
		return rec, err
	}
	rec.Quantity = int(qty)
	if rec.HabitID, err = r.Int64("HabitId"); err != nil {
		return rec, err
	}
	if rec.HabitName, err = r.Text("Name"); err != nil {
		return rec, err
	}
	if rec.Unit, err = r.Text("MeasurementUnit"); err != nil {
		return rec, err
	}
	return rec, nil
}

// RecordsFromRows decodes every row with RecordWithHabit
func RecordsFromRows(rows []Row) ([]models.RecordWithHabit, error) {
	out := make([]models.RecordWithHabit, 0, len(rows))
	for i, row := range rows {
		rec, err := row.RecordWithHabit()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

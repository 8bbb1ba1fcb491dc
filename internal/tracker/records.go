package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/query"
	"github.com/julianstephens/habitlog/internal/render"
	"github.com/julianstephens/habitlog/internal/validation"
)

// AddRecord logs a quantity against an existing habit
func (t *Tracker) AddRecord(ctx context.Context, record models.Record) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := record.Validate(); err != nil {
		return 0, err
	}
	if err := validation.CheckRecordDate(record.Date); err != nil {
		return 0, err
	}

	habit, err := t.store.GetHabit(record.HabitID)
	if err != nil {
		return 0, err
	}

	id, err := t.store.AddRecord(record)
	if err != nil {
		return 0, fmt.Errorf("failed to add record: %w", err)
	}
	logger.Info("Added record", "id", id, "habit", habit.Name, "date", record.Day(), "quantity", record.Quantity)
	t.out.Message(render.Success, fmt.Sprintf("Logged %d %s of %s on %s.", record.Quantity, habit.Unit, habit.Name, record.Day()))
	return id, nil
}

func (t *Tracker) AddRecordInteractive(ctx context.Context) error {
	habits, err := t.store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	if len(habits) == 0 {
		t.out.Message(render.Warning, "No habits found. Add a habit first.")
		return nil
	}

	var record models.Record
	if ok, err := into(&record.HabitID)(t.prompt.Habit(habits)); !ok {
		return err
	}
	if ok, err := into(&record.Date)(t.prompt.Date("Date of the record", validation.ParseRecordDate)); !ok {
		return err
	}
	if ok, err := into(&record.Quantity)(t.prompt.Quantity()); !ok {
		return err
	}
	_, err = t.AddRecord(ctx, record)
	return err
}

// UpdateRecord writes only the fields set in changes
func (t *Tracker) UpdateRecord(ctx context.Context, changes query.RecordChanges) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if changes.Date != nil {
		if err := validation.CheckRecordDate(*changes.Date); err != nil {
			return err
		}
	}
	if changes.Quantity != nil && *changes.Quantity < 0 {
		return fmt.Errorf("quantity must be zero or greater")
	}
	return t.applyUpdate(query.EntityRecord, changes.Params())
}

func (t *Tracker) UpdateRecordInteractive(ctx context.Context) error {
	records, err := t.store.GetAllRecords()
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}
	if len(records) == 0 {
		t.out.Message(render.Warning, "No records found.")
		return nil
	}

	changes := query.RecordChanges{}
	if ok, err := into(&changes.ID)(t.prompt.Record(records)); !ok {
		return err
	}

	var change bool
	if ok, err := into(&change)(t.prompt.Confirm("Change the date?")); !ok {
		return err
	}
	if change {
		var date time.Time
		if ok, err := into(&date)(t.prompt.Date("New date", validation.ParseRecordDate)); !ok {
			return err
		}
		changes.Date = &date
	}

	if ok, err := into(&change)(t.prompt.Confirm("Change the quantity?")); !ok {
		return err
	}
	if change {
		var qty int
		if ok, err := into(&qty)(t.prompt.Quantity()); !ok {
			return err
		}
		changes.Quantity = &qty
	}

	return t.UpdateRecord(ctx, changes)
}

func (t *Tracker) DeleteRecord(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.store.DeleteRecord(id); err != nil {
		return err
	}
	logger.Info("Deleted record", "id", id)
	t.out.Message(render.Success, fmt.Sprintf("Deleted record %d.", id))
	return nil
}

func (t *Tracker) DeleteRecordInteractive(ctx context.Context) error {
	records, err := t.store.GetAllRecords()
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}
	if len(records) == 0 {
		t.out.Message(render.Warning, "No records found.")
		return nil
	}

	var id int64
	if ok, err := into(&id)(t.prompt.Record(records)); !ok {
		return err
	}
	return t.DeleteRecord(ctx, id)
}

// ListRecords shows every record, oldest first
func (t *Tracker) ListRecords(ctx context.Context) error {
	return t.listRecords(ctx, 0)
}

func (t *Tracker) ListHabitRecords(ctx context.Context, habitID int64) error {
	return t.listRecords(ctx, habitID)
}

func (t *Tracker) listRecords(ctx context.Context, habitID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	records, err := t.store.GetAllRecords()
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}
	if habitID != 0 {
		filtered := records[:0]
		for _, r := range records {
			if r.HabitID == habitID {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}
	t.out.Records(records)
	return nil
}

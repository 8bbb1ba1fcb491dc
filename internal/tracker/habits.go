package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/query"
	"github.com/julianstephens/habitlog/internal/render"
	"github.com/julianstephens/habitlog/internal/storage"
)

func (t *Tracker) AddHabit(ctx context.Context, habit models.Habit) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := habit.Validate(); err != nil {
		return 0, err
	}

	id, err := t.store.AddHabit(habit)
	if err != nil {
		return 0, fmt.Errorf("failed to add habit: %w", err)
	}
	logger.Info("Added habit", "id", id, "name", habit.Name)
	t.out.Message(render.Success, fmt.Sprintf("Added habit %q (%s) with ID %d.", habit.Name, habit.Unit, id))
	return id, nil
}

func (t *Tracker) AddHabitInteractive(ctx context.Context) error {
	var habit models.Habit
	if ok, err := into(&habit.Name)(t.prompt.Text("Habit name")); !ok {
		return err
	}
	if ok, err := into(&habit.Unit)(t.prompt.Text("Measurement unit")); !ok {
		return err
	}
	_, err := t.AddHabit(ctx, habit)
	return err
}

// UpdateHabit writes only the fields set in changes. A change set with
// nothing but the id is reported as "No changes made." and not written.
func (t *Tracker) UpdateHabit(ctx context.Context, changes query.HabitChanges) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if changes.Name != nil || changes.Unit != nil {
		// validate the merged result
		habit, err := t.store.GetHabit(changes.ID)
		if err != nil {
			return err
		}
		if changes.Name != nil {
			habit.Name = *changes.Name
		}
		if changes.Unit != nil {
			habit.Unit = *changes.Unit
		}
		if err := habit.Validate(); err != nil {
			return err
		}
	}
	return t.applyUpdate(query.EntityHabit, changes.Params())
}

func (t *Tracker) UpdateHabitInteractive(ctx context.Context) error {
	habits, err := t.store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	if len(habits) == 0 {
		t.out.Message(render.Warning, "No habits found.")
		return nil
	}

	changes := query.HabitChanges{}
	if ok, err := into(&changes.ID)(t.prompt.Habit(habits)); !ok {
		return err
	}

	var change bool
	if ok, err := into(&change)(t.prompt.Confirm("Change the name?")); !ok {
		return err
	}
	if change {
		var name string
		if ok, err := into(&name)(t.prompt.Text("New name")); !ok {
			return err
		}
		changes.Name = &name
	}

	if ok, err := into(&change)(t.prompt.Confirm("Change the measurement unit?")); !ok {
		return err
	}
	if change {
		var unit string
		if ok, err := into(&unit)(t.prompt.Text("New measurement unit")); !ok {
			return err
		}
		changes.Unit = &unit
	}

	return t.UpdateHabit(ctx, changes)
}

// DeleteHabit removes a habit and, through the foreign key, all its records
func (t *Tracker) DeleteHabit(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	habit, err := t.store.GetHabit(id)
	if err != nil {
		return err
	}

	if t.snapshot != nil {
		path, err := t.snapshot.Create()
		if err != nil {
			return fmt.Errorf("failed to back up before delete: %w", err)
		}
		logger.Debug("Snapshot before habit delete", "path", path)
	}

	if err := t.store.DeleteHabit(id); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	logger.Info("Deleted habit", "id", id, "name", habit.Name)
	t.out.Message(render.Success, fmt.Sprintf("Deleted habit %q and its records.", habit.Name))
	return nil
}

func (t *Tracker) DeleteHabitInteractive(ctx context.Context) error {
	habits, err := t.store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	if len(habits) == 0 {
		t.out.Message(render.Warning, "No habits found.")
		return nil
	}

	var id int64
	if ok, err := into(&id)(t.prompt.Habit(habits)); !ok {
		return err
	}
	var confirmed bool
	if ok, err := into(&confirmed)(t.prompt.Confirm("Delete this habit and all of its records?")); !ok || !confirmed {
		return err
	}
	return t.DeleteHabit(ctx, id)
}

func (t *Tracker) ListHabits(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	habits, err := t.store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	t.out.Habits(habits)
	return nil
}

// applyUpdate runs a partial update; ErrNoChanges is a no-op, zero rows is ErrNotFound
func (t *Tracker) applyUpdate(entity query.Entity, params query.Params) error {
	q, err := query.BuildUpdate(entity, params)
	if errors.Is(err, query.ErrNoChanges) {
		t.out.Message(render.Info, "No changes made.")
		return nil
	}
	if err != nil {
		return err
	}

	n, err := t.store.ExecuteUpdate(q)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", entity, err)
	}
	if n == 0 {
		id, _ := params.Get(query.IDParam)
		return fmt.Errorf("%s %s: %w", entity, id, storage.ErrNotFound)
	}

	logger.Info("Updated", "table", entity.String(), "fields", params.Len()-1)
	t.out.Message(render.Success, "Changes saved.")
	return nil
}

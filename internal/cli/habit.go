package cli

import (
	"fmt"

	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/query"
)

type HabitAddCmd struct {
	Name string `arg:"" optional:"" help:"Habit name; omit to be prompted."`
	Unit string `short:"u" help:"Measurement unit (e.g. km, pages)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if c.Name == "" && c.Unit == "" {
		return ctx.Tracker.AddHabitInteractive(ctx.context())
	}
	_, err := ctx.Tracker.AddHabit(ctx.context(), models.Habit{Name: c.Name, Unit: c.Unit})
	return err
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	return ctx.Tracker.ListHabits(ctx.context())
}

type HabitEditCmd struct {
	ID   int64   `arg:"" optional:"" help:"Habit ID; omit to be prompted."`
	Name *string `help:"New habit name."`
	Unit *string `short:"u" help:"New measurement unit."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if c.ID == 0 {
		return ctx.Tracker.UpdateHabitInteractive(ctx.context())
	}
	return ctx.Tracker.UpdateHabit(ctx.context(), query.HabitChanges{ID: c.ID, Name: c.Name, Unit: c.Unit})
}

type HabitDeleteCmd struct {
	ID  int64 `arg:"" optional:"" help:"Habit ID; omit to be prompted."`
	Yes bool  `short:"y" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if c.ID == 0 {
		return ctx.Tracker.DeleteHabitInteractive(ctx.context())
	}

	ok, err := ctx.confirm(c.Yes, fmt.Sprintf("Delete habit %d and all of its records?", c.ID))
	if err != nil || !ok {
		return err
	}
	return ctx.Tracker.DeleteHabit(ctx.context(), c.ID)
}

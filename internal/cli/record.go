package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/query"
	"github.com/julianstephens/habitlog/internal/validation"
)

// parseDate accepts YYYY-MM-DD or "today"
func parseDate(s string, parse func(string) (time.Time, error)) (time.Time, error) {
	if s == "today" {
		return validation.Today(), nil
	}
	return parse(s)
}

type RecordAddCmd struct {
	Habit    int64  `short:"H" help:"Habit ID; omit to be prompted for everything."`
	Date     string `short:"d" help:"Record date (YYYY-MM-DD or 'today')." default:"today"`
	Quantity *int   `short:"q" help:"Quantity in the habit's unit."`
}

func (c *RecordAddCmd) Run(ctx *Context) error {
	if c.Habit == 0 {
		return ctx.Tracker.AddRecordInteractive(ctx.context())
	}
	if c.Quantity == nil {
		return fmt.Errorf("--quantity is required with --habit")
	}

	date, err := parseDate(c.Date, validation.ParseRecordDate)
	if err != nil {
		return err
	}
	_, err = ctx.Tracker.AddRecord(ctx.context(), models.Record{HabitID: c.Habit, Date: date, Quantity: *c.Quantity})
	return err
}

type RecordListCmd struct {
	Habit int64 `short:"H" help:"Only show records of this habit."`
}

func (c *RecordListCmd) Run(ctx *Context) error {
	if c.Habit > 0 {
		return ctx.Tracker.ListHabitRecords(ctx.context(), c.Habit)
	}
	return ctx.Tracker.ListRecords(ctx.context())
}

type RecordEditCmd struct {
	ID       int64   `arg:"" optional:"" help:"Record ID; omit to be prompted."`
	Date     *string `short:"d" help:"New date (YYYY-MM-DD or 'today')."`
	Quantity *int    `short:"q" help:"New quantity."`
}

func (c *RecordEditCmd) Run(ctx *Context) error {
	if c.ID == 0 {
		return ctx.Tracker.UpdateRecordInteractive(ctx.context())
	}

	changes := query.RecordChanges{ID: c.ID, Quantity: c.Quantity}
	if c.Date != nil {
		date, err := parseDate(*c.Date, validation.ParseRecordDate)
		if err != nil {
			return err
		}
		changes.Date = &date
	}
	return ctx.Tracker.UpdateRecord(ctx.context(), changes)
}

type RecordDeleteCmd struct {
	ID  int64 `arg:"" optional:"" help:"Record ID; omit to be prompted."`
	Yes bool  `short:"y" help:"Skip the confirmation prompt."`
}

func (c *RecordDeleteCmd) Run(ctx *Context) error {
	if c.ID == 0 {
		return ctx.Tracker.DeleteRecordInteractive(ctx.context())
	}

	ok, err := ctx.confirm(c.Yes, fmt.Sprintf("Delete record %d?", c.ID))
	if err != nil || !ok {
		return err
	}
	return ctx.Tracker.DeleteRecord(ctx.context(), c.ID)
}

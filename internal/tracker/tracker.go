// Package tracker drives habit, record and report operations. Each operation
// has a direct form taking already-parsed values and an interactive form that
// collects them through a prompt.Prompter first.
package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/prompt"
	"github.com/julianstephens/habitlog/internal/render"
	"github.com/julianstephens/habitlog/internal/storage"
)

// Snapshotter takes a copy of the database before destructive changes
type Snapshotter interface {
	Create() (string, error)
}

type Tracker struct {
	store    storage.Provider
	prompt   prompt.Prompter
	out      render.Renderer
	snapshot Snapshotter

	Reports *Reporter
}

type Option func(*Tracker)

// WithSnapshots makes habit deletion snapshot the database first
func WithSnapshots(s Snapshotter) Option {
	return func(t *Tracker) { t.snapshot = s }
}

func New(store storage.Provider, p prompt.Prompter, out render.Renderer, opts ...Option) *Tracker {
	t := &Tracker{
		store:   store,
		prompt:  p,
		out:     out,
		Reports: NewReporter(store, p, out),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Menu runs the main menu until the user quits. Failures of a single action
// are shown and the menu continues.
func (t *Tracker) Menu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := t.prompt.Menu()
		if err != nil {
			return err
		}
		if res.Exit {
			return nil
		}

		if err := t.dispatch(ctx, res.Value); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			logger.Error("Menu action failed", "action", res.Value.String(), "error", err)
			t.out.Message(render.Failure, fmt.Sprintf("Error: %v", err))
		}
	}
}

func (t *Tracker) dispatch(ctx context.Context, item prompt.MenuItem) error {
	switch item {
	case prompt.MenuAddHabit:
		return t.AddHabitInteractive(ctx)
	case prompt.MenuDeleteHabit:
		return t.DeleteHabitInteractive(ctx)
	case prompt.MenuUpdateHabit:
		return t.UpdateHabitInteractive(ctx)
	case prompt.MenuReport:
		return t.Reports.Run(ctx)
	case prompt.MenuAddRecord:
		return t.AddRecordInteractive(ctx)
	case prompt.MenuDeleteRecord:
		return t.DeleteRecordInteractive(ctx)
	case prompt.MenuViewRecords:
		return t.ListRecords(ctx)
	case prompt.MenuUpdateRecord:
		return t.UpdateRecordInteractive(ctx)
	default:
		return fmt.Errorf("unknown menu item %d", item)
	}
}

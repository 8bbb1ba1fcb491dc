package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/prompt"
	"github.com/julianstephens/habitlog/internal/query"
	"github.com/julianstephens/habitlog/internal/render"
	"github.com/julianstephens/habitlog/internal/storage"
	"github.com/julianstephens/habitlog/internal/validation"
)

type reportState int

const (
	collectHabitID reportState = iota
	collectReportType
	collectInputs
	buildAndDisplay
)

// Reporter collects report parameters, runs the report query and hands the
// rows to a Renderer.
type Reporter struct {
	store  storage.Provider
	prompt prompt.Prompter
	out    render.Renderer
}

func NewReporter(store storage.Provider, p prompt.Prompter, out render.Renderer) *Reporter {
	return &Reporter{store: store, prompt: p, out: out}
}

// into stores an accepted prompt value in dst. It reports false on early exit.
func into[T any](dst *T) func(prompt.Result[T], error) (bool, error) {
	return func(res prompt.Result[T], err error) (bool, error) {
		if err != nil || res.Exit {
			return false, err
		}
		*dst = res.Value
		return true, nil
	}
}

// Run walks the interactive report flow. An early exit at any prompt
// returns nil without querying.
func (r *Reporter) Run(ctx context.Context) error {
	habits, err := r.store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	if len(habits) == 0 {
		r.out.Message(render.Warning, "No habits found. Add a habit first.")
		return nil
	}

	var req models.ReportRequest
	state := collectHabitID
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			ok  bool
			err error
		)
		switch state {
		case collectHabitID:
			ok, err = into(&req.HabitID)(r.prompt.Habit(habits))
			state = collectReportType
		case collectReportType:
			ok, err = into(&req.Type)(r.prompt.ReportType())
			state = collectInputs
		case collectInputs:
			ok, err = r.collectInputs(&req)
			state = buildAndDisplay
		case buildAndDisplay:
			return r.Report(ctx, req)
		}
		if err != nil {
			return err
		}
		if !ok {
			logger.Debug("Report abandoned", "habit", req.HabitID, "type", req.Type)
			return nil
		}
	}
}

// collectInputs prompts only for the fields req.Type reads
func (r *Reporter) collectInputs(req *models.ReportRequest) (bool, error) {
	switch req.Type {
	case models.ReportDateToToday:
		return into(&req.Date)(r.prompt.Date("Start date", validation.ParsePastDay))

	case models.ReportDateToDate:
		if ok, err := into(&req.StartDate)(r.prompt.Date("Start date", validation.ParseDay)); !ok {
			return false, err
		}
		for {
			if ok, err := into(&req.EndDate)(r.prompt.Date("End date", validation.ParseDay)); !ok {
				return false, err
			}
			if !req.EndDate.Before(req.StartDate) {
				return true, nil
			}
			r.out.Message(render.Warning, "End date cannot be before the start date.")
		}

	case models.ReportTotalForMonth:
		if ok, err := into(&req.Month)(r.prompt.Month()); !ok {
			return false, err
		}
		return into(&req.Year)(r.prompt.Year())

	case models.ReportYearToDate:
		req.Date = validation.Today()
		return into(&req.Year)(r.prompt.Year())

	case models.ReportTotalForYear:
		return into(&req.Year)(r.prompt.Year())

	default:
		// Total needs nothing more; unknown types are rejected by the builder
		return true, nil
	}
}

// Report builds, executes and renders one report
func (r *Reporter) Report(ctx context.Context, req models.ReportRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	q, err := query.BuildReport(req)
	if errors.Is(err, query.ErrUnknownReportType) {
		logger.Warn("Unknown report type", "type", int(req.Type))
		r.out.Message(render.Info, "No records found.")
		return nil
	}
	if err != nil {
		return err
	}

	records, summary, err := fetch(r.store, q, req.HabitID)
	if err != nil {
		return err
	}
	logger.Debug("Report complete", "type", req.Type, "habit", summary.HabitName, "rows", summary.Count, "total", summary.Total)
	r.out.Report(records, summary)
	return nil
}

// Fetch runs a report without rendering it
func Fetch(store storage.Provider, req models.ReportRequest) ([]models.RecordWithHabit, models.Summary, error) {
	q, err := query.BuildReport(req)
	if err != nil {
		return nil, models.Summary{}, err
	}
	return fetch(store, q, req.HabitID)
}

func fetch(store storage.Provider, q query.Query, habitID int64) ([]models.RecordWithHabit, models.Summary, error) {
	habit, err := store.GetHabit(habitID)
	if err != nil {
		return nil, models.Summary{}, fmt.Errorf("failed to load habit: %w", err)
	}

	rows, err := store.ExecuteQuery(q)
	if err != nil {
		return nil, models.Summary{}, fmt.Errorf("failed to run report: %w", err)
	}
	records, err := storage.RecordsFromRows(rows)
	if err != nil {
		return nil, models.Summary{}, fmt.Errorf("failed to read report rows: %w", err)
	}
	return records, models.Summarize(habit, records), nil
}

package cli

import (
	"fmt"

	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/validation"
)

type ReportCmd struct {
	Habit int64  `short:"H" help:"Habit ID; omit to be prompted for everything."`
	Type  string `short:"t" help:"Report type." enum:"date-to-today,date-to-date,month,year-to-date,year,total" default:"total"`
	Start string `short:"s" help:"Start date (YYYY-MM-DD) for date-to-today and date-to-date."`
	End   string `short:"e" help:"End date (YYYY-MM-DD) for date-to-date."`
	Month int    `short:"m" help:"Month (1-12) for month reports."`
	Year  int    `short:"Y" help:"Year; defaults to the current year."`
}

func (c *ReportCmd) Run(ctx *Context) error {
	if c.Habit == 0 {
		return ctx.Tracker.Reports.Run(ctx.context())
	}
	req, err := c.request()
	if err != nil {
		return err
	}
	return ctx.Tracker.Reports.Report(ctx.context(), req)
}

// request turns flags into a report request, checking only what the type reads
func (c *ReportCmd) request() (models.ReportRequest, error) {
	t, err := models.ParseReportType(c.Type)
	if err != nil {
		return models.ReportRequest{}, err
	}

	today := validation.Today()
	req := models.ReportRequest{Type: t, HabitID: c.Habit, Year: c.Year}
	if req.Year == 0 {
		req.Year = today.Year()
	}

	switch t {
	case models.ReportDateToToday:
		if req.Date, err = parseDate(c.Start, validation.ParsePastDay); err != nil {
			return req, fmt.Errorf("--start: %w", err)
		}
	case models.ReportDateToDate:
		if req.StartDate, err = parseDate(c.Start, validation.ParseDay); err != nil {
			return req, fmt.Errorf("--start: %w", err)
		}
		if req.EndDate, err = parseDate(c.End, validation.ParseDay); err != nil {
			return req, fmt.Errorf("--end: %w", err)
		}
		if req.EndDate.Before(req.StartDate) {
			return req, fmt.Errorf("end date cannot be before the start date")
		}
	case models.ReportTotalForMonth:
		if c.Month < 1 || c.Month > 12 {
			return req, fmt.Errorf("--month must be between 1 and 12")
		}
		req.Month = c.Month
	case models.ReportYearToDate:
		req.Date = today
	}
	return req, nil
}

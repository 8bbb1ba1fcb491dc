package query

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitlog/internal/models"
)

const reportSelect = "SELECT r.Id, r.Date, r.Quantity, r.HabitId, h.Name, h.MeasurementUnit " +
	"FROM records r JOIN habits h ON h.Id = r.HabitId"

// BuildReport returns the query selecting the records of req.HabitID that
// fall inside the window of req.Type, ordered by ascending date. Fields of
// req that the report type does not use are ignored.
func BuildReport(req models.ReportRequest) (Query, error) {
	if req.HabitID <= 0 {
		return Query{}, fmt.Errorf("%w: habit id must be positive", ErrInvalidRequest)
	}

	var (
		where  []string
		params Params
	)

	switch req.Type {
	case models.ReportDateToToday:
		if req.Date.IsZero() {
			return Query{}, fmt.Errorf("%w: %s needs a start date", ErrInvalidRequest, req.Type)
		}
		where = append(where, "r.Date >= :date")
		params.Set("date", Date(req.Date))

	case models.ReportDateToDate:
		if req.StartDate.IsZero() || req.EndDate.IsZero() {
			return Query{}, fmt.Errorf("%w: %s needs a start and end date", ErrInvalidRequest, req.Type)
		}
		where = append(where, "r.Date BETWEEN :startDate AND :endDate")
		params.Set("startDate", Date(req.StartDate))
		params.Set("endDate", Date(req.EndDate))

	case models.ReportTotalForMonth:
		if req.Month < 1 || req.Month > 12 {
			return Query{}, fmt.Errorf("%w: month %d out of range", ErrInvalidRequest, req.Month)
		}
		if err := checkYear(req); err != nil {
			return Query{}, err
		}
		where = append(where, "strftime('%m', r.Date) = :month", "strftime('%Y', r.Date) = :year")
		params.Set("month", String(fmt.Sprintf("%02d", req.Month)))
		params.Set("year", String(fmt.Sprintf("%04d", req.Year)))

	case models.ReportYearToDate:
		if err := checkYear(req); err != nil {
			return Query{}, err
		}
		if req.Date.IsZero() {
			return Query{}, fmt.Errorf("%w: %s needs an end date", ErrInvalidRequest, req.Type)
		}
		where = append(where, "strftime('%Y', r.Date) = :year", "r.Date <= :date")
		params.Set("year", String(fmt.Sprintf("%04d", req.Year)))
		params.Set("date", Date(req.Date))

	case models.ReportTotalForYear:
		if err := checkYear(req); err != nil {
			return Query{}, err
		}
		where = append(where, "strftime('%Y', r.Date) = :year")
		params.Set("year", String(fmt.Sprintf("%04d", req.Year)))

	case models.ReportTotal:
		// every record of the habit

	default:
		return Query{}, fmt.Errorf("%w: %v", ErrUnknownReportType, req.Type)
	}

	where = append(where, "r.HabitId = :id")
	params.Set("id", Int(req.HabitID))

	var b strings.Builder
	b.WriteString(reportSelect)
	b.WriteString(" WHERE ")
	b.WriteString(strings.Join(where, " AND "))
	b.WriteString(" ORDER BY r.Date ASC")

	return Query{SQL: b.String(), Params: params}, nil
}

func checkYear(req models.ReportRequest) error {
	if req.Year < 1 || req.Year > 9999 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidRequest, req.Year)
	}
	return nil
}

package query

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/habitlog/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fullRequest(t models.ReportType) models.ReportRequest {
	return models.ReportRequest{
		Type:      t,
		HabitID:   3,
		Date:      day("2024-06-15"),
		StartDate: day("2024-01-01"),
		EndDate:   day("2024-01-31"),
		Month:     3,
		Year:      2024,
	}
}

func TestBuildReportPlaceholdersMatchParams(t *testing.T) {
	for _, rt := range models.ReportTypes {
		t.Run(rt.String(), func(t *testing.T) {
			q, err := BuildReport(fullRequest(rt))
			if err != nil {
				t.Fatalf("BuildReport(%s) failed: %v", rt, err)
			}

			names := q.Params.Names()
			slices.Sort(names)
			if diff := cmp.Diff(Placeholders(q.SQL), names); diff != "" {
				t.Errorf("placeholder/param mismatch (-sql +params):\n%s", diff)
			}
			if err := q.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestBuildReportPredicates(t *testing.T) {
	tests := []struct {
		name      string
		reqType   models.ReportType
		predicate string
		params    []Param
	}{
		{
			name:      "date to today",
			reqType:   models.ReportDateToToday,
			predicate: "r.Date >= :date AND r.HabitId = :id",
			params: []Param{
				{Name: "date", Value: Date(day("2024-06-15"))},
				{Name: "id", Value: Int(3)},
			},
		},
		{
			name:      "date to date",
			reqType:   models.ReportDateToDate,
			predicate: "r.Date BETWEEN :startDate AND :endDate AND r.HabitId = :id",
			params: []Param{
				{Name: "startDate", Value: Date(day("2024-01-01"))},
				{Name: "endDate", Value: Date(day("2024-01-31"))},
				{Name: "id", Value: Int(3)},
			},
		},
		{
			name:      "total for month",
			reqType:   models.ReportTotalForMonth,
			predicate: "strftime('%m', r.Date) = :month AND strftime('%Y', r.Date) = :year AND r.HabitId = :id",
			params: []Param{
				{Name: "month", Value: String("03")},
				{Name: "year", Value: String("2024")},
				{Name: "id", Value: Int(3)},
			},
		},
		{
			name:      "year to date",
			reqType:   models.ReportYearToDate,
			predicate: "strftime('%Y', r.Date) = :year AND r.Date <= :date AND r.HabitId = :id",
			params: []Param{
				{Name: "year", Value: String("2024")},
				{Name: "date", Value: Date(day("2024-06-15"))},
				{Name: "id", Value: Int(3)},
			},
		},
		{
			name:      "total for year",
			reqType:   models.ReportTotalForYear,
			predicate: "strftime('%Y', r.Date) = :year AND r.HabitId = :id",
			params: []Param{
				{Name: "year", Value: String("2024")},
				{Name: "id", Value: Int(3)},
			},
		},
		{
			name:      "total",
			reqType:   models.ReportTotal,
			predicate: "r.HabitId = :id",
			params: []Param{
				{Name: "id", Value: Int(3)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := BuildReport(fullRequest(tt.reqType))
			if err != nil {
				t.Fatalf("BuildReport failed: %v", err)
			}

			want := reportSelect + " WHERE " + tt.predicate + " ORDER BY r.Date ASC"
			if q.SQL != want {
				t.Errorf("SQL = %q\nwant  %q", q.SQL, want)
			}
			if diff := cmp.Diff(tt.params, q.Params.List(), cmp.AllowUnexported(Value{})); diff != "" {
				t.Errorf("params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildReportMonthIsZeroPadded(t *testing.T) {
	q, err := BuildReport(models.ReportRequest{Type: models.ReportTotalForMonth, HabitID: 1, Month: 3, Year: 2024})
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}
	month, ok := q.Params.Get("month")
	if !ok {
		t.Fatal("month parameter missing")
	}
	if month.Kind() != KindString {
		t.Errorf("month kind = %v, want %v", month.Kind(), KindString)
	}
	if got := month.Arg(); got != "03" {
		t.Errorf("month arg = %v, want %q", got, "03")
	}
	year, _ := q.Params.Get("year")
	if got := year.Arg(); got != "2024" {
		t.Errorf("year arg = %v, want %q", got, "2024")
	}
}

func TestBuildReportTotalIgnoresExtraneousFields(t *testing.T) {
	bare, err := BuildReport(models.ReportRequest{Type: models.ReportTotal, HabitID: 3})
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}
	full, err := BuildReport(fullRequest(models.ReportTotal))
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}
	if bare.SQL != full.SQL {
		t.Errorf("extra fields changed SQL:\n%q\n%q", bare.SQL, full.SQL)
	}
	if diff := cmp.Diff(bare.Params.List(), full.Params.List(), cmp.AllowUnexported(Value{})); diff != "" {
		t.Errorf("extra fields changed params:\n%s", diff)
	}
	if strings.Contains(full.SQL, ":date") || strings.Contains(full.SQL, ":year") {
		t.Errorf("total report references a date placeholder: %s", full.SQL)
	}
}

func TestBuildReportIsDeterministic(t *testing.T) {
	for _, rt := range models.ReportTypes {
		req := fullRequest(rt)
		first, err := BuildReport(req)
		if err != nil {
			t.Fatalf("BuildReport(%s) failed: %v", rt, err)
		}
		second, err := BuildReport(req)
		if err != nil {
			t.Fatalf("BuildReport(%s) failed: %v", rt, err)
		}
		if first.SQL != second.SQL {
			t.Errorf("%s: SQL differs between calls", rt)
		}
		if diff := cmp.Diff(first.Params.List(), second.Params.List(), cmp.AllowUnexported(Value{})); diff != "" {
			t.Errorf("%s: params differ between calls:\n%s", rt, diff)
		}
	}
}

func TestBuildReportErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ReportRequest
		wantErr error
	}{
		{
			name:    "unknown type",
			req:     models.ReportRequest{Type: models.ReportType(99), HabitID: 1},
			wantErr: ErrUnknownReportType,
		},
		{
			name:    "zero type",
			req:     models.ReportRequest{HabitID: 1},
			wantErr: ErrUnknownReportType,
		},
		{
			name:    "missing habit",
			req:     models.ReportRequest{Type: models.ReportTotal},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "month out of range",
			req:     models.ReportRequest{Type: models.ReportTotalForMonth, HabitID: 1, Month: 13, Year: 2024},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "date to date without end",
			req:     models.ReportRequest{Type: models.ReportDateToDate, HabitID: 1, StartDate: day("2024-01-01")},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "year to date without date",
			req:     models.ReportRequest{Type: models.ReportYearToDate, HabitID: 1, Year: 2024},
			wantErr: ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := BuildReport(tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("BuildReport() error = %v, want %v", err, tt.wantErr)
			}
			if q.SQL != "" {
				t.Errorf("BuildReport() produced SQL on error: %q", q.SQL)
			}
		})
	}
}

package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildUpdateNoChanges(t *testing.T) {
	q, err := BuildUpdate(EntityHabit, NewParams(Param{Name: "id", Value: Int(7)}))
	if !errors.Is(err, ErrNoChanges) {
		t.Fatalf("BuildUpdate() error = %v, want ErrNoChanges", err)
	}
	if q.SQL != "" {
		t.Errorf("BuildUpdate() produced SQL: %q", q.SQL)
	}
}

func TestBuildUpdateHabitName(t *testing.T) {
	params := NewParams(
		Param{Name: "id", Value: Int(7)},
		Param{Name: "name", Value: String("Jog")},
	)
	q, err := BuildUpdate(EntityHabit, params)
	if err != nil {
		t.Fatalf("BuildUpdate failed: %v", err)
	}

	want := "UPDATE habits SET Name = :name WHERE id = :id"
	if q.SQL != want {
		t.Errorf("SQL = %q, want %q", q.SQL, want)
	}
	if diff := cmp.Diff(params.List(), q.Params.List(), cmp.AllowUnexported(Value{})); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
	if err := q.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestBuildUpdatePreservesInsertionOrder(t *testing.T) {
	tests := []struct {
		name   string
		entity Entity
		params Params
		want   string
	}{
		{
			name:   "habit unit before name",
			entity: EntityHabit,
			params: NewParams(
				Param{Name: "unit", Value: String("km")},
				Param{Name: "id", Value: Int(2)},
				Param{Name: "name", Value: String("Run")},
			),
			want: "UPDATE habits SET MeasurementUnit = :unit, Name = :name WHERE id = :id",
		},
		{
			name:   "record quantity before date",
			entity: EntityRecord,
			params: NewParams(
				Param{Name: "id", Value: Int(4)},
				Param{Name: "quantity", Value: Int(12)},
				Param{Name: "date", Value: Date(day("2024-02-02"))},
			),
			want: "UPDATE records SET Quantity = :quantity, Date = :date WHERE id = :id",
		},
		{
			name:   "record date only",
			entity: EntityRecord,
			params: NewParams(
				Param{Name: "id", Value: Int(4)},
				Param{Name: "date", Value: Date(day("2024-02-02"))},
			),
			want: "UPDATE records SET Date = :date WHERE id = :id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := BuildUpdate(tt.entity, tt.params)
			if err != nil {
				t.Fatalf("BuildUpdate failed: %v", err)
			}
			if q.SQL != tt.want {
				t.Errorf("SQL = %q, want %q", q.SQL, tt.want)
			}
			if err := q.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestBuildUpdateErrors(t *testing.T) {
	tests := []struct {
		name    string
		entity  Entity
		params  Params
		wantErr error
	}{
		{
			name:    "missing id",
			entity:  EntityHabit,
			params:  NewParams(Param{Name: "name", Value: String("Jog")}),
			wantErr: ErrMissingID,
		},
		{
			name:   "id is not an integer",
			entity: EntityRecord,
			params: NewParams(
				Param{Name: "id", Value: String("7")},
				Param{Name: "quantity", Value: Int(3)},
			),
			wantErr: ErrMissingID,
		},
		{
			name:    "unknown entity",
			entity:  Entity(42),
			params:  NewParams(Param{Name: "id", Value: Int(1)}),
			wantErr: ErrUnknownEntity,
		},
		{
			name:   "field from another entity",
			entity: EntityHabit,
			params: NewParams(
				Param{Name: "id", Value: Int(1)},
				Param{Name: "quantity", Value: Int(3)},
			),
			wantErr: ErrUnknownField,
		},
		{
			name:   "capitalized field is not guessed",
			entity: EntityHabit,
			params: NewParams(
				Param{Name: "id", Value: Int(1)},
				Param{Name: "Name", Value: String("Jog")},
			),
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildUpdate(tt.entity, tt.params); !errors.Is(err, tt.wantErr) {
				t.Errorf("BuildUpdate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestChangesParams(t *testing.T) {
	name := "Swim"
	qty := 40

	habit := HabitChanges{ID: 5, Name: &name}.Params()
	if got := habit.Names(); !cmp.Equal(got, []string{"id", "name"}) {
		t.Errorf("HabitChanges params = %v", got)
	}

	record := RecordChanges{ID: 9, Quantity: &qty}.Params()
	if got := record.Names(); !cmp.Equal(got, []string{"id", "quantity"}) {
		t.Errorf("RecordChanges params = %v", got)
	}

	if _, err := BuildUpdate(EntityRecord, RecordChanges{ID: 9}.Params()); !errors.Is(err, ErrNoChanges) {
		t.Errorf("empty RecordChanges error = %v, want ErrNoChanges", err)
	}
}

func TestParamsSetReplacesInPlace(t *testing.T) {
	var p Params
	p.Set("a", Int(1))
	p.Set("b", Int(2))
	p.Set("a", Int(3))

	if got := p.Names(); !cmp.Equal(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v, want [a b]", got)
	}
	v, _ := p.Get("a")
	if v.Arg() != int64(3) {
		t.Errorf("Get(a) = %v, want 3", v)
	}
}

func TestValidateDetectsMismatch(t *testing.T) {
	q := Query{
		SQL:    "SELECT * FROM records WHERE Id = :id AND Date = :date",
		Params: NewParams(Param{Name: "id", Value: Int(1)}),
	}
	if err := q.Validate(); !errors.Is(err, ErrParamMismatch) {
		t.Errorf("Validate() = %v, want ErrParamMismatch", err)
	}
}

package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
)

// Entity is a table that supports partial updates
type Entity int

const (
	EntityHabit Entity = iota + 1
	EntityRecord
)

func (e Entity) String() string {
	if t, ok := entityTables[e]; ok {
		return t.name
	}
	return fmt.Sprintf("Entity(%d)", int(e))
}

// IDParam names the parameter holding the target row id
const IDParam = "id"

type entityTable struct {
	name    string
	columns map[string]string // field -> column
}

var entityTables = map[Entity]entityTable{
	EntityHabit: {
		name: constants.TableHabits,
		columns: map[string]string{
			"name": "Name",
			"unit": "MeasurementUnit",
		},
	},
	EntityRecord: {
		name: constants.TableRecords,
		columns: map[string]string{
			"date":     "Date",
			"quantity": "Quantity",
		},
	},
}

// BuildUpdate composes an UPDATE for the fields in params other than id.
// SET clauses follow the insertion order of params. When id is the only
// parameter, ErrNoChanges is returned and no statement is produced.
func BuildUpdate(entity Entity, params Params) (Query, error) {
	table, ok := entityTables[entity]
	if !ok {
		return Query{}, fmt.Errorf("%w: %v", ErrUnknownEntity, entity)
	}
	id, ok := params.Get(IDParam)
	if !ok {
		return Query{}, ErrMissingID
	}
	if id.Kind() != KindInt {
		return Query{}, fmt.Errorf("%w: id is a %s", ErrMissingID, id.Kind())
	}

	var sets []string
	for _, p := range params.List() {
		if p.Name == IDParam {
			continue
		}
		column, ok := table.columns[p.Name]
		if !ok {
			return Query{}, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, table.name, p.Name)
		}
		sets = append(sets, fmt.Sprintf("%s = :%s", column, p.Name))
	}
	if len(sets) == 0 {
		return Query{}, ErrNoChanges
	}

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = :%s", table.name, strings.Join(sets, ", "), IDParam)
	return Query{SQL: sql, Params: params.Clone()}, nil
}

// HabitChanges holds the habit fields a user chose to change; nil means unchanged
type HabitChanges struct {
	ID   int64
	Name *string
	Unit *string
}

func (c HabitChanges) Params() Params {
	var p Params
	p.Set(IDParam, Int(c.ID))
	if c.Name != nil {
		p.Set("name", String(*c.Name))
	}
	if c.Unit != nil {
		p.Set("unit", String(*c.Unit))
	}
	return p
}

// RecordChanges holds the record fields a user chose to change; nil means unchanged
type RecordChanges struct {
	ID       int64
	Date     *time.Time
	Quantity *int
}

func (c RecordChanges) Params() Params {
	var p Params
	p.Set(IDParam, Int(c.ID))
	if c.Date != nil {
		p.Set("date", Date(*c.Date))
	}
	if c.Quantity != nil {
		p.Set("quantity", Int(int64(*c.Quantity)))
	}
	return p
}

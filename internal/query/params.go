package query

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	KindString Kind = iota + 1
	KindInt
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindDate:
		return "date"
	default:
		return "invalid"
	}
}

// Value is a typed SQL parameter value. The zero Value is invalid.
type Value struct {
	kind Kind
	str  string
	num  int64
	date time.Time
}

func String(s string) Value { return Value{kind: KindString, str: s} }

func Int(i int64) Value { return Value{kind: KindInt, num: i} }

// Date keeps only the calendar day of t
func Date(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: KindDate, date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsValid() bool { return v.kind != 0 }

// Arg returns the value in the form handed to the SQL driver.
// Dates are encoded as YYYY-MM-DD text.
func (v Value) Arg() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindDate:
		return v.date.Format(constants.DateFormat)
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindDate:
		return v.date.Format(constants.DateFormat)
	default:
		return "<invalid>"
	}
}

// Param is a single named parameter
type Param struct {
	Name  string
	Value Value
}

// Params is an insertion-ordered set of named parameters.
// The zero value is an empty set ready to use.
type Params struct {
	list  []Param
	index map[string]int
}

// NewParams builds a Params from the given pairs, in order
func NewParams(pairs ...Param) Params {
	var p Params
	for _, pair := range pairs {
		p.Set(pair.Name, pair.Value)
	}
	return p
}

// Set adds name, or replaces its value in place if already present
func (p *Params) Set(name string, v Value) {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if i, ok := p.index[name]; ok {
		p.list[i].Value = v
		return
	}
	p.index[name] = len(p.list)
	p.list = append(p.list, Param{Name: name, Value: v})
}

func (p Params) Get(name string) (Value, bool) {
	i, ok := p.index[name]
	if !ok {
		return Value{}, false
	}
	return p.list[i].Value, true
}

func (p Params) Has(name string) bool {
	_, ok := p.index[name]
	return ok
}

func (p Params) Len() int { return len(p.list) }

// Names returns parameter names in insertion order
func (p Params) Names() []string {
	names := make([]string, len(p.list))
	for i, param := range p.list {
		names[i] = param.Name
	}
	return names
}

// List returns a copy of the parameters in insertion order
func (p Params) List() []Param {
	out := make([]Param, len(p.list))
	copy(out, p.list)
	return out
}

func (p Params) Clone() Params {
	return NewParams(p.list...)
}

// Args converts the parameters to named driver arguments
func (p Params) Args() []any {
	args := make([]any, len(p.list))
	for i, param := range p.list {
		args[i] = sql.Named(param.Name, param.Value.Arg())
	}
	return args
}

func (p Params) String() string {
	s := "{"
	for i, param := range p.list {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %s", param.Name, param.Value)
	}
	return s + "}"
}

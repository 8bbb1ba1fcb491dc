// Package query turns report and edit requests into parameterized SQL.
// Nothing in this package performs I/O.
package query

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
)

var (
	ErrUnknownReportType = errors.New("unknown report type")
	ErrInvalidRequest    = errors.New("invalid report request")
	ErrNoChanges         = errors.New("no changes requested")
	ErrMissingID         = errors.New("missing id parameter")
	ErrUnknownEntity     = errors.New("unknown entity")
	ErrUnknownField      = errors.New("unknown field")
	ErrParamMismatch     = errors.New("placeholders do not match parameters")
)

// Query is SQL text together with the named parameters it references
type Query struct {
	SQL    string
	Params Params
}

func (q Query) Args() []any { return q.Params.Args() }

var placeholderRe = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// Placeholders returns the distinct named placeholders in sql, sorted
func Placeholders(sql string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderRe.FindAllStringSubmatch(sql, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	slices.Sort(names)
	return names
}

// Validate checks that every placeholder has a parameter and every
// parameter is referenced by a placeholder.
func (q Query) Validate() error {
	placeholders := Placeholders(q.SQL)
	names := q.Params.Names()
	slices.Sort(names)
	if !slices.Equal(placeholders, names) {
		return fmt.Errorf("%w: sql has %v, params have %v", ErrParamMismatch, placeholders, names)
	}
	for _, p := range q.Params.List() {
		if !p.Value.IsValid() {
			return fmt.Errorf("%w: parameter %q has no value", ErrParamMismatch, p.Name)
		}
	}
	return nil
}

func (q Query) String() string {
	return fmt.Sprintf("%s %s", q.SQL, q.Params)
}

package cli

import (
	"fmt"

	"github.com/julianstephens/habitlog/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	records, err := ctx.Store.GetAllRecords()
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	fmt.Fprintf(ctx.out(), "Validating %d habits and %d records...\n\n", len(habits), len(records))
	result := validation.New().Validate(habits, records)
	fmt.Fprintln(ctx.out(), result.FormatReport())

	// Conflicts are reported, not returned
	return nil
}

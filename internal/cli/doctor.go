package cli

import (
	"fmt"
	"io"

	"github.com/julianstephens/habitlog/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name   string
	run    func(*Context) error
	needDB bool
}

var checks = []check{
	{name: "Schema version", run: checkSchemaVersion, needDB: true},
	{name: "Migrations complete", run: checkMigrationsComplete, needDB: true},
	{name: "Foreign keys", run: checkForeignKeys, needDB: true},
	{name: "Orphaned records", run: checkOrphans, needDB: true},
	{name: "Data validation", run: checkValidation, needDB: true},
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	w := ctx.out()
	fmt.Fprintln(w, "Running diagnostics...")
	fmt.Fprintln(w)

	hasError := false
	dbReachable := true
	if err := checkDBReachable(ctx); err != nil {
		fail(w, "Database reachable", err)
		hasError = true
		dbReachable = false
	} else {
		fmt.Fprintf(w, "✓ Database reachable: OK\n")
	}

	for _, c := range checks {
		if c.needDB && !dbReachable {
			fmt.Fprintf(w, "⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		if err := c.run(ctx); err != nil {
			fail(w, c.name, err)
			hasError = true
			continue
		}
		fmt.Fprintf(w, "✓ %s: OK\n", c.name)
	}

	// Warning only
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Fprintf(w, "⚠ Backups present: WARNING\n")
		fmt.Fprintf(w, "   %v\n", err)
	} else {
		fmt.Fprintf(w, "✓ Backups present: OK\n")
	}

	fmt.Fprintln(w)
	if hasError {
		fmt.Fprintln(w, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Fprintln(w, "All diagnostics passed!")
	return nil
}

func fail(w io.Writer, name string, err error) {
	fmt.Fprintf(w, "❌ %s: FAIL\n", name)
	fmt.Fprintf(w, "   Error: %v\n", err)
}

func checkDBReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.CountHabits(); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	_, err := ctx.Store.SchemaStatus()
	return err
}

func checkMigrationsComplete(ctx *Context) error {
	st, err := ctx.Store.SchemaStatus()
	if err != nil {
		return err
	}
	if !st.UpToDate() {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", st.Current, st.Latest)
	}
	return nil
}

func checkForeignKeys(ctx *Context) error {
	on, err := ctx.Store.ForeignKeysEnabled()
	if err != nil {
		return fmt.Errorf("failed to read foreign_keys pragma: %w", err)
	}
	if !on {
		return fmt.Errorf("foreign key enforcement is off; deleting a habit will not remove its records")
	}
	return nil
}

func checkOrphans(ctx *Context) error {
	n, err := ctx.Store.OrphanedRecords()
	if err != nil {
		return fmt.Errorf("failed to count orphaned records: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("%d record(s) reference a missing habit", n)
	}
	return nil
}

func checkValidation(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	records, err := ctx.Store.GetAllRecords()
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	result := validation.New().Validate(habits, records)
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found, run 'habitlog validate' for details", len(result.Conflicts))
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	backups, err := ctx.backups().List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s", ctx.backups().Dir())
	}
	return nil
}

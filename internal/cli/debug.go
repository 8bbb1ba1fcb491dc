package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/habitlog/internal/logger"
)

type DebugCmd struct {
	DBPath     *DebugDBPathCmd     `cmd:"" help:"Show database and log paths."`
	DumpHabit  *DebugDumpHabitCmd  `cmd:"" help:"Dump habit data as JSON."`
	DumpRecord *DebugDumpRecordCmd `cmd:"" help:"Dump record data as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	return writeJSON(ctx, map[string]string{
		"path":    ctx.Store.GetConfigPath(),
		"backups": ctx.backups().Dir(),
	})
}

type DebugDumpHabitCmd struct {
	ID int64 `arg:"" help:"ID of the habit to dump."`
}

func (cmd *DebugDumpHabitCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabit(cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to get habit: %w", err)
	}
	return writeJSON(ctx, habit)
}

type DebugDumpRecordCmd struct {
	ID int64 `arg:"" help:"ID of the record to dump."`
}

func (cmd *DebugDumpRecordCmd) Run(ctx *Context) error {
	record, err := ctx.Store.GetRecord(cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}
	return writeJSON(ctx, record)
}

func writeJSON(ctx *Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	logger.Debug("Debug dump", "bytes", len(jsonBytes))
	fmt.Fprintln(ctx.out(), string(jsonBytes))
	return nil
}

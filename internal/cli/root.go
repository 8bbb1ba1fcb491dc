package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/habitlog/internal/backup"
	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/prompt"
	"github.com/julianstephens/habitlog/internal/storage"
	"github.com/julianstephens/habitlog/internal/tracker"
)

// Context is passed to every command's Run method
type Context struct {
	Ctx      context.Context
	Store    storage.Provider
	Tracker  *tracker.Tracker
	Prompter prompt.Prompter
	Backups  *backup.Manager
	Out      io.Writer
}

// storeless commands run against a missing or damaged database
var storeless = []string{"init", "doctor", "backup list", "backup restore"}

// NeedsStore reports whether the command, as given by kong's Context.Command,
// expects the database to be loaded before it runs
func NeedsStore(command string) bool {
	for _, name := range storeless {
		if command == name || strings.HasPrefix(command, name+" ") {
			return false
		}
	}
	return true
}

func (c *Context) context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) backups() *backup.Manager {
	if c.Backups == nil {
		c.Backups = backup.NewManager(c.Store.GetConfigPath())
	}
	return c.Backups
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if _, err := c.backups().Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// confirm asks before a destructive action unless yes is set. An early
// exit counts as no.
func (c *Context) confirm(yes bool, title string) (bool, error) {
	if yes {
		return true, nil
	}
	if c.Prompter == nil {
		return false, nil
	}
	res, err := c.Prompter.Confirm(title)
	if err != nil || res.Exit {
		return false, err
	}
	return res.Value, nil
}

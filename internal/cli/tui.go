package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitlog/internal/tui"
	"github.com/julianstephens/habitlog/internal/validation"
)

// MenuCmd runs the interactive main menu
type MenuCmd struct{}

func (c *MenuCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	return ctx.Tracker.Menu(ctx.context())
}

// BrowseCmd opens the full-screen report browser
type BrowseCmd struct{}

func (c *BrowseCmd) Run(ctx *Context) error {
	m, err := tui.NewModel(ctx.Store, validation.Today())
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx.context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser exited: %w", err)
	}
	return nil
}

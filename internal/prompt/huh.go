package prompt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/validation"
)

const exitHint = "Type " + constants.EarlyExitInput + " to go back"

// Huh prompts on the terminal with charmbracelet/huh forms
type Huh struct {
	theme      *huh.Theme
	accessible bool
}

func NewHuh(accessible bool) *Huh {
	return &Huh{
		theme:      huh.ThemeDracula(),
		accessible: accessible,
	}
}

func (p *Huh) run(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(p.accessible).
		Run()
}

func isExit(s string) bool {
	return strings.TrimSpace(s) == constants.EarlyExitInput
}

// exitAware lets the sentinel through validation so it can end the flow
func exitAware[T any](parse func(string) (T, error)) func(string) error {
	return func(s string) error {
		if isExit(s) {
			return nil
		}
		_, err := parse(s)
		return err
	}
}

func ask[T any](p *Huh, title string, parse func(string) (T, error)) (Result[T], error) {
	var raw string
	field := huh.NewInput().
		Title(title).
		Description(exitHint).
		Value(&raw).
		Validate(exitAware(parse))

	if err := p.run(field); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Exit[T](), nil
		}
		return Result[T]{}, fmt.Errorf("prompt failed: %w", err)
	}
	if isExit(raw) {
		return Exit[T](), nil
	}

	v, err := parse(raw)
	if err != nil {
		return Result[T]{}, err
	}
	return Ok(v), nil
}

// Back values for the id and report selects; neither can be a real choice
const (
	backID     int64             = -1
	backReport models.ReportType = -1
)

// selectField builds a select with a trailing Back option, hovering the first entry
func selectField[T comparable](title string, options []huh.Option[T], back T, choice *T) *huh.Select[T] {
	options = append(options, huh.NewOption("Back", back))
	*choice = options[0].Value
	return huh.NewSelect[T]().
		Title(title).
		Options(options...).
		Value(choice)
}

// choose shows a select whose back option yields an early exit
func choose[T comparable](p *Huh, title string, options []huh.Option[T], back T) (Result[T], error) {
	var choice T
	field := selectField(title, options, back, &choice)

	if err := p.run(field); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Exit[T](), nil
		}
		return Result[T]{}, fmt.Errorf("prompt failed: %w", err)
	}
	if choice == back {
		return Exit[T](), nil
	}
	return Ok(choice), nil
}

func (p *Huh) Menu() (Result[MenuItem], error) {
	options := make([]huh.Option[MenuItem], 0, len(MenuItems))
	for _, item := range MenuItems {
		options = append(options, huh.NewOption(item.String(), item))
	}

	choice := MenuItems[0]
	field := huh.NewSelect[MenuItem]().
		Title("What would you like to do?").
		Options(options...).
		Value(&choice)

	if err := p.run(field); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Exit[MenuItem](), nil
		}
		return Result[MenuItem]{}, fmt.Errorf("prompt failed: %w", err)
	}
	if choice == MenuQuit {
		return Exit[MenuItem](), nil
	}
	return Ok(choice), nil
}

func (p *Huh) Habit(habits []models.Habit) (Result[int64], error) {
	options := make([]huh.Option[int64], 0, len(habits))
	for _, h := range habits {
		options = append(options, huh.NewOption(fmt.Sprintf("%d. %s (%s)", h.ID, h.Name, h.Unit), h.ID))
	}
	return choose(p, "Select a habit", options, backID)
}

func (p *Huh) Record(records []models.RecordWithHabit) (Result[int64], error) {
	options := make([]huh.Option[int64], 0, len(records))
	for _, r := range records {
		label := fmt.Sprintf("%d. %s  %s  %d %s", r.ID, r.Day(), r.HabitName, r.Quantity, r.Unit)
		options = append(options, huh.NewOption(label, r.ID))
	}
	return choose(p, "Select a record", options, backID)
}

func (p *Huh) ReportType() (Result[models.ReportType], error) {
	options := make([]huh.Option[models.ReportType], 0, len(models.ReportTypes))
	for _, t := range models.ReportTypes {
		options = append(options, huh.NewOption(t.Label(), t))
	}
	return choose(p, "What kind of report?", options, backReport)
}

func (p *Huh) Date(title string, parse DateParser) (Result[time.Time], error) {
	return ask(p, title+" (YYYY-MM-DD)", parse)
}

func (p *Huh) Month() (Result[int], error) {
	return ask(p, "Month (1-12)", validation.ParseMonth)
}

func (p *Huh) Year() (Result[int], error) {
	return ask(p, "Year", validation.ParseYear)
}

func (p *Huh) Quantity() (Result[int], error) {
	return ask(p, "Quantity", validation.ParseQuantity)
}

func (p *Huh) Text(title string) (Result[string], error) {
	return ask(p, title, func(s string) (string, error) {
		if err := validation.ValidateName(s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	})
}

func (p *Huh) Confirm(title string) (Result[bool], error) {
	var ok bool
	field := huh.NewConfirm().
		Title(title).
		Value(&ok)

	if err := p.run(field); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Exit[bool](), nil
		}
		return Result[bool]{}, fmt.Errorf("prompt failed: %w", err)
	}
	return Ok(ok), nil
}

package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/prompt"
	"github.com/julianstephens/habitlog/internal/render"
	"github.com/julianstephens/habitlog/internal/storage/sqlite"
	"github.com/julianstephens/habitlog/internal/validation"
)

// answer is one scripted reply; method names the prompt it must satisfy
type answer struct {
	method string
	value  any
}

func reply[T any](method string, v T) answer { return answer{method, prompt.Ok(v)} }

func quit[T any](method string) answer { return answer{method, prompt.Exit[T]()} }

type scriptedPrompter struct {
	t      *testing.T
	script []answer
	calls  []string
	dates  []string
}

func newPrompter(t *testing.T, script ...answer) *scriptedPrompter {
	return &scriptedPrompter{t: t, script: script}
}

func (p *scriptedPrompter) next(method string) any {
	p.t.Helper()
	p.calls = append(p.calls, method)
	if len(p.script) == 0 {
		p.t.Fatalf("unexpected prompt %s (calls so far: %v)", method, p.calls)
	}
	a := p.script[0]
	p.script = p.script[1:]
	if a.method != method {
		p.t.Fatalf("prompted %s, script expected %s", method, a.method)
	}
	return a.value
}

func (p *scriptedPrompter) done() {
	p.t.Helper()
	if len(p.script) != 0 {
		p.t.Errorf("%d scripted answers unused: %+v", len(p.script), p.script)
	}
}

func (p *scriptedPrompter) Menu() (prompt.Result[prompt.MenuItem], error) {
	return p.next("Menu").(prompt.Result[prompt.MenuItem]), nil
}

func (p *scriptedPrompter) Habit([]models.Habit) (prompt.Result[int64], error) {
	return p.next("Habit").(prompt.Result[int64]), nil
}

func (p *scriptedPrompter) Record([]models.RecordWithHabit) (prompt.Result[int64], error) {
	return p.next("Record").(prompt.Result[int64]), nil
}

func (p *scriptedPrompter) ReportType() (prompt.Result[models.ReportType], error) {
	return p.next("ReportType").(prompt.Result[models.ReportType]), nil
}

// Date scripts raw text so the caller's parser is exercised
func (p *scriptedPrompter) Date(title string, parse prompt.DateParser) (prompt.Result[time.Time], error) {
	p.dates = append(p.dates, title)
	res := p.next("Date").(prompt.Result[string])
	if res.Exit {
		return prompt.Exit[time.Time](), nil
	}
	d, err := parse(res.Value)
	if err != nil {
		p.t.Fatalf("scripted date %q rejected: %v", res.Value, err)
	}
	return prompt.Ok(d), nil
}

func (p *scriptedPrompter) Month() (prompt.Result[int], error) {
	return p.next("Month").(prompt.Result[int]), nil
}

func (p *scriptedPrompter) Year() (prompt.Result[int], error) {
	return p.next("Year").(prompt.Result[int]), nil
}

func (p *scriptedPrompter) Quantity() (prompt.Result[int], error) {
	return p.next("Quantity").(prompt.Result[int]), nil
}

func (p *scriptedPrompter) Text(string) (prompt.Result[string], error) {
	return p.next("Text").(prompt.Result[string]), nil
}

func (p *scriptedPrompter) Confirm(string) (prompt.Result[bool], error) {
	return p.next("Confirm").(prompt.Result[bool]), nil
}

type message struct {
	kind render.Kind
	text string
}

type reportCall struct {
	rows    []models.RecordWithHabit
	summary models.Summary
}

type recordingRenderer struct {
	reports  []reportCall
	habits   [][]models.Habit
	records  [][]models.RecordWithHabit
	messages []message
}

func (r *recordingRenderer) Report(rows []models.RecordWithHabit, summary models.Summary) {
	r.reports = append(r.reports, reportCall{rows, summary})
}

func (r *recordingRenderer) Habits(habits []models.Habit) { r.habits = append(r.habits, habits) }

func (r *recordingRenderer) Records(rows []models.RecordWithHabit) {
	r.records = append(r.records, rows)
}

func (r *recordingRenderer) Message(kind render.Kind, text string) {
	r.messages = append(r.messages, message{kind, text})
}

func (r *recordingRenderer) lastMessage() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1].text
}

type countingSnapshotter struct{ calls int }

func (c *countingSnapshotter) Create() (string, error) {
	c.calls++
	return "snapshot.db", nil
}

func setupStore(t *testing.T) *sqlite.Store {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "habitlog.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// fixClock pins "today" to 2024-06-15
func fixClock(t *testing.T) {
	prev := validation.Clock
	validation.Clock = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { validation.Clock = prev })
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

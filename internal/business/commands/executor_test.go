package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
	"github.com/SergeyKozhin/presenter-bot/internal/store/memory"
	"go.uber.org/zap"
)

// Tests run on Fri 1 May 2020.
var testNow = time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestExecutor(t *testing.T) (*Executor, *memory.Store) {
	t.Helper()

	st := memory.NewStore()
	parser := dates.NewParser(time.UTC, func() time.Time { return testNow })

	return NewExecutor(zap.NewNop().Sugar(), st, parser), st
}

func seedEvents(t *testing.T, st store.Store, events ...*model.Event) {
	t.Helper()

	err := st.InTx(context.Background(), func(ctx context.Context, tx store.Events) error {
		for _, e := range events {
			if err := tx.Insert(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func getEvent(t *testing.T, st store.Store, when time.Time) *model.Event {
	t.Helper()

	var event *model.Event
	err := st.InTx(context.Background(), func(ctx context.Context, tx store.Events) error {
		var err error
		event, err = tx.GetByDate(ctx, when)
		return err
	})
	if err != nil {
		t.Fatalf("get %v: %v", when, err)
	}

	return event
}

func run(t *testing.T, e *Executor, text string) (string, error) {
	t.Helper()

	cmd, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}

	return e.Execute(context.Background(), cmd)
}

func expectKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()

	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		t.Fatalf("err = %v, want *Error of kind %v", err, kind)
	}
	if cmdErr.Kind != kind {
		t.Fatalf("kind = %v, want %v", cmdErr.Kind, kind)
	}

	return cmdErr
}

func TestAdd(t *testing.T) {
	e, st := newTestExecutor(t)

	res, err := run(t, e, "add --event fagdag --when 2020-05-07")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if res != "Thu 7 May successfully added to the schedule." {
		t.Errorf("add result = %q", res)
	}

	event := getEvent(t, st, date(2020, 5, 7))
	if event.EventType != model.EventTypeFagdag || !event.Empty() {
		t.Errorf("stored event = %+v", event)
	}

	_, err = run(t, e, "add --event formiddag --when 2020-05-07")
	cmdErr := expectKind(t, err, KindEventAlreadyExists)
	if !cmdErr.Date.Equal(date(2020, 5, 7)) {
		t.Errorf("error date = %v", cmdErr.Date)
	}
}

func TestAddDistinctDates(t *testing.T) {
	e, st := newTestExecutor(t)

	for _, text := range []string{
		"add --event fagdag --when 2020-05-07",
		"add --event formiddag --when 2020-05-14",
	} {
		if _, err := run(t, e, text); err != nil {
			t.Fatalf("%s: %v", text, err)
		}
	}

	if got := getEvent(t, st, date(2020, 5, 7)); got.EventType != model.EventTypeFagdag {
		t.Errorf("2020-05-07 type = %q", got.EventType)
	}
	if got := getEvent(t, st, date(2020, 5, 14)); got.EventType != model.EventTypeFormiddag {
		t.Errorf("2020-05-14 type = %q", got.EventType)
	}
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind Kind
	}{
		{"missing when", "add --event fagdag", KindUsage},
		{"missing event", "add --when 2020-05-07", KindUsage},
		{"event type checked before date", "add --event party --when xyzzy", KindInvalidEventType},
		{"invalid date", "add --event fagdag --when xyzzy", KindInvalidDate},
		{"past date", "add --event fagdag --when 2020-04-30", KindPastDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestExecutor(t)
			_, err := run(t, e, tt.text)
			expectKind(t, err, tt.kind)
		})
	}
}

func TestAddToday(t *testing.T) {
	e, _ := newTestExecutor(t)

	if _, err := run(t, e, "add --event fagdag --when 2020-05-01"); err != nil {
		t.Errorf("adding today failed: %v", err)
	}
}

func TestUsageErrorCarriesUsage(t *testing.T) {
	e, _ := newTestExecutor(t)

	_, err := run(t, e, "a --event fagdag")
	cmdErr := expectKind(t, err, KindUsage)
	if cmdErr.Usage != "`/c add --event <event> --when yyyy-mm-dd`" {
		t.Errorf("usage = %q", cmdErr.Usage)
	}
	if cmdErr.Verb != "add" {
		t.Errorf("verb = %q, want add", cmdErr.Verb)
	}
}

func TestRemove(t *testing.T) {
	e, st := newTestExecutor(t)
	seedEvents(t, st,
		&model.Event{When: date(2020, 5, 7), EventType: model.EventTypeFagdag},
		&model.Event{When: date(2020, 4, 1), EventType: model.EventTypeFagdag},
	)

	res, err := run(t, e, "remove --when 2020-05-07")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if res != "Thu 7 May successfully removed from the schedule." {
		t.Errorf("remove result = %q", res)
	}

	_, err = run(t, e, "remove --when 2020-05-07")
	expectKind(t, err, KindEventNotFound)

	_, err = run(t, e, "remove --when 2020-04-01")
	expectKind(t, err, KindPastDate)

	_, err = run(t, e, "remove")
	expectKind(t, err, KindUsage)
}

func TestSchedule(t *testing.T) {
	e, st := newTestExecutor(t)
	seedEvents(t, st,
		&model.Event{When: date(2020, 5, 7), EventType: model.EventTypeFagdag},
		&model.Event{When: date(2020, 5, 14), EventType: model.EventTypeFormiddag},
	)

	// 2020-05-08 is closest to the 7th.
	res, err := run(t, e, "schedule --who Ada --what Engines --when 2020-05-08")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	want := "Successfully scheduled *Thu 7 May*: Presentation *Engines* by *Ada*. :busts_in_silhouette: Fagdag"
	if res != want {
		t.Errorf("schedule result = %q, want %q", res, want)
	}

	event := getEvent(t, st, date(2020, 5, 7))
	if !event.Scheduled() || *event.Who != "Ada" || *event.What != "Engines" {
		t.Errorf("stored event = %+v", event)
	}

	_, err = run(t, e, "schedule --who Grace --what COBOL --when 2020-05-07")
	expectKind(t, err, KindAlreadyScheduled)
}

func TestScheduleValidation(t *testing.T) {
	e, st := newTestExecutor(t)
	str := model.StringPtr

	_, err := run(t, e, "schedule --who Ada --what Engines --when 2020-05-08")
	expectKind(t, err, KindEventNotFound)

	seedEvents(t, st,
		&model.Event{When: date(2020, 4, 20), EventType: model.EventTypeFagdag},
		&model.Event{When: date(2020, 6, 4), EventType: model.EventTypeFagdag, What: str("holiday")},
	)

	_, err = run(t, e, "schedule --who Ada --what Engines --when 2020-01-01")
	expectKind(t, err, KindPastDate)

	_, err = run(t, e, "schedule --who Ada --what Engines --when 2020-06-04")
	expectKind(t, err, KindAlreadyCancelled)

	_, err = run(t, e, "schedule --who Ada --when 2020-06-04")
	expectKind(t, err, KindUsage)

	_, err = run(t, e, "schedule --who Ada --what Engines --when xyzzy")
	expectKind(t, err, KindInvalidDate)
}

func TestCancel(t *testing.T) {
	e, st := newTestExecutor(t)
	seedEvents(t, st, &model.Event{
		When:      date(2020, 5, 7),
		EventType: model.EventTypeFormiddag,
		Who:       model.StringPtr("Ada"),
		What:      model.StringPtr("Engines"),
	})

	res, err := run(t, e, "cancel --when 2020-05-07 --what Public holiday")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if res != "Successfully cancelled *Thu 7 May*: Event is cancelled due to Public holiday!" {
		t.Errorf("cancel result = %q", res)
	}

	event := getEvent(t, st, date(2020, 5, 7))
	if !event.Cancelled() {
		t.Errorf("event not cancelled: %+v", event)
	}

	_, err = run(t, e, "cancel --when 2020-05-07 --what again")
	expectKind(t, err, KindAlreadyCancelled)

	_, err = run(t, e, "cancel --when 2020-05-08 --what nope")
	expectKind(t, err, KindEventNotFound)

	_, err = run(t, e, "cancel --when 2020-05-07")
	expectKind(t, err, KindUsage)
}

func TestClear(t *testing.T) {
	e, st := newTestExecutor(t)
	seedEvents(t, st,
		&model.Event{When: date(2020, 5, 7), EventType: model.EventTypeFagdag, What: model.StringPtr("holiday")},
		&model.Event{When: date(2020, 4, 2), EventType: model.EventTypeFagdag, What: model.StringPtr("holiday")},
	)

	res, err := run(t, e, "clear --when 2020-05-07")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if res != "Successfully cleared Thu 7 May" {
		t.Errorf("clear result = %q", res)
	}

	if event := getEvent(t, st, date(2020, 5, 7)); !event.Empty() {
		t.Errorf("event not cleared: %+v", event)
	}

	_, err = run(t, e, "clear --when 2020-05-07")
	expectKind(t, err, KindAlreadyCleared)

	_, err = run(t, e, "clear --when 2020-04-02")
	expectKind(t, err, KindPastDate)

	_, err = run(t, e, "clear --when 2020-05-08")
	expectKind(t, err, KindEventNotFound)
}

func TestNext(t *testing.T) {
	e, st := newTestExecutor(t)

	res, err := run(t, e, "next")
	if err != nil || res != NoEventsMessage {
		t.Fatalf("next on empty schedule = %q, %v", res, err)
	}

	seedEvents(t, st, &model.Event{When: date(2020, 5, 7), EventType: model.EventTypeFormiddag})

	res, err = run(t, e, "n")
	if err != nil || res != NoEventsMessage {
		t.Fatalf("next without presenter = %q, %v", res, err)
	}

	if _, err := run(t, e, "schedule --who Ada --what Engines --when 2020-05-07"); err != nil {
		t.Fatal(err)
	}

	res, err = run(t, e, "next")
	if err != nil {
		t.Fatal(err)
	}
	if res != "*Thu 7 May*: Presentation *Engines* by *Ada*." {
		t.Errorf("next = %q", res)
	}
}

func TestUpcoming(t *testing.T) {
	e, st := newTestExecutor(t)

	res, err := run(t, e, "upcoming")
	if err != nil || res != NoEventsMessage {
		t.Fatalf("upcoming on empty schedule = %q, %v", res, err)
	}

	seedEvents(t, st,
		&model.Event{When: date(2020, 5, 14), EventType: model.EventTypeFormiddag},
		&model.Event{When: date(2020, 4, 1), EventType: model.EventTypeFormiddag},
		&model.Event{When: date(2020, 5, 7), EventType: model.EventTypeFormiddag, What: model.StringPtr("holiday")},
	)

	res, err = run(t, e, "upcoming")
	if err != nil {
		t.Fatal(err)
	}

	want := ">*Thu 7 May*: Event is cancelled due to holiday!\n>*Thu 14 May*: No presentation scheduled."
	if res != want {
		t.Errorf("upcoming = %q, want %q", res, want)
	}
}

func TestHelpAndShorthands(t *testing.T) {
	e, _ := newTestExecutor(t)

	help, err := run(t, e, "help")
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range DefaultCatalog.Descriptors() {
		if !strings.Contains(help, d.Usage) || !strings.Contains(help, ">"+d.Help) {
			t.Errorf("help text misses %q", d.Verb)
		}
	}

	shorthands, err := run(t, e, "sh")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(shorthands, ">cancel: `ca`") || !strings.Contains(shorthands, ">clear: `c`") {
		t.Errorf("shorthands = %q", shorthands)
	}
}

func TestUnknownCommand(t *testing.T) {
	e, _ := newTestExecutor(t)

	_, err := run(t, e, "dance")
	expectKind(t, err, KindUnknownCommand)
}

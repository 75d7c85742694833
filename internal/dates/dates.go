package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const (
	isoLayout    = "2006-01-02"
	prettyLayout = "Mon 2 Jan"
)

var ErrInvalidDate = errors.New("unable to parse date")

// Parser turns user supplied text into calendar dates in a single configured
// location. Dates are returned as midnight UTC of the local calendar day.
type Parser struct {
	loc *time.Location
	now func() time.Time
}

func NewParser(loc *time.Location, now func() time.Time) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}

	return &Parser{loc: loc, now: now}
}

// Now returns the current moment in the configured location.
func (p *Parser) Now() time.Time {
	return p.now().In(p.loc)
}

// Today returns the current calendar date.
func (p *Parser) Today() time.Time {
	return Day(p.Now())
}

func (p *Parser) Location() *time.Location {
	return p.loc
}

// Lenient accepts natural language such as "in two weeks" or "13 nov",
// resolved relative to the current moment.
func (p *Parser) Lenient(text string) (time.Time, error) {
	return p.parse(text, false)
}

// Strict requires day, month and year to be present.
func (p *Parser) Strict(text string) (time.Time, error) {
	return p.parse(text, true)
}

func (p *Parser) parse(text string, strict bool) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, ErrInvalidDate
	}

	if t, err := time.ParseInLocation(isoLayout, text, p.loc); err == nil {
		return Day(t), nil
	}

	cfg := &dps.Configuration{
		CurrentTime:   p.Now(),
		StrictParsing: strict,
	}

	dt, err := dps.Parse(cfg, text)
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}

	return Day(dt.Time.In(p.loc)), nil
}

// Day truncates t to its calendar date, expressed as midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// Format renders a date like "Thu 7 May".
func Format(t time.Time) string {
	return t.Format(prettyLayout)
}

// ISO renders a date like "2020-05-07".
func ISO(t time.Time) string {
	return t.Format(isoLayout)
}

// ParseISO parses a yyyy-mm-dd date.
func ParseISO(text string) (time.Time, error) {
	t, err := time.Parse(isoLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	return Day(t), nil
}

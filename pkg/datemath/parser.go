package datemath

import (
	"fmt"
	"time"
)

// Parser turns a calendar day and a wall-clock time into an instant in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/London"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Timezone returns the IANA name the parser localizes into.
func (p *Parser) Timezone() string {
	return p.location.String()
}

// Localize parses day (YYYY-MM-DD) and clock (HH:MM) as a wall-clock time in the
// parser's timezone. The offset follows the zone's DST rules for that date.
func (p *Parser) Localize(day, clock string) (time.Time, error) {
	input := day + " " + clock
	t, err := time.ParseInLocation(LayoutDayClock, input, p.location)
	if err != nil {
		return time.Time{}, &ParseError{Input: input, Err: err}
	}
	return t, nil
}

// Format renders t as ISO-8601 with an explicit numeric offset, e.g. 2025-08-08T14:00:00+01:00.
func Format(t time.Time) string {
	return t.Format(LayoutOffset)
}

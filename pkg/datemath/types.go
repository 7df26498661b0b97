package datemath

import "fmt"

const (
	// LayoutDayClock is the strict input layout: "2025-08-08 14:00".
	LayoutDayClock = "2006-01-02 15:04"

	// LayoutOffset is RFC 3339 with a numeric offset even for UTC (+00:00, never Z).
	LayoutOffset = "2006-01-02T15:04:05-07:00"
)

// ParseError reports a day/time combination that does not match LayoutDayClock.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %q: %v", e.Input, LayoutDayClock, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

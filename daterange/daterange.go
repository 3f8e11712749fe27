// Package daterange builds the fixed calendar domain that every dense series
// in a report is laid out over.
package daterange

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// ErrInvalidRange is returned when a domain cannot be built from the given
// bounds.
var ErrInvalidRange = errors.New("invalid date range")

// Build returns every calendar day from start through end, inclusive of both
// ends, in ascending order.
func Build(start, end civil.Date) ([]civil.Date, error) {
	if !start.IsValid() || !end.IsValid() {
		return nil, fmt.Errorf("%w: %v to %v is not a pair of valid dates", ErrInvalidRange, start, end)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %v precedes start %v", ErrInvalidRange, end, start)
	}

	out := make([]civil.Date, 0, end.DaysSince(start)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		out = append(out, d)
	}

	return out, nil
}

// Today is the current local calendar day.
func Today() civil.Date {
	return civil.DateOf(time.Now())
}

package timeseries

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// RunningTotals turns rows of per-day increments into rows of cumulative
// totals, one output row per input row. Unlike Accumulate it does not lay the
// result over a calendar domain: only days present in the input appear.
// Rows must be in ascending date order and all have the same width; a date
// given more than once yields a single row carrying the combined total.
func RunningTotals(increments []Row) ([]Row, error) {
	if len(increments) == 0 {
		return nil, nil
	}

	width := len(increments[0].Values)
	totals := make([]int64, width)
	out := make([]Row, 0, len(increments))

	var previous civil.Date
	for i, row := range increments {
		if len(row.Values) != width {
			return nil, fmt.Errorf("%w: row for %v has %d values, expected %d", ErrDomainMismatch, row.Date, len(row.Values), width)
		}
		if i > 0 && row.Date.Before(previous) {
			return nil, fmt.Errorf("%w: %v follows %v", ErrOutOfRange, row.Date, previous)
		}

		for j, v := range row.Values {
			totals[j] += v
		}

		current := Row{Date: row.Date, Values: append([]int64(nil), totals...)}
		if i > 0 && row.Date == previous {
			out[len(out)-1] = current
		} else {
			out = append(out, current)
		}
		previous = row.Date
	}

	return out, nil
}

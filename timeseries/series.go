// Package timeseries folds sparse per-day increments into cumulative series
// and merges several such series into dated rows.
package timeseries

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// Point is one day's increment of a metric.
type Point struct {
	Date  civil.Date
	Delta int64
}

// Sparse is a metric's increments in ascending date order. Days without
// activity are absent.
type Sparse []Point

// Dense holds a cumulative value for every day of Domain. A zero means the
// metric was not updated on that day.
type Dense struct {
	Domain []civil.Date
	Values []int64
}

// At returns the value recorded for d, and whether d lies in the domain.
func (s Dense) At(d civil.Date) (int64, bool) {
	i, ok := indexOf(s.Domain, d)
	if !ok {
		return 0, false
	}

	return s.Values[i], true
}

// Accumulate walks sparse in order, keeping a running total, and writes the
// running total at each contributing date. Repeated dates add up. Dates that
// receive no point are left at zero; filling them is Merge's job.
func Accumulate(sparse Sparse, domain []civil.Date) (Dense, error) {
	out := Dense{
		Domain: domain,
		Values: make([]int64, len(domain)),
	}

	var total int64
	for _, p := range sparse {
		i, ok := indexOf(domain, p.Date)
		if !ok {
			return Dense{}, fmt.Errorf("%w: %v is not within the domain", ErrOutOfRange, p.Date)
		}

		total += p.Delta
		out.Values[i] = total
	}

	return out, nil
}

// indexOf locates d in a contiguous ascending domain without scanning it.
func indexOf(domain []civil.Date, d civil.Date) (int, bool) {
	if len(domain) == 0 {
		return 0, false
	}

	i := d.DaysSince(domain[0])
	if i < 0 || i >= len(domain) || domain[i] != d {
		return 0, false
	}

	return i, true
}

func sameDomain(a, b []civil.Date) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

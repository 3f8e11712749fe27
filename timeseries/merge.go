package timeseries

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// Row is one emitted day of a merged table. Values line up with the columns
// passed to Merge.
type Row struct {
	Date   civil.Date
	Values []int64
}

// Merge aligns columns into one row per day of domain. A column with no update
// on a day (zero) repeats its last known value. Days on which every column is
// still zero are dropped, which trims the quiet lead-in before any metric has
// data. Last known values only ever move to nonzero values, so once a row has
// been emitted every later day is emitted too.
func Merge(columns []Dense, domain []civil.Date) ([]Row, error) {
	for i, col := range columns {
		if !sameDomain(col.Domain, domain) || len(col.Values) != len(domain) {
			return nil, fmt.Errorf("%w: column %d spans %d days, expected %d starting %v", ErrDomainMismatch, i, len(col.Values), len(domain), first(domain))
		}
	}

	lastKnown := make([]int64, len(columns))
	out := make([]Row, 0, len(domain))

	for day, date := range domain {
		emitted := make([]int64, len(columns))
		allZero := true

		for j, col := range columns {
			if v := col.Values[day]; v != 0 {
				lastKnown[j] = v
			}
			emitted[j] = lastKnown[j]

			if emitted[j] != 0 {
				allZero = false
			}
		}

		if allZero {
			continue
		}

		out = append(out, Row{Date: date, Values: emitted})
	}

	return out, nil
}

func first(domain []civil.Date) civil.Date {
	if len(domain) == 0 {
		return civil.Date{}
	}
	return domain[0]
}

package report

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/carbocation/interactomestats/graphsource"
	"github.com/carbocation/interactomestats/timeseries"
)

// fetch runs the named embedded query.
func fetch(ctx context.Context, src graphsource.Source, name string) ([]graphsource.Record, error) {
	q, err := Query(name)
	if err != nil {
		return nil, err
	}

	return src.RunQuery(ctx, q)
}

// sparseColumns reads field 0 of every record as the date and the given count
// fields as one increment series each.
func sparseColumns(query string, records []graphsource.Record, countFields ...int) ([]timeseries.Sparse, error) {
	out := make([]timeseries.Sparse, len(countFields))

	for i, rec := range records {
		d, err := rec.Date(0)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", query, i, err)
		}

		for j, field := range countFields {
			n, err := rec.Int(field)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: %w", query, i, err)
			}
			out[j] = append(out[j], timeseries.Point{Date: d, Delta: n})
		}
	}

	return out, nil
}

// denseColumns accumulates each sparse series over domain.
func denseColumns(query string, domain []civil.Date, sparse ...timeseries.Sparse) ([]timeseries.Dense, error) {
	out := make([]timeseries.Dense, 0, len(sparse))
	for _, s := range sparse {
		dense, err := timeseries.Accumulate(s, domain)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", query, err)
		}
		out = append(out, dense)
	}

	return out, nil
}

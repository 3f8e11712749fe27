package report

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/carbocation/interactomestats/graphsource"
	"github.com/carbocation/interactomestats/timeseries"
)

// PublicationRow is the running number of publications and experiments as of
// a release date.
type PublicationRow struct {
	Date         civil.Date `csv:"Date"`
	Publications int64      `csv:"Publications"`
	Experiments  int64      `csv:"Experiments"`
}

// PublicationsExperiments lists running totals on each day that something was
// released. Days without releases are not listed.
func PublicationsExperiments(ctx context.Context, src graphsource.Source) ([]PublicationRow, error) {
	records, err := fetch(ctx, src, QueryPublicationExperiment)
	if err != nil {
		return nil, err
	}

	increments := make([]timeseries.Row, 0, len(records))
	for i, rec := range records {
		d, err := rec.Date(0)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", QueryPublicationExperiment, i, err)
		}
		publications, err := rec.Int(1)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", QueryPublicationExperiment, i, err)
		}
		experiments, err := rec.Int(2)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", QueryPublicationExperiment, i, err)
		}

		increments = append(increments, timeseries.Row{Date: d, Values: []int64{publications, experiments}})
	}

	totals, err := timeseries.RunningTotals(increments)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", QueryPublicationExperiment, err)
	}

	out := make([]PublicationRow, 0, len(totals))
	for _, row := range totals {
		out = append(out, PublicationRow{Date: row.Date, Publications: row.Values[0], Experiments: row.Values[1]})
	}

	return out, nil
}

package report

import (
	"context"
	"fmt"

	"github.com/carbocation/interactomestats/graphsource"
)

// SummaryRow is one headline count of the database.
type SummaryRow struct {
	Feature string `csv:"Feature"`
	Count   int64  `csv:"Count"`
}

// Relabel reads (label, count) records as summary rows, unchanged.
func Relabel(records []graphsource.Record) ([]SummaryRow, error) {
	out := make([]SummaryRow, 0, len(records))
	for i, rec := range records {
		label, err := rec.Text(0)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", QuerySummaryTable, i, err)
		}
		count, err := rec.Int(1)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", QuerySummaryTable, i, err)
		}

		out = append(out, SummaryRow{Feature: label, Count: count})
	}

	return out, nil
}

// Summary runs the summary query and relabels its rows.
func Summary(ctx context.Context, src graphsource.Source) ([]SummaryRow, error) {
	records, err := fetch(ctx, src, QuerySummaryTable)
	if err != nil {
		return nil, err
	}

	return Relabel(records)
}

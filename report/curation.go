package report

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/carbocation/interactomestats/daterange"
	"github.com/carbocation/interactomestats/graphsource"
	"github.com/carbocation/interactomestats/timeseries"
)

// CurationStart is the first day of the curation source series.
var CurationStart = civil.Date{Year: 2003, Month: 1, Day: 1}

// Column positions in the merged curation table.
const (
	curationRequested = iota
	curationSubmitted
	curationAll
)

// CurationRow splits the cumulative number of curated binary interactions by
// what prompted their curation. CuratorChoice is whatever is left once the
// author-driven categories are taken out of the total.
type CurationRow struct {
	Date          civil.Date `csv:"Date"`
	Requested     int64      `csv:"Curation_requested_by_author"`
	Submitted     int64      `csv:"Author_submitted"`
	CuratorChoice int64      `csv:"Curator_choice/Funding_priority"`
}

// CurationDistribution builds the curation source table from CurationStart
// through today. A day on which the named categories exceed the total is an
// error.
func CurationDistribution(ctx context.Context, src graphsource.Source, today civil.Date) ([]CurationRow, error) {
	domain, err := daterange.Build(CurationStart, today)
	if err != nil {
		return nil, err
	}

	var sparse []timeseries.Sparse
	for _, query := range []string{QueryCurationRequest, QueryAuthorSubmission, QueryAllCurations} {
		records, err := fetch(ctx, src, query)
		if err != nil {
			return nil, err
		}
		column, err := sparseColumns(query, records, 1)
		if err != nil {
			return nil, err
		}
		sparse = append(sparse, column[0])
	}

	columns, err := denseColumns("curation", domain, sparse...)
	if err != nil {
		return nil, err
	}

	merged, err := timeseries.Merge(columns, domain)
	if err != nil {
		return nil, err
	}

	derived, err := timeseries.DeriveResiduals(merged, curationAll, []int{curationRequested, curationSubmitted})
	if err != nil {
		return nil, err
	}

	out := make([]CurationRow, 0, len(derived))
	for _, row := range derived {
		out = append(out, CurationRow{
			Date:          row.Date,
			Requested:     row.Values[curationRequested],
			Submitted:     row.Values[curationSubmitted],
			CuratorChoice: row.Values[curationAll],
		})
	}

	return out, nil
}

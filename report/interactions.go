package report

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/carbocation/interactomestats/daterange"
	"github.com/carbocation/interactomestats/graphsource"
	"github.com/carbocation/interactomestats/timeseries"
)

// InteractionsStart is the first day of the interaction growth series.
var InteractionsStart = civil.Date{Year: 2003, Month: 8, Day: 1}

// InteractionRow is one day of cumulative interaction counts.
type InteractionRow struct {
	Date             civil.Date `csv:"Date"`
	NAry             int64      `csv:"N-ary_interactions_reports"`
	SpokeExpanded    int64      `csv:"All_interactions_after_spoke_expansion"`
	AllInteractions  int64      `csv:"All_interaction_reports"`
	BinaryExperiment int64      `csv:"Binary_interaction_reports"`
}

// Interactions builds the cumulative interaction table from the first
// reported day through today.
func Interactions(ctx context.Context, src graphsource.Source, today civil.Date) ([]InteractionRow, error) {
	domain, err := daterange.Build(InteractionsStart, today)
	if err != nil {
		return nil, err
	}

	nAryRecords, err := fetch(ctx, src, QueryNAry)
	if err != nil {
		return nil, err
	}
	nAry, err := sparseColumns(QueryNAry, nAryRecords, 1)
	if err != nil {
		return nil, err
	}

	binaryRecords, err := fetch(ctx, src, QueryBinary)
	if err != nil {
		return nil, err
	}
	binary, err := sparseColumns(QueryBinary, binaryRecords, 1, 2)
	if err != nil {
		return nil, err
	}

	trueBinaryRecords, err := fetch(ctx, src, QueryTrueBinary)
	if err != nil {
		return nil, err
	}
	trueBinary, err := sparseColumns(QueryTrueBinary, trueBinaryRecords, 1)
	if err != nil {
		return nil, err
	}

	columns, err := denseColumns("interactions", domain, nAry[0], binary[0], binary[1], trueBinary[0])
	if err != nil {
		return nil, err
	}

	merged, err := timeseries.Merge(columns, domain)
	if err != nil {
		return nil, err
	}

	out := make([]InteractionRow, 0, len(merged))
	for _, row := range merged {
		out = append(out, InteractionRow{
			Date:             row.Date,
			NAry:             row.Values[0],
			SpokeExpanded:    row.Values[1],
			AllInteractions:  row.Values[2],
			BinaryExperiment: row.Values[3],
		})
	}

	return out, nil
}

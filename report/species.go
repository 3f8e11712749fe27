package report

import (
	"context"
	"fmt"

	"github.com/carbocation/interactomestats/graphsource"
	"github.com/carbocation/interactomestats/proteome"
)

// SpeciesCoverage measures the best-covered organisms in the graph against
// their reference proteomes.
func SpeciesCoverage(ctx context.Context, src graphsource.Source, catalog proteome.Catalog, fetcher proteome.ReferenceFetcher) ([]proteome.Coverage, error) {
	records, err := fetch(ctx, src, QuerySpeciesCover)
	if err != nil {
		return nil, err
	}

	observed := make([]proteome.Observed, 0, len(records))
	for i, rec := range records {
		accessions, err := rec.List(1)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", QuerySpeciesCover, i, err)
		}
		name, err := rec.Text(2)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", QuerySpeciesCover, i, err)
		}

		observed = append(observed, proteome.Observed{Organism: name, Accessions: accessions})
	}

	return proteome.Compute(ctx, observed, catalog, fetcher)
}

package proteome

import (
	"context"
	"log"
	"sort"
)

// Observed is the set of proteins seen in the interaction graph for one
// organism.
type Observed struct {
	Organism   string
	Accessions []string
}

// Coverage is one row of the species coverage report.
type Coverage struct {
	ShortName  string     `csv:"Organism"`
	Reference  int        `csv:"Reference"`
	Percentage Percentage `csv:"Percentage"`
	Proteins   int        `csv:"Proteins"`
}

// Compute measures every observed organism against its reference proteome.
// The result is ordered by reference proteome size, largest first; organisms
// with equal sizes keep their input order. Any failure aborts the whole
// computation.
func Compute(ctx context.Context, observed []Observed, catalog Catalog, fetcher ReferenceFetcher) ([]Coverage, error) {
	out := make([]Coverage, 0, len(observed))

	for _, organism := range observed {
		name := CleanOrganismName(organism.Organism)

		catalogID, err := catalog.Lookup(name)
		if err != nil {
			return nil, err
		}

		short, err := ShortName(name)
		if err != nil {
			return nil, err
		}

		reference, err := fetcher.FetchReferenceAccessions(ctx, catalogID)
		if err != nil {
			return nil, err
		}
		log.Printf("Fetched %d reference accessions for %s (%s)\n", len(reference), name, catalogID)

		covered := CompareCoverage(organism.Accessions, reference)

		pct, err := CoveragePercentage(covered, len(reference))
		if err != nil {
			return nil, err
		}

		out = append(out, Coverage{
			ShortName:  short,
			Reference:  len(reference),
			Percentage: pct,
			Proteins:   covered,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Reference > out[j].Reference
	})

	return out, nil
}

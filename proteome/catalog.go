package proteome

import (
	"context"
	"fmt"
)

// Catalog maps an organism's display name, as stored in the interaction
// graph, to the identifier of its reference proteome.
type Catalog map[string]string

// ReferenceProteomes is the set of organisms covered by the species report,
// keyed by cleaned organism name (see CleanOrganismName).
var ReferenceProteomes = Catalog{
	"Homo sapiens":                                "UP000005640",
	"Mus musculus":                                "UP000000589",
	"Arabidopsis thaliana (Mouse-ear cress)":      "UP000006548",
	"Saccharomyces cerevisiae":                    "UP000002311",
	"Escherichia coli (strain K12)":               "UP000000625",
	"Drosophila melanogaster (Fruit fly)":         "UP000000803",
	"Rattus norvegicus (Rat)":                     "UP000002494",
	"Caenorhabditis elegans":                      "UP000001940",
	"Synechocystis sp. (strain PCC 6803  Kazusa)": "UP000001425",
	"SARS-CoV-2":                                  "UP000464024",

	"Campylobacter jejuni subsp. jejuni serotype O:2 (strain NCTC 11168)": "UP000000799",
}

// Lookup returns the reference proteome identifier for organism.
func (c Catalog) Lookup(organism string) (string, error) {
	id, exists := c[organism]
	if !exists {
		return "", fmt.Errorf("%w: %q", ErrUnknownOrganism, organism)
	}

	return id, nil
}

// ReferenceFetcher retrieves the accessions that make up a reference
// proteome.
type ReferenceFetcher interface {
	FetchReferenceAccessions(ctx context.Context, catalogID string) (map[string]struct{}, error)
}

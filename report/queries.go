package report

import (
	"embed"
	"fmt"
	"strings"

	"github.com/carbocation/interactomestats/graphsource"
)

//go:embed queries/*.cypher
var embeddedQueries embed.FS

// Query names, in the order a run issues them.
const (
	QueryNAry                  = "n_ary"
	QueryBinary                = "binary"
	QueryTrueBinary            = "true_binary"
	QueryPublicationExperiment = "publication_experiment"
	QueryCurationRequest       = "curation_request"
	QueryAuthorSubmission      = "author_submission"
	QueryAllCurations          = "all_curations"
	QueryMethodDistribution    = "method_distribution"
	QuerySpeciesCover          = "species_cover"
	QuerySummaryTable          = "summary_table"
)

var queryOrder = []string{
	QueryNAry,
	QueryBinary,
	QueryTrueBinary,
	QueryPublicationExperiment,
	QueryCurationRequest,
	QueryAuthorSubmission,
	QueryAllCurations,
	QueryMethodDistribution,
	QuerySpeciesCover,
	QuerySummaryTable,
}

// PandemicTaxID is always added to the species report, whatever its rank.
const PandemicTaxID = 2697049

// mutationTerms are the PSI-MI feature types counted as mutations.
var mutationTerms = []string{
	"MI:0118", "MI:0119", "MI:0573", "MI:1129", "MI:0429", "MI:1128", "MI:1133",
	"MI:1130", "MI:2333", "MI:0382", "MI:1132", "MI:1131", "MI:2226", "MI:2227",
}

var queryParams = map[string]map[string]interface{}{
	QuerySpeciesCover: {"pandemicTaxID": int64(PandemicTaxID)},
	QuerySummaryTable: {"mutationTerms": mutationTerms},
}

// Query loads one of the embedded queries together with its parameters.
func Query(name string) (graphsource.QuerySpec, error) {
	text, err := embeddedQueries.ReadFile(fmt.Sprintf("queries/%s.cypher", name))
	if err != nil {
		return graphsource.QuerySpec{}, fmt.Errorf("no query named %s: %v", name, err)
	}

	return graphsource.QuerySpec{
		Name:   name,
		Text:   strings.TrimSpace(string(text)),
		Params: queryParams[name],
	}, nil
}

// Queries returns every query a run issues, in order.
func Queries() ([]graphsource.QuerySpec, error) {
	out := make([]graphsource.QuerySpec, 0, len(queryOrder))
	for _, name := range queryOrder {
		q, err := Query(name)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}

	return out, nil
}

// Package graphsource runs declarative queries against the interaction graph
// and hands back their rows as positional records. The Neo4j backend talks to
// a live database; the TSV backend replays previously exported results.
package graphsource

import "context"

// QuerySpec names a query and carries its text. Name doubles as the file stem
// when results are recorded or replayed.
type QuerySpec struct {
	Name   string
	Text   string
	Params map[string]interface{}
}

// Source executes one query at a time and returns every row it produced, in
// the order the query returned them.
type Source interface {
	RunQuery(ctx context.Context, q QuerySpec) ([]Record, error)
}

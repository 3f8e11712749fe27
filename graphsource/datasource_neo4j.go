package graphsource

import (
	"context"
	"fmt"
	"log"

	"github.com/carbocation/pfx"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neo4j runs queries against a live graph database in read transactions.
type Neo4j struct {
	Database string

	driver neo4j.DriverWithContext
}

// NewNeo4j connects to uri and verifies that the server is reachable with the
// given credentials. An empty database selects the server default.
func NewNeo4j(ctx context.Context, uri, user, password, database string) (*Neo4j, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, pfx.Err(err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, pfx.Err(fmt.Errorf("%s: %v", uri, err))
	}

	return &Neo4j{Database: database, driver: driver}, nil
}

// RunQuery executes q and collects every row.
func (n *Neo4j) RunQuery(ctx context.Context, q QuerySpec) ([]Record, error) {
	session := n.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: n.Database,
	})
	defer session.Close(ctx)

	log.Printf("Running query %s\n", q.Name)

	collected, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		result, err := tx.Run(ctx, q.Text, q.Params)
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	})
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("query %s: %v", q.Name, err))
	}

	rows := collected.([]*neo4j.Record)
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, Record{Keys: row.Keys, Values: row.Values})
	}

	log.Printf("Query %s returned %d rows\n", q.Name, len(out))

	return out, nil
}

// Close releases the driver's connection pool.
func (n *Neo4j) Close(ctx context.Context) error {
	return n.driver.Close(ctx)
}

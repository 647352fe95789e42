package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/diagram"
)

// Statement is one parameterized Cypher statement.
type Statement struct {
	Cypher string
	Params map[string]any
}

// Neo4j loads documents into a Neo4j database using batch UNWIND queries.
// Every document replaces the nodes previously loaded under its name. All
// nodes written by one renderer carry the same export id.
type Neo4j struct {
	driver   neo4j.DriverWithContext
	database string
	exportID string
	// run executes one statement; replaced in tests.
	run func(ctx context.Context, st Statement) error
}

// NewNeo4j connects to Neo4j and returns a ready-to-use renderer. An empty
// database selects the server default.
func NewNeo4j(ctx context.Context, uri, user, password, database string) (*Neo4j, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("failed to connect to neo4j at %s: %w", uri, err)
	}

	n := &Neo4j{driver: driver, database: database, exportID: uuid.NewString()}
	n.run = n.execute
	return n, nil
}

// Close releases the underlying Neo4j driver resources.
func (n *Neo4j) Close(ctx context.Context) error {
	if n.driver == nil {
		return nil
	}
	return n.driver.Close(ctx)
}

func (n *Neo4j) execute(ctx context.Context, st Statement) error {
	opts := []neo4j.ExecuteQueryConfigurationOption{}
	if n.database != "" {
		opts = append(opts, neo4j.ExecuteQueryWithDatabase(n.database))
	}
	_, err := neo4j.ExecuteQuery(ctx, n.driver, st.Cypher, st.Params, neo4j.EagerResultTransformer, opts...)
	return err
}

// Render runs the statements of doc in order.
func (n *Neo4j) Render(ctx context.Context, doc Document) error {
	logger := ctxlog.FromContext(ctx)
	statements := Statements(doc, n.exportID)
	for i, st := range statements {
		if err := n.run(ctx, st); err != nil {
			return fmt.Errorf("neo4j statement %d of %d: %w", i+1, len(statements), err)
		}
	}
	logger.Info("Loaded diagram into Neo4j.", "diagram", doc.Name, "export_id", n.exportID, "nodes", doc.Graph.NodeCount(), "edges", doc.Graph.EdgeCount())
	return nil
}

// Statements returns the Cypher statements loading doc: cleanup, clusters,
// nodes, then edges. Empty batches are skipped.
func Statements(doc Document, exportID string) []Statement {
	name := doc.Name
	statements := []Statement{{
		Cypher: `MATCH (n {diagram: $diagram}) WHERE n:RteNode OR n:RteCluster DETACH DELETE n`,
		Params: map[string]any{"diagram": name},
	}}

	var clusters, nodes, edges []map[string]any
	doc.Graph.Walk(func(c *diagram.Cluster) {
		parent := ""
		if c.Parent() != nil {
			parent = strings.Join(c.Parent().Path(), "/")
		}
		path := strings.Join(c.Path(), "/")
		clusters = append(clusters, map[string]any{
			"path":   path,
			"id":     c.ID,
			"label":  c.Label,
			"parent": parent,
		})
		for _, n := range c.Nodes() {
			nodes = append(nodes, map[string]any{
				"id":         n.ID,
				"label":      n.Label,
				"shape":      string(n.Shape),
				"color":      string(n.Color),
				"font_color": string(n.FontColor),
				"cluster":    path,
			})
		}
		for _, e := range c.Edges() {
			edges = append(edges, map[string]any{
				"from":  e.From.ID,
				"to":    e.To.ID,
				"label": e.Label,
				"color": string(e.Color),
			})
		}
	})

	if len(clusters) > 0 {
		statements = append(statements, Statement{
			Cypher: `UNWIND $batch AS row
		 MERGE (c:RteCluster {diagram: $diagram, path: row.path})
		 SET c.id = row.id, c.label = row.label, c.export_id = $export
		 WITH c, row WHERE row.parent <> ''
		 MATCH (p:RteCluster {diagram: $diagram, path: row.parent})
		 MERGE (c)-[:IN_CLUSTER]->(p)`,
			Params: map[string]any{"diagram": name, "export": exportID, "batch": clusters},
		})
	}
	if len(nodes) > 0 {
		statements = append(statements, Statement{
			Cypher: `UNWIND $batch AS row
		 MERGE (n:RteNode {diagram: $diagram, id: row.id})
		 SET n.label = row.label, n.shape = row.shape, n.color = row.color, n.font_color = row.font_color, n.export_id = $export
		 WITH n, row
		 MATCH (c:RteCluster {diagram: $diagram, path: row.cluster})
		 MERGE (n)-[:IN_CLUSTER]->(c)`,
			Params: map[string]any{"diagram": name, "export": exportID, "batch": nodes},
		})
	}
	if len(edges) > 0 {
		statements = append(statements, Statement{
			Cypher: `UNWIND $batch AS row
		 MATCH (a:RteNode {diagram: $diagram, id: row.from}), (b:RteNode {diagram: $diagram, id: row.to})
		 CREATE (a)-[r:CONNECTS]->(b)
		 SET r.label = row.label, r.color = row.color`,
			Params: map[string]any{"diagram": name, "batch": edges},
		})
	}
	return statements
}

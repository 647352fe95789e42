package traverse

import (
	"testing"

	"github.com/specialistvlad/rtegraph/internal/config"
	"github.com/specialistvlad/rtegraph/internal/diagram"
	"github.com/specialistvlad/rtegraph/internal/resolve"
	"github.com/specialistvlad/rtegraph/internal/testutil"
)

type edgeView struct {
	From, To, Label string
}

func newEngine(t *testing.T, xml string) *Engine {
	t.Helper()
	return New(resolve.New(testutil.LoadIndex(t, xml)), config.DefaultViews())
}

func edgesOf(c *diagram.Cluster) []edgeView {
	var out []edgeView
	for _, e := range c.Edges() {
		out = append(out, edgeView{From: e.From.ID, To: e.To.ID, Label: e.Label})
	}
	return out
}

func nodeIDs(c *diagram.Cluster) []string {
	var out []string
	for _, n := range c.Nodes() {
		out = append(out, n.ID)
	}
	return out
}

func clusterIDs(cs []*diagram.Cluster) []string {
	var out []string
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

// allEdges collects the edges of every cluster of g.
func allEdges(g *diagram.Graph) []*diagram.Edge {
	var out []*diagram.Edge
	g.Walk(func(c *diagram.Cluster) {
		out = append(out, c.Edges()...)
	})
	return out
}

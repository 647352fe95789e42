package render

import (
	"context"
	"fmt"

	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/diagram"
	"gopkg.in/yaml.v3"
)

// Snapshot is the serializable form of a graph.
type Snapshot struct {
	Title    string           `yaml:"title"`
	Clusters []ClusterDoc     `yaml:"clusters,omitempty"`
	Legend   []LegendEntryDoc `yaml:"legend,omitempty"`
}

// ClusterDoc is one cluster of a Snapshot.
type ClusterDoc struct {
	ID       string       `yaml:"id"`
	Label    string       `yaml:"label"`
	Color    string       `yaml:"color,omitempty"`
	Nodes    []NodeDoc    `yaml:"nodes,omitempty"`
	Edges    []EdgeDoc    `yaml:"edges,omitempty"`
	Clusters []ClusterDoc `yaml:"clusters,omitempty"`
}

// NodeDoc is one node of a Snapshot.
type NodeDoc struct {
	ID         string `yaml:"id"`
	Label      string `yaml:"label"`
	Shape      string `yaml:"shape,omitempty"`
	Color      string `yaml:"color,omitempty"`
	FontColor  string `yaml:"font_color,omitempty"`
	Annotation string `yaml:"annotation,omitempty"`
}

// EdgeDoc is one edge of a Snapshot.
type EdgeDoc struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label string `yaml:"label,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// LegendEntryDoc is one legend line of a Snapshot.
type LegendEntryDoc struct {
	Text      string `yaml:"text"`
	Shape     string `yaml:"shape,omitempty"`
	Color     string `yaml:"color,omitempty"`
	FontColor string `yaml:"font_color,omitempty"`
}

// NewSnapshot captures g.
func NewSnapshot(g *diagram.Graph) Snapshot {
	s := Snapshot{Title: g.Title}
	for _, c := range g.Clusters() {
		s.Clusters = append(s.Clusters, clusterDoc(c))
	}
	for _, l := range g.Legend() {
		s.Legend = append(s.Legend, LegendEntryDoc{
			Text:      l.Text,
			Shape:     string(l.Shape),
			Color:     string(l.Color),
			FontColor: string(l.FontColor),
		})
	}
	return s
}

func clusterDoc(c *diagram.Cluster) ClusterDoc {
	d := ClusterDoc{ID: c.ID, Label: c.Label, Color: string(c.Color)}
	for _, n := range c.Nodes() {
		d.Nodes = append(d.Nodes, NodeDoc{
			ID:         n.ID,
			Label:      n.Label,
			Shape:      string(n.Shape),
			Color:      string(n.Color),
			FontColor:  string(n.FontColor),
			Annotation: n.Annotation,
		})
	}
	for _, e := range c.Edges() {
		d.Edges = append(d.Edges, EdgeDoc{From: e.From.ID, To: e.To.ID, Label: e.Label, Color: string(e.Color)})
	}
	for _, sub := range c.Clusters() {
		d.Clusters = append(d.Clusters, clusterDoc(sub))
	}
	return d
}

// YAML writes graph snapshots as YAML documents.
type YAML struct {
	Dir string
}

// Render writes <Dir>/<name>.yaml.
func (y *YAML) Render(ctx context.Context, doc Document) error {
	data, err := yaml.Marshal(NewSnapshot(doc.Graph))
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	path, err := writeFile(y.Dir, doc.Name, "yaml", data)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Wrote YAML snapshot.", "path", path)
	return nil
}

package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/emicklei/dot"
	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/diagram"
)

// DOT writes Graphviz DOT sources.
type DOT struct {
	Dir string
}

// Render writes <Dir>/<name>.dot.
func (d *DOT) Render(ctx context.Context, doc Document) error {
	path, err := writeFile(d.Dir, doc.Name, "dot", []byte(Encode(doc.Graph)))
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Wrote DOT file.", "path", path)
	return nil
}

// Encode returns the DOT source of g. Clusters become cluster subgraphs and
// the legend, when present, is drawn as a cluster of its own.
func Encode(g *diagram.Graph) string {
	out := dot.NewGraph(dot.Directed)
	out.Attr("label", g.Title)
	out.Attr("labelloc", "t")
	out.Attr("compound", "true")
	out.Attr("fontname", "Helvetica")

	nodes := make(map[*diagram.Node]dot.Node)
	for _, c := range g.Clusters() {
		encodeCluster(out, c, nodes)
	}
	for _, c := range g.Clusters() {
		encodeEdges(out, c, nodes)
	}

	if legend := g.Legend(); len(legend) > 0 {
		sub := out.Subgraph("legend", dot.ClusterOption{})
		sub.Attr("label", "Legend")
		for i, entry := range legend {
			n := sub.Node(fmt.Sprintf("legend_%d", i))
			styleNode(n, entry.Text, entry.Shape, entry.Color, entry.FontColor)
		}
	}
	return out.String()
}

func encodeCluster(parent *dot.Graph, c *diagram.Cluster, nodes map[*diagram.Node]dot.Node) {
	sub := parent.Subgraph(strings.Join(c.Path(), "/"), dot.ClusterOption{})
	sub.Attr("label", c.Label)
	if c.Color != diagram.ColorNone {
		sub.Attr("style", "filled")
		sub.Attr("fillcolor", string(c.Color))
	}

	for _, n := range c.Nodes() {
		dn := sub.Node(n.ID)
		styleNode(dn, n.Label, n.Shape, n.Color, n.FontColor)
		if n.Annotation != "" {
			dn.Attr("xlabel", quoteLabel(n.Annotation, false))
		}
		nodes[n] = dn
	}
	for _, child := range c.Clusters() {
		encodeCluster(sub, child, nodes)
	}
}

// encodeEdges runs after every cluster is declared so that edges may point at
// nodes of clusters encoded later.
func encodeEdges(out *dot.Graph, c *diagram.Cluster, nodes map[*diagram.Node]dot.Node) {
	for _, e := range c.Edges() {
		from, okFrom := nodes[e.From]
		to, okTo := nodes[e.To]
		if !okFrom || !okTo {
			continue
		}
		de := out.Edge(from, to)
		if e.Label != "" {
			de.Attr("label", e.Label)
		}
		if e.Color != diagram.ColorNone {
			de.Attr("color", string(e.Color))
			de.Attr("fontcolor", string(e.Color))
		}
	}
	for _, child := range c.Clusters() {
		encodeEdges(out, child, nodes)
	}
}

func styleNode(n dot.Node, label string, shape diagram.Shape, fill, font diagram.Color) {
	n.Attr("label", quoteLabel(label, shape == diagram.ShapeRecord))
	if shape != "" {
		n.Attr("shape", string(shape))
	}
	if fill != diagram.ColorNone {
		n.Attr("style", "filled")
		n.Attr("fillcolor", string(fill))
	}
	if font != diagram.ColorNone {
		n.Attr("fontcolor", string(font))
	}
}

var (
	labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	// recordEscaper also escapes the characters record labels treat as field syntax.
	recordEscaper = strings.NewReplacer(
		`\`, `\\`, `"`, `\"`, "\n", `\n`,
		"{", `\{`, "}", `\}`, "|", `\|`, "<", `\<`, ">", `\>`,
	)
)

// quoteLabel returns label as a quoted DOT string whose escapes Graphviz
// interprets: newlines become \n line breaks.
func quoteLabel(label string, record bool) dot.Literal {
	if record {
		return dot.Literal(`"` + recordEscaper.Replace(label) + `"`)
	}
	return dot.Literal(`"` + labelEscaper.Replace(label) + `"`)
}

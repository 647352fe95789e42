// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package diagram

import (
	"fmt"
	"slices"
	"strings"
)

// Element is the part of a model element the builder reads.
type Element interface {
	Field(name string) string
	Identity() string
}

// Node is a rendering unit.
type Node struct {
	ID         string
	Label      string
	Shape      Shape
	Color      Color
	FontColor  Color
	// Annotation is free text rendered alongside the node, one line per
	// distinct Annotate call.
	Annotation string
}

// Annotate adds a line to the node's annotation. A line already present is
// not repeated.
func (n *Node) Annotate(line string) {
	if line == "" || slices.Contains(strings.Split(n.Annotation, "\n"), line) {
		return
	}
	if n.Annotation != "" {
		n.Annotation += "\n"
	}
	n.Annotation += line
}

// Edge is a directed connection scoped to a cluster.
type Edge struct {
	From  *Node
	To    *Node
	Label string
	Color Color
}

// Cluster is a named box of nodes, sub-clusters and edges.
type Cluster struct {
	ID    string
	Label string
	// Color fills the cluster background when set.
	Color Color

	parent   *Cluster
	nodes    []*Node
	clusters []*Cluster
	byID     map[string]*Cluster
	edges    []*Edge
}

// Parent returns the enclosing cluster, or nil for a top-level one.
func (c *Cluster) Parent() *Cluster { return c.parent }

// Nodes returns the nodes declared in c, in creation order.
func (c *Cluster) Nodes() []*Node { return c.nodes }

// Clusters returns the direct sub-clusters, in creation order.
func (c *Cluster) Clusters() []*Cluster { return c.clusters }

// Edges returns the edges scoped to c, in creation order.
func (c *Cluster) Edges() []*Edge { return c.edges }

// Path returns the IDs from the top-level cluster down to c.
func (c *Cluster) Path() []string {
	if c.parent == nil {
		return []string{c.ID}
	}
	return append(c.parent.Path(), c.ID)
}

// LegendEntry is one static line of the legend.
type LegendEntry struct {
	Text      string
	Color     Color
	Shape     Shape
	FontColor Color
}

// Graph is the deduplicated cluster/node/edge graph of one report.
type Graph struct {
	Title string

	roots    []*Cluster
	rootByID map[string]*Cluster
	nodes    map[string]*Node
	legend   []LegendEntry
	edges    int
	anon     int
}

// New creates an empty graph.
func New(title string) *Graph {
	return &Graph{
		Title:    title,
		rootByID: make(map[string]*Cluster),
		nodes:    make(map[string]*Node),
	}
}

// Cluster returns the cluster registered under id in parent's scope, creating
// it with the given label when absent. A nil parent selects the top level.
// The label of an existing cluster is left untouched.
func (g *Graph) Cluster(parent *Cluster, id, label string) *Cluster {
	scope := g.rootByID
	if parent != nil {
		scope = parent.byID
	}
	if c, ok := scope[id]; ok {
		return c
	}

	c := &Cluster{
		ID:     id,
		Label:  label,
		parent: parent,
		byID:   make(map[string]*Cluster),
	}
	scope[id] = c
	if parent == nil {
		g.roots = append(g.roots, c)
	} else {
		parent.clusters = append(parent.clusters, c)
	}
	return c
}

// Node returns the node for el, creating it in c when no node with the same
// identifier exists anywhere in the graph. The identifier is the element's
// name, or its id when unnamed; the label has one "Display: value" line per
// property with a non-empty value.
func (g *Graph) Node(c *Cluster, el Element, style NodeStyle) *Node {
	id := el.Identity()
	if id == "" {
		g.anon++
		id = fmt.Sprintf("anonymous_%d", g.anon)
	}
	if n, ok := g.nodes[id]; ok {
		return n
	}
	return g.register(id, c, Label(el, style.Properties, id), style)
}

// NodeWithID is Node for synthetic nodes keyed by a caller-supplied identifier.
func (g *Graph) NodeWithID(id string, c *Cluster, label string, style NodeStyle) *Node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	if label == "" {
		label = id
	}
	return g.register(id, c, label, style)
}

func (g *Graph) register(id string, c *Cluster, label string, style NodeStyle) *Node {
	n := &Node{
		ID:        id,
		Label:     label,
		Shape:     style.Shape,
		Color:     style.Color,
		FontColor: style.FontColor,
	}
	g.nodes[id] = n
	if c != nil {
		c.nodes = append(c.nodes, n)
	}
	return n
}

// Lookup returns the node registered under id.
func (g *Graph) Lookup(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Connect adds a new edge from -> to scoped to c. Edges are never merged.
func (g *Graph) Connect(from, to *Node, c *Cluster, label string, color Color) *Edge {
	e := &Edge{From: from, To: to, Label: label, Color: color}
	if c != nil {
		c.edges = append(c.edges, e)
	}
	g.edges++
	return e
}

// AddLegend appends a static legend entry.
func (g *Graph) AddLegend(text string, color Color, shape Shape, fontColor Color) {
	g.legend = append(g.legend, LegendEntry{Text: text, Color: color, Shape: shape, FontColor: fontColor})
}

// Clusters returns the top-level clusters in creation order.
func (g *Graph) Clusters() []*Cluster { return g.roots }

// Legend returns the legend entries in insertion order.
func (g *Graph) Legend() []LegendEntry { return g.legend }

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Empty reports whether no cluster was created.
func (g *Graph) Empty() bool { return len(g.roots) == 0 }

// Walk visits every cluster depth-first, parents before children.
func (g *Graph) Walk(fn func(c *Cluster)) {
	var visit func(c *Cluster)
	visit = func(c *Cluster) {
		fn(c)
		for _, sub := range c.clusters {
			visit(sub)
		}
	}
	for _, c := range g.roots {
		visit(c)
	}
}

// Label renders the property lines of el. When no property has a value the
// fallback is returned instead.
func Label(el Element, props []Property, fallback string) string {
	lines := make([]string, 0, len(props))
	for _, p := range props {
		v := el.Field(p.Field)
		if v == "" {
			continue
		}
		if p.Display == "" {
			lines = append(lines, v)
			continue
		}
		lines = append(lines, p.Display+": "+v)
	}
	if len(lines) == 0 {
		return fallback
	}
	return strings.Join(lines, "\n")
}

// Key joins identifier parts into a content-derived identifier.
func Key(parts ...string) string {
	return strings.Join(parts, "/")
}

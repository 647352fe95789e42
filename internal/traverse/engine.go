package traverse

import (
	"context"
	"fmt"

	"github.com/specialistvlad/rtegraph/internal/config"
	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/diagram"
	"github.com/specialistvlad/rtegraph/internal/model"
	"github.com/specialistvlad/rtegraph/internal/resolve"
)

// UnknownTaskLabel is the label of every unknown-task placeholder.
const UnknownTaskLabel = "Unknown Task"

// Engine holds what every traversal reads: the model, its resolver and the
// view configuration.
type Engine struct {
	ix       *model.Index
	resolver *resolve.Resolver
	views    *config.Views
}

// New returns an Engine over the resolver's model.
func New(r *resolve.Resolver, views *config.Views) *Engine {
	return &Engine{
		ix:       r.Index(),
		resolver: r,
		views:    views,
	}
}

// Views returns the view configuration the engine styles nodes with.
func (e *Engine) Views() *config.Views {
	return e.views
}

// componentCluster returns the sub-cluster of parent boxing the executables of
// owner, labelled with the owner name, its core and its partition.
func (e *Engine) componentCluster(g *diagram.Graph, parent *diagram.Cluster, owner model.Element) *diagram.Cluster {
	name := owner.Identity()
	label := name
	if p, ok := e.ix.PartitionOf(owner); ok {
		label = fmt.Sprintf("%s\nCore: %s\nPartition: %s", name, p.Field("coreId"), p.Identity())
	}
	c := g.Cluster(parent, diagram.Key("component", name), label)
	c.Color = e.views.Style(config.KindComponent).Color
	return c
}

// executableNode returns the node of a runnable or BSW module entity.
func (e *Engine) executableNode(g *diagram.Graph, c *diagram.Cluster, x resolve.Executable) *diagram.Node {
	kind := config.KindRunnable
	if x.Kind == resolve.KindBswEntity {
		kind = config.KindBswEntity
	}
	return g.Node(c, x.Element, e.views.Style(kind))
}

// eventNode returns the node of an event inside the top-level cluster c.
// Event nodes are keyed by cluster and event name: mappings of one event
// converge inside a cluster, and every cluster reached by the event draws it.
func (e *Engine) eventNode(g *diagram.Graph, c *diagram.Cluster, event model.Element, name string) *diagram.Node {
	style := e.views.Style(config.KindEvent)
	return g.NodeWithID(diagram.Key("event", c.ID, name), c, diagram.Label(event, style.Properties, name), style)
}

// contextNode returns the node of a resolved task or interrupt, or the
// placeholder registered under unknownID. A placeholder standing in for a
// named but unresolvable task is annotated with that name.
func (e *Engine) contextNode(ctx context.Context, g *diagram.Graph, c *diagram.Cluster, tc resolve.Context, unknownID string) *diagram.Node {
	switch tc.Kind {
	case resolve.ContextTask:
		return g.Node(c, tc.Element, e.views.Style(config.KindTask))
	case resolve.ContextInterrupt:
		return g.Node(c, tc.Element, e.views.Style(config.KindInterrupt))
	}
	n := e.unknownTask(g, c, unknownID)
	if tc.Name != "" {
		ctxlog.FromContext(ctx).Warn("Task name resolves to neither a task nor an interrupt, using placeholder.", "task", tc.Name)
		n.Annotate(tc.Name)
	}
	return n
}

func (e *Engine) unknownTask(g *diagram.Graph, c *diagram.Cluster, id string) *diagram.Node {
	return g.NodeWithID(diagram.Key("unknown_task", id), c, UnknownTaskLabel, e.views.Style(config.KindUnknownTask))
}

// mappedContext resolves the scheduling context of a mapping. Unmapped
// mappings yield the unknown context whatever their task name says.
func (e *Engine) mappedContext(m resolve.Mapping) (resolve.Context, error) {
	if !m.MappedToTask {
		return resolve.Context{Kind: resolve.ContextUnknown}, nil
	}
	return e.resolver.TaskOrInterrupt(m.TaskName)
}

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

// Edge labels of the exclusive-area report.
const (
	LabelRunsInside = "runs inside"
	LabelCanEnter   = "can enter"
)

// Areas lists the exclusive areas of the model after checking that the caller
// graph the area traversal recurses over is acyclic.
func (e *Engine) Areas(ctx context.Context) ([]model.Element, error) {
	if err := e.resolver.CheckCallerCycles(ctx); err != nil {
		return nil, err
	}
	areas, err := e.ix.Query(model.PathExclusiveAreas)
	if err != nil {
		return nil, fmt.Errorf("list exclusive areas: %w", err)
	}
	return areas, nil
}

// ExclusiveAreas draws every exclusive area of the model into g.
func (e *Engine) ExclusiveAreas(ctx context.Context, g *diagram.Graph) error {
	areas, err := e.Areas(ctx)
	if err != nil {
		return err
	}
	for _, area := range areas {
		if err := e.ExclusiveArea(ctx, g, area); err != nil {
			return err
		}
	}
	return nil
}

// AreaName returns the "<owner> - <area>" title of an exclusive area.
func (e *Engine) AreaName(area model.Element) string {
	owner, _ := e.ix.OwnerOf(area)
	return owner.Identity() + " - " + area.Identity()
}

// ExclusiveArea draws one exclusive area into its own top-level cluster: the
// area node, its optimization reason when present, and every executable that
// runs inside or can enter it together with its caller chain and task
// mappings.
func (e *Engine) ExclusiveArea(ctx context.Context, g *diagram.Graph, area model.Element) error {
	owner, _ := e.ix.OwnerOf(area)
	logger := ctxlog.FromContext(ctx).With("exclusive_area", area.Identity(), "owner", owner.Identity())
	ctx = ctxlog.WithLogger(ctx, logger)

	c := g.Cluster(nil, diagram.Key("exclusive_area", owner.Identity(), area.Identity()), e.AreaName(area))

	kind := config.KindExclusiveArea
	reason := area.Field("optimizationReason")
	if reason != "" {
		kind = config.KindExclusiveAreaOptimized
	}
	style := e.views.Style(kind)
	an := g.NodeWithID(c.ID, c, diagram.Label(area, style.Properties, area.Identity()), style)

	if reason != "" {
		rn := g.NodeWithID(diagram.Key("reason", c.ID), c, reason, e.views.Style(config.KindOptimizationReason))
		g.Connect(an, rn, c, "", diagram.ColorNone)
	}

	w := &areaWalker{engine: e, graph: g, cluster: c, expanded: make(map[string]*diagram.Node)}
	members := []struct {
		path  model.Path
		label string
	}{
		{model.PathRunsInside, LabelRunsInside},
		{model.PathCanEnter, LabelCanEnter},
	}
	for _, member := range members {
		refs, err := e.ix.QueryFrom(area, member.path)
		if err != nil {
			return err
		}
		for _, ref := range refs {
			x, err := e.resolver.Executable(ref.Attr("ref"))
			if err != nil {
				return fmt.Errorf("exclusive area %q: %w", e.AreaName(area), err)
			}
			xn, err := w.attach(ctx, x)
			if err != nil {
				return err
			}
			g.Connect(xn, an, c, member.label, diagram.ColorNone)
		}
	}

	logger.Debug("Exclusive area drawn.", "executables", len(w.expanded), "optimized", reason != "")
	return nil
}

// areaWalker attaches executables to one exclusive-area cluster. Each
// executable is expanded at most once per area.
type areaWalker struct {
	engine   *Engine
	graph    *diagram.Graph
	cluster  *diagram.Cluster
	expanded map[string]*diagram.Node
}

// attach adds x, then walks its direct callers (caller -> callee edges). An
// executable without callers is connected to the contexts its events are
// mapped to instead, or to the unknown-task placeholder when it has none.
func (w *areaWalker) attach(ctx context.Context, x resolve.Executable) (*diagram.Node, error) {
	if n, ok := w.expanded[x.ID()]; ok {
		return n, nil
	}
	e, g, c := w.engine, w.graph, w.cluster
	xn := e.executableNode(g, c, x)
	w.expanded[x.ID()] = xn

	callers, err := e.resolver.Callers(x)
	if err != nil {
		return nil, err
	}
	for _, caller := range callers {
		cn, err := w.attach(ctx, caller)
		if err != nil {
			return nil, err
		}
		g.Connect(cn, xn, c, "", diagram.ColorNone)
	}
	if len(callers) > 0 {
		return xn, nil
	}

	mappings, err := e.resolver.MappingsOf(x.ID())
	if err != nil {
		return nil, err
	}
	if len(mappings) == 0 {
		ctxlog.FromContext(ctx).Warn("Executable has neither callers nor task mappings, using placeholder.", "executable", x.Element)
		g.Connect(xn, e.unknownTask(g, c, c.ID), c, "", diagram.ColorNone)
		return xn, nil
	}
	for _, m := range mappings {
		tc, err := e.mappedContext(m)
		if err != nil {
			return nil, err
		}
		g.Connect(xn, e.contextNode(ctx, g, c, tc, c.ID), c, "Event:"+m.EventName, diagram.ColorNone)
	}
	return xn, nil
}

package traverse

import (
	"context"
	"fmt"

	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/diagram"
	"github.com/specialistvlad/rtegraph/internal/model"
	"github.com/specialistvlad/rtegraph/internal/resolve"
)

// UnknownBucket labels the task cluster of mappings without a resolvable task.
const UnknownBucket = "Unknown"

// unknownClusterID keeps the bucket apart from a real context named Unknown.
const unknownClusterID = "unknown"

// mappingVisitor receives every task-event mapping with its event and
// resolved executable.
type mappingVisitor func(event model.Element, m resolve.Mapping, x resolve.Executable) error

// eachMapping visits the mappings of every event in document order.
func (e *Engine) eachMapping(ctx context.Context, visit mappingVisitor) error {
	logger := ctxlog.FromContext(ctx)

	events, err := e.resolver.Events()
	if err != nil {
		return err
	}
	for _, event := range events {
		mappings, err := e.resolver.Mappings(event)
		if err != nil {
			return err
		}
		for _, m := range mappings {
			x, err := e.resolver.Executable(m.ExecutableRef)
			if err != nil {
				return fmt.Errorf("event %q: %w", m.EventName, err)
			}
			logger.Debug("Visiting task-event mapping.", "event", m.EventName, "executable", x.Element, "owner", x.Owner, "task", m.TaskName, "mapped", m.MappedToTask)
			if err := visit(event, m, x); err != nil {
				return err
			}
		}
	}
	return nil
}

// EventTasks draws one cluster per task-event mapping. Each cluster holds the
// executable inside its component sub-cluster, the event, and the task,
// interrupt or unknown-task placeholder the event is mapped to.
func (e *Engine) EventTasks(ctx context.Context, g *diagram.Graph) error {
	n := 0
	return e.eachMapping(ctx, func(event model.Element, m resolve.Mapping, x resolve.Executable) error {
		n++
		c := g.Cluster(nil, fmt.Sprintf("mapping_%d", n), m.EventName)

		xn := e.executableNode(g, e.componentCluster(g, c, x.Owner), x)
		en := e.eventNode(g, c, event, m.EventName)
		g.Connect(xn, en, c, "", diagram.ColorNone)

		tc, err := e.mappedContext(m)
		if err != nil {
			return err
		}
		g.Connect(en, e.contextNode(ctx, g, c, tc, c.ID), c, "", diagram.ColorNone)
		return nil
	})
}

// EventTasksByTask draws one cluster per task or interrupt, plus the Unknown
// bucket, so that all events scheduled in the same context share a box.
func (e *Engine) EventTasksByTask(ctx context.Context, g *diagram.Graph) error {
	return e.eachMapping(ctx, func(event model.Element, m resolve.Mapping, x resolve.Executable) error {
		tc, err := e.mappedContext(m)
		if err != nil {
			return err
		}
		c := g.Cluster(nil, unknownClusterID, UnknownBucket)
		if tc.Known() {
			c = g.Cluster(nil, diagram.Key("task", tc.Name), tc.Name)
		}

		xn := e.executableNode(g, e.componentCluster(g, c, x.Owner), x)
		en := e.eventNode(g, c, event, m.EventName)
		g.Connect(xn, en, c, "", diagram.ColorNone)
		g.Connect(en, e.contextNode(ctx, g, c, tc, UnknownBucket), c, "", diagram.ColorNone)
		return nil
	})
}

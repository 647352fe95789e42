package report

import (
	"context"

	"github.com/specialistvlad/rtegraph/internal/config"
	"github.com/specialistvlad/rtegraph/internal/diagram"
	"github.com/specialistvlad/rtegraph/internal/render"
	"github.com/specialistvlad/rtegraph/internal/traverse"
)

// Report names.
const (
	EventTask        = "event-task"
	EventTaskGrouped = "event-task-grouped"
	ExclusiveAreas   = "exclusive-areas"
	PortMapping      = "port-mapping"
)

// NewEventTask returns the flat event to task mapping report.
func NewEventTask() Report {
	return &single{
		name:   EventTask,
		title:  "Event to Task Mapping",
		legend: config.LegendEventTask,
		fill:   eventTasks,
	}
}

// NewEventTaskGrouped returns the event to task mapping report grouped by task.
func NewEventTaskGrouped() Report {
	return &single{
		name:   EventTaskGrouped,
		title:  "Event to Task Mapping by Task",
		legend: config.LegendEventTask,
		fill:   eventTasksByTask,
	}
}

// NewPortMapping returns the port mapping report.
func NewPortMapping() Report {
	return &single{
		name:   PortMapping,
		title:  "Port Mapping",
		legend: config.LegendPortMapping,
		fill:   ports,
	}
}

// exclusiveAreas draws either one combined diagram or one diagram per area.
type exclusiveAreas struct {
	split bool
}

// NewExclusiveAreas returns the exclusive area report. With split set every
// area is rendered as a document of its own.
func NewExclusiveAreas(split bool) Report {
	return &exclusiveAreas{split: split}
}

func (r *exclusiveAreas) Name() string  { return ExclusiveAreas }
func (r *exclusiveAreas) Title() string { return "Exclusive Areas" }

func (r *exclusiveAreas) Documents(ctx context.Context, e *traverse.Engine) ([]render.Document, error) {
	if !r.split {
		combined := &single{name: ExclusiveAreas, title: r.Title(), legend: config.LegendExclusiveAreas, fill: exclusiveAreasCombined}
		return combined.Documents(ctx, e)
	}

	areas, err := e.Areas(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]render.Document, 0, len(areas))
	for _, area := range areas {
		name := e.AreaName(area)
		g := diagram.New(r.Title() + ": " + name)
		if err := e.ExclusiveArea(ctx, g, area); err != nil {
			return nil, err
		}
		addLegend(g, e, config.LegendExclusiveAreas)
		docs = append(docs, render.Document{Name: ExclusiveAreas + "_" + name, Graph: g})
	}
	return docs, nil
}

func eventTasks(ctx context.Context, e *traverse.Engine, g *diagram.Graph) error {
	return e.EventTasks(ctx, g)
}

func eventTasksByTask(ctx context.Context, e *traverse.Engine, g *diagram.Graph) error {
	return e.EventTasksByTask(ctx, g)
}

func ports(ctx context.Context, e *traverse.Engine, g *diagram.Graph) error {
	return e.Ports(ctx, g)
}

func exclusiveAreasCombined(ctx context.Context, e *traverse.Engine, g *diagram.Graph) error {
	return e.ExclusiveAreas(ctx, g)
}

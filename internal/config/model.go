package config

import (
	"maps"
	"slices"

	"github.com/specialistvlad/rtegraph/internal/diagram"
)

// Kind names a kind of diagram node a traversal produces.
type Kind string

const (
	KindEvent                  Kind = "event"
	KindRunnable               Kind = "runnable"
	KindBswEntity              Kind = "bsw_entity"
	KindComponent              Kind = "component"
	KindTask                   Kind = "task"
	KindInterrupt              Kind = "interrupt"
	KindUnknownTask            Kind = "unknown_task"
	KindExclusiveArea          Kind = "exclusive_area"
	KindExclusiveAreaOptimized Kind = "exclusive_area_optimized"
	KindOptimizationReason     Kind = "optimization_reason"
	KindProvidePort            Kind = "provide_port"
	KindRequirePort            Kind = "require_port"
)

// Kinds lists every node kind.
func Kinds() []Kind {
	return []Kind{
		KindEvent, KindRunnable, KindBswEntity, KindComponent,
		KindTask, KindInterrupt, KindUnknownTask,
		KindExclusiveArea, KindExclusiveAreaOptimized, KindOptimizationReason,
		KindProvidePort, KindRequirePort,
	}
}

// Valid reports whether k is a known node kind.
func (k Kind) Valid() bool {
	return slices.Contains(Kinds(), k)
}

// Views is the complete view configuration of a run.
type Views struct {
	Styles  map[Kind]diagram.NodeStyle
	Legends map[string][]diagram.LegendEntry
}

// Style returns the node style of kind k. Unconfigured kinds get a plain
// rectangle labelled by name.
func (v *Views) Style(k Kind) diagram.NodeStyle {
	if s, ok := v.Styles[k]; ok {
		return s
	}
	return diagram.NodeStyle{
		Shape:      diagram.ShapeRectangle,
		Properties: []diagram.Property{{Field: "name"}},
	}
}

// Legend returns the legend entries of a report.
func (v *Views) Legend(report string) []diagram.LegendEntry {
	return v.Legends[report]
}

// Clone returns a deep copy of v.
func (v *Views) Clone() *Views {
	out := &Views{
		Styles:  make(map[Kind]diagram.NodeStyle, len(v.Styles)),
		Legends: make(map[string][]diagram.LegendEntry, len(v.Legends)),
	}
	for k, s := range v.Styles {
		s.Properties = slices.Clone(s.Properties)
		out.Styles[k] = s
	}
	for name, entries := range v.Legends {
		out.Legends[name] = slices.Clone(entries)
	}
	return out
}

// LegendNames returns the names of the configured legends, sorted.
func (v *Views) LegendNames() []string {
	return slices.Sorted(maps.Keys(v.Legends))
}

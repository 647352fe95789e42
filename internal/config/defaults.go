package config

import "github.com/specialistvlad/rtegraph/internal/diagram"

// Legend names, one per report.
const (
	LegendEventTask      = "event-task"
	LegendExclusiveAreas = "exclusive-areas"
	LegendPortMapping    = "port-mapping"
)

// DefaultViews returns the built-in view configuration.
func DefaultViews() *Views {
	styles := map[Kind]diagram.NodeStyle{
		KindEvent: {
			Shape: diagram.ShapeEllipse,
			Color: diagram.ColorLightYellow,
			Properties: []diagram.Property{
				{Field: "name", Display: "Event"},
				{Field: "type", Display: "Type"},
			},
		},
		KindRunnable: {
			Shape: diagram.ShapeRecord,
			Color: diagram.ColorLightBlue,
			Properties: []diagram.Property{
				{Field: "name", Display: "Runnable"},
				{Field: "id", Display: "Id"},
			},
		},
		KindBswEntity: {
			Shape: diagram.ShapeRecord,
			Color: diagram.ColorPlum,
			Properties: []diagram.Property{
				{Field: "name", Display: "Entity"},
				{Field: "id", Display: "Id"},
			},
		},
		KindComponent: {
			Shape:      diagram.ShapeRectangle,
			Color:      diagram.ColorLightGray,
			Properties: []diagram.Property{{Field: "name"}},
		},
		KindTask: {
			Shape: diagram.ShapeRectangle,
			Color: diagram.ColorLightGreen,
			Properties: []diagram.Property{
				{Field: "name", Display: "Task"},
				{Field: "priority", Display: "Priority"},
			},
		},
		KindInterrupt: {
			Shape: diagram.ShapeRectangle,
			Color: diagram.ColorSalmon,
			Properties: []diagram.Property{
				{Field: "name", Display: "ISR"},
				{Field: "category", Display: "Category"},
			},
		},
		KindUnknownTask: {
			Shape:     diagram.ShapeRectangle,
			Color:     diagram.ColorRed,
			FontColor: diagram.ColorWhite,
		},
		KindExclusiveArea: {
			Shape:      diagram.ShapeRecord,
			Color:      diagram.ColorYellow,
			Properties: []diagram.Property{{Field: "name", Display: "Exclusive Area"}},
		},
		KindExclusiveAreaOptimized: {
			Shape:      diagram.ShapeRecord,
			Color:      diagram.ColorOrange,
			Properties: []diagram.Property{{Field: "name", Display: "Exclusive Area"}},
		},
		KindOptimizationReason: {
			Shape: diagram.ShapeEllipse,
			Color: diagram.ColorWhite,
		},
		KindProvidePort: {
			Shape:      diagram.ShapeRecord,
			Color:      diagram.ColorGreen,
			FontColor:  diagram.ColorWhite,
			Properties: []diagram.Property{{Field: "name", Display: "Provide Port"}},
		},
		KindRequirePort: {
			Shape:      diagram.ShapeRecord,
			Color:      diagram.ColorLightBlue,
			Properties: []diagram.Property{{Field: "name", Display: "Require Port"}},
		},
	}

	entry := func(text string, k Kind) diagram.LegendEntry {
		s := styles[k]
		return diagram.LegendEntry{Text: text, Color: s.Color, Shape: s.Shape, FontColor: s.FontColor}
	}

	return &Views{
		Styles: styles,
		Legends: map[string][]diagram.LegendEntry{
			LegendEventTask: {
				entry("Event", KindEvent),
				entry("Runnable", KindRunnable),
				entry("BSW module entity", KindBswEntity),
				entry("Task", KindTask),
				entry("Interrupt", KindInterrupt),
				entry("Unknown Task", KindUnknownTask),
			},
			LegendExclusiveAreas: {
				entry("Exclusive area", KindExclusiveArea),
				entry("Optimized exclusive area", KindExclusiveAreaOptimized),
				entry("Optimization reason", KindOptimizationReason),
				entry("Runnable", KindRunnable),
				entry("BSW module entity", KindBswEntity),
				entry("Task", KindTask),
				entry("Unknown Task", KindUnknownTask),
			},
			LegendPortMapping: {
				entry("Provide port", KindProvidePort),
				entry("Require port", KindRequirePort),
			},
		},
	}
}

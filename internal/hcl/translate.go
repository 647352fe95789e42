// This file contains the logic for overlaying decoded HCL view blocks onto
// the format-agnostic view configuration.

package hcl

import (
	"context"
	"fmt"
	"slices"

	"github.com/specialistvlad/rtegraph/internal/config"
	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/diagram"
)

// applyStyle overlays a style block onto the style of its kind. Omitted
// attributes keep their current value; property blocks, when present,
// replace the whole property list.
func (l *Loader) applyStyle(ctx context.Context, views *config.Views, s *Style) error {
	kind := config.Kind(s.Kind)
	if !kind.Valid() {
		return fmt.Errorf("style %q: unknown node kind, expected one of %v", s.Kind, config.Kinds())
	}
	logger := ctxlog.FromContext(ctx).With("style", s.Kind)
	ctx = ctxlog.WithLogger(ctx, logger)

	style := views.Style(kind)
	var err error
	if isExprDefined(ctx, s.Shape, "shape") {
		if style.Shape, err = evalShape(s.Shape, l.evalCtx); err != nil {
			return fmt.Errorf("style %q: %w", s.Kind, err)
		}
	}
	if isExprDefined(ctx, s.Color, "color") {
		if style.Color, err = evalColor(s.Color, l.evalCtx); err != nil {
			return fmt.Errorf("style %q: %w", s.Kind, err)
		}
	}
	if isExprDefined(ctx, s.FontColor, "font_color") {
		if style.FontColor, err = evalColor(s.FontColor, l.evalCtx); err != nil {
			return fmt.Errorf("style %q: %w", s.Kind, err)
		}
	}

	if len(s.Properties) > 0 {
		style.Properties = make([]diagram.Property, 0, len(s.Properties))
		for _, p := range s.Properties {
			prop := diagram.Property{Field: p.Field}
			if p.Display != nil {
				prop.Display = *p.Display
			}
			style.Properties = append(style.Properties, prop)
		}
	}

	logger.Debug("Applied view style.", "shape", style.Shape, "color", style.Color, "properties", len(style.Properties))
	views.Styles[kind] = style
	return nil
}

// applyLegend replaces the legend of a report. Only legends already
// configured can be replaced.
func (l *Loader) applyLegend(ctx context.Context, views *config.Views, lg *Legend) error {
	if !slices.Contains(views.LegendNames(), lg.Report) {
		return fmt.Errorf("legend %q: unknown legend, expected one of %v", lg.Report, views.LegendNames())
	}
	entries := make([]diagram.LegendEntry, 0, len(lg.Entries))
	for _, e := range lg.Entries {
		entry := diagram.LegendEntry{Text: e.Text, Shape: diagram.ShapeRectangle}
		var err error
		if isExprDefined(ctx, e.Shape, "shape") {
			if entry.Shape, err = evalShape(e.Shape, l.evalCtx); err != nil {
				return legendError(lg, e, err)
			}
		}
		if isExprDefined(ctx, e.Color, "color") {
			if entry.Color, err = evalColor(e.Color, l.evalCtx); err != nil {
				return legendError(lg, e, err)
			}
		}
		if isExprDefined(ctx, e.FontColor, "font_color") {
			if entry.FontColor, err = evalColor(e.FontColor, l.evalCtx); err != nil {
				return legendError(lg, e, err)
			}
		}
		entries = append(entries, entry)
	}

	ctxlog.FromContext(ctx).Debug("Applied legend.", "report", lg.Report, "entries", len(entries))
	views.Legends[lg.Report] = entries
	return nil
}

func legendError(lg *Legend, e *Entry, err error) error {
	return fmt.Errorf("legend %q, entry %q: %w", lg.Report, e.Text, err)
}

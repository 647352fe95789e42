package app

import (
	"context"
	"slices"

	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/render"
)

// renderers builds the configured renderers. The returned function releases
// the resources they hold.
func (a *App) renderers(ctx context.Context) ([]render.Renderer, func(), error) {
	logger := ctxlog.FromContext(ctx)
	cfg := a.config

	var out []render.Renderer
	switch {
	case cfg.Format == "yaml":
		out = append(out, &render.YAML{Dir: cfg.OutDir})
	case slices.Contains(render.ImageFormats, cfg.Format):
		out = append(out, &render.Graphviz{Dir: cfg.OutDir, Binary: cfg.DotBinary, Format: cfg.Format})
	default:
		out = append(out, &render.DOT{Dir: cfg.OutDir})
	}

	cleanup := func() {}
	if cfg.Neo4jURI != "" {
		n, err := render.NewNeo4j(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword, cfg.Neo4jDatabase)
		if err != nil {
			return nil, cleanup, err
		}
		out = append(out, n)
		cleanup = func() {
			if err := n.Close(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("Closing Neo4j driver failed.", "error", err)
			}
		}
		logger.Debug("Neo4j export enabled.", "uri", cfg.Neo4jURI)
	}

	logger.Debug("Renderers configured.", "format", cfg.Format, "count", len(out))
	return out, cleanup, nil
}

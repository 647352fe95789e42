package report

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/diagram"
	"github.com/specialistvlad/rtegraph/internal/render"
	"github.com/specialistvlad/rtegraph/internal/traverse"
)

// Report is one report driver.
type Report interface {
	// Name is the identifier used on the command line and as output name.
	Name() string
	// Title is the diagram title.
	Title() string
	// Documents builds the report. It returns no documents on error.
	Documents(ctx context.Context, e *traverse.Engine) ([]render.Document, error)
}

// strategy fills a graph using one traversal of the engine.
type strategy func(ctx context.Context, e *traverse.Engine, g *diagram.Graph) error

// single is a report drawn into exactly one graph.
type single struct {
	name   string
	title  string
	legend string
	fill   strategy
}

func (r *single) Name() string  { return r.name }
func (r *single) Title() string { return r.title }

func (r *single) Documents(ctx context.Context, e *traverse.Engine) ([]render.Document, error) {
	g := diagram.New(r.title)
	if err := r.fill(ctx, e, g); err != nil {
		return nil, err
	}
	addLegend(g, e, r.legend)
	return []render.Document{{Name: r.name, Graph: g}}, nil
}

func addLegend(g *diagram.Graph, e *traverse.Engine, name string) {
	for _, entry := range e.Views().Legend(name) {
		g.AddLegend(entry.Text, entry.Color, entry.Shape, entry.FontColor)
	}
}

// Run builds every report and, only when all of them succeed, renders their
// documents.
func Run(ctx context.Context, e *traverse.Engine, reports []Report, renderers ...render.Renderer) error {
	logger := ctxlog.FromContext(ctx)

	var docs []render.Document
	for _, r := range reports {
		start := time.Now()
		rlogger := logger.With("report", r.Name())
		rlogger.Info("Building report.")

		built, err := r.Documents(ctxlog.WithLogger(ctx, rlogger), e)
		if err != nil {
			return fmt.Errorf("report %s: %w", r.Name(), err)
		}
		for _, doc := range built {
			rlogger.Info("Report document built.", "document", doc.Name, "clusters", len(doc.Graph.Clusters()), "nodes", doc.Graph.NodeCount(), "edges", doc.Graph.EdgeCount(), "duration", time.Since(start))
			if doc.Graph.Empty() {
				rlogger.Warn("Report document is empty.", "document", doc.Name)
			}
		}
		docs = append(docs, built...)
	}

	return render.All(ctx, docs, renderers...)
}

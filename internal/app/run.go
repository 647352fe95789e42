package app

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/rtegraph/internal/metrics"
	"github.com/specialistvlad/rtegraph/internal/report"
	"github.com/specialistvlad/rtegraph/internal/resolve"
	"github.com/specialistvlad/rtegraph/internal/traverse"
)

// Run executes the configured reports against the configured model. A model
// integrity fault aborts the run before anything is written. When a metrics
// file is configured it is written whatever the outcome.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.")
	start := time.Now()

	var m *metrics.Registry
	if a.config.MetricsFile != "" {
		m = metrics.NewRegistry()
		defer func() {
			m.RecordRun(time.Since(start), err)
			if werr := m.WriteToTextfile(a.config.MetricsFile); werr != nil {
				a.logger.Error("Writing metrics failed.", "path", a.config.MetricsFile, "error", werr)
				if err == nil {
					err = werr
				}
			}
		}()
	}

	a.logger.Debug("Selecting reports.", "report", a.config.Report, "available", a.registry.Names())
	reports, err := a.registry.Select(a.config.Report, report.Options{Split: a.config.Split})
	if err != nil {
		return err
	}

	views, err := a.LoadViews(ctx)
	if err != nil {
		return err
	}

	ix, err := a.LoadModel(ctx)
	if err != nil {
		return err
	}
	engine := traverse.New(resolve.New(ix), views)

	renderers, cleanup, err := a.renderers(ctx)
	if err != nil {
		return fmt.Errorf("failed to configure renderers: %w", err)
	}
	defer cleanup()
	if m != nil {
		renderers = append(renderers, m)
	}

	if err := report.Run(ctx, engine, reports, renderers...); err != nil {
		return err
	}

	a.logger.Info("Run finished.", "reports", len(reports), "duration", time.Since(start))
	return nil
}

package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/rtegraph/internal/config"
	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/report"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	registry *report.Registry
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger and report registry. Nothing is loaded until Run.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		loader:   loader,
		registry: report.NewRegistry(),
	}
}

// Context returns ctx carrying the application logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

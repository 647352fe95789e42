package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/rtegraph/internal/config"
	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/model"
)

// LoadViews returns the built-in view configuration overlaid with the
// configured views path, if any.
func (a *App) LoadViews(ctx context.Context) (*config.Views, error) {
	logger := ctxlog.FromContext(ctx)
	defaults := config.DefaultViews()
	if a.config.ViewsPath == "" {
		logger.Debug("No views path configured, using built-in views.")
		return defaults, nil
	}

	logger.Debug("Loading views...", "views_path", a.config.ViewsPath)
	views, err := a.loader.Load(ctx, defaults, a.config.ViewsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load views: %w", err)
	}
	return views, nil
}

// LoadModel loads and indexes the configured model file.
func (a *App) LoadModel(ctx context.Context) (*model.Index, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading model...", "model_path", a.config.ModelPath)

	ix, err := model.Load(ctx, a.config.ModelPath)
	if err != nil {
		return nil, err
	}
	logger.Info("Model loaded successfully.", "path", a.config.ModelPath)
	return ix, nil
}

package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/rtegraph/internal/config"
	"github.com/specialistvlad/rtegraph/internal/diagram"
	"github.com/specialistvlad/rtegraph/internal/render"
	"github.com/specialistvlad/rtegraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader records the paths it was asked to load.
type stubLoader struct {
	paths []string
	err   error
}

func (s *stubLoader) Load(_ context.Context, base *config.Views, paths ...string) (*config.Views, error) {
	s.paths = paths
	if s.err != nil {
		return nil, s.err
	}
	views := base.Clone()
	st := views.Styles[config.KindEvent]
	st.Color = diagram.ColorCyan
	views.Styles[config.KindEvent] = st
	return views, nil
}

func newTestApp(t *testing.T, mutate func(*Config), loader config.Loader) *App {
	t.Helper()
	cfg := validConfig()
	mutate(&cfg)
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)
	return NewApp(&testutil.SafeBuffer{}, appConfig, loader)
}

func TestLoadViews(t *testing.T) {
	t.Run("no views path uses defaults", func(t *testing.T) {
		loader := &stubLoader{}
		a := newTestApp(t, func(*Config) {}, loader)

		views, err := a.LoadViews(context.Background())
		require.NoError(t, err)
		assert.Nil(t, loader.paths, "loader is not consulted")
		assert.Equal(t, config.DefaultViews().Style(config.KindEvent), views.Style(config.KindEvent))
	})

	t.Run("views path is overlaid on defaults", func(t *testing.T) {
		loader := &stubLoader{}
		a := newTestApp(t, func(c *Config) { c.ViewsPath = "views" }, loader)

		views, err := a.LoadViews(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"views"}, loader.paths)
		assert.Equal(t, diagram.ColorCyan, views.Style(config.KindEvent).Color)
	})

	t.Run("loader error is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		a := newTestApp(t, func(c *Config) { c.ViewsPath = "views" }, &stubLoader{err: boom})

		_, err := a.LoadViews(context.Background())
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to load views")
	})
}

func TestLoadModel(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"model.xml": testutil.ScenarioModel})

	t.Run("loads the configured file", func(t *testing.T) {
		a := newTestApp(t, func(c *Config) { c.ModelPath = filepath.Join(dir, "model.xml") }, &stubLoader{})

		ix, err := a.LoadModel(context.Background())
		require.NoError(t, err)
		_, ok := ix.ByID("R1")
		assert.True(t, ok)
	})

	t.Run("missing file", func(t *testing.T) {
		a := newTestApp(t, func(c *Config) { c.ModelPath = filepath.Join(dir, "absent.xml") }, &stubLoader{})

		_, err := a.LoadModel(context.Background())
		assert.Error(t, err)
	})
}

func TestRenderers(t *testing.T) {
	testCases := []struct {
		format string
		want   render.Renderer
	}{
		{format: "dot", want: &render.DOT{Dir: "."}},
		{format: "svg", want: &render.Graphviz{Dir: ".", Binary: "dot", Format: "svg"}},
		{format: "yaml", want: &render.YAML{Dir: "."}},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			a := newTestApp(t, func(c *Config) { c.Format = tc.format }, &stubLoader{})

			renderers, cleanup, err := a.renderers(context.Background())
			require.NoError(t, err)
			defer cleanup()
			assert.Equal(t, []render.Renderer{tc.want}, renderers)
		})
	}
}

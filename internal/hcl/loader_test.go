package hcl

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/rtegraph/internal/config"
	"github.com/specialistvlad/rtegraph/internal/diagram"
	"github.com/specialistvlad/rtegraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, files map[string]string) (*config.Views, error) {
	t.Helper()
	root := testutil.WriteFiles(t, files)
	return NewLoader().Load(context.Background(), config.DefaultViews(), filepath.Join(root, "views"))
}

func TestLoadStyle(t *testing.T) {
	views, err := load(t, map[string]string{
		"views/main.hcl": `
style "runnable" {
  shape      = shape.ellipse
  color      = color.cyan
  font_color = color.black

  property "name" { display = "R" }
  property "symbol" {}
}

style "task" {
  color = color.none
}
`,
	})
	require.NoError(t, err)

	r := views.Style(config.KindRunnable)
	assert.Equal(t, diagram.ShapeEllipse, r.Shape)
	assert.Equal(t, diagram.ColorCyan, r.Color)
	assert.Equal(t, diagram.ColorBlack, r.FontColor)
	assert.Equal(t, []diagram.Property{{Field: "name", Display: "R"}, {Field: "symbol"}}, r.Properties)

	task := views.Style(config.KindTask)
	defaults := config.DefaultViews().Style(config.KindTask)
	assert.Equal(t, diagram.ColorNone, task.Color)
	assert.Equal(t, defaults.Shape, task.Shape, "omitted attributes keep their default")
	assert.Equal(t, defaults.Properties, task.Properties)
}

func TestLoadLegend(t *testing.T) {
	views, err := load(t, map[string]string{
		"views/legend.hcl": `
legend "port-mapping" {
  entry "Sender" {
    color = color.green
    shape = shape.record
  }
  entry "Plain" {}
}
`,
	})
	require.NoError(t, err)

	assert.Equal(t, []diagram.LegendEntry{
		{Text: "Sender", Color: diagram.ColorGreen, Shape: diagram.ShapeRecord},
		{Text: "Plain", Shape: diagram.ShapeRectangle},
	}, views.Legend(config.LegendPortMapping))
	assert.Equal(t, config.DefaultViews().Legend(config.LegendEventTask), views.Legend(config.LegendEventTask))
}

func TestLoadLaterFilesWin(t *testing.T) {
	views, err := load(t, map[string]string{
		"views/a.hcl":        `style "event" { color = color.red }`,
		"views/nested/b.hcl": `style "event" { color = color.blue }`,
	})
	require.NoError(t, err)
	assert.Equal(t, diagram.ColorBlue, views.Style(config.KindEvent).Color)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "shape outside the closed set",
			content: `style "event" { shape = shape.circle }`,
			wantErr: "Unsupported attribute",
		},
		{
			name:    "color outside the palette",
			content: `style "event" { color = color.magenta }`,
			wantErr: "Unsupported attribute",
		},
		{
			name:    "literal bypassing the tokens",
			content: `style "event" { shape = "hexagon" }`,
			wantErr: `unknown shape "hexagon"`,
		},
		{
			name:    "non-string value",
			content: `style "event" { color = 3 }`,
			wantErr: "expected a string",
		},
		{
			name:    "unknown kind",
			content: `style "gizmo" { }`,
			wantErr: "unknown node kind",
		},
		{
			name:    "bad legend color",
			content: `legend "port-mapping" { entry "y" { font_color = "mauve" } }`,
			wantErr: `legend "port-mapping", entry "y"`,
		},
		{
			name:    "unknown legend",
			content: `legend "port-maping" { entry "Sender" {} }`,
			wantErr: `legend "port-maping": unknown legend, expected one of [event-task exclusive-areas port-mapping]`,
		},
		{
			name:    "unknown block",
			content: `palette "dark" { color = color.red }`,
			wantErr: `Blocks of type "palette" are not expected here.`,
		},
		{
			name:    "syntax",
			content: `style "event" {`,
			wantErr: "failed to parse HCL file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(t, map[string]string{"views/main.hcl": tc.content})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadIgnoresUnknownAttributes(t *testing.T) {
	views, err := load(t, map[string]string{
		"views/main.hcl": `
theme = "dark"
style "event" { color = color.red }
`,
	})
	require.NoError(t, err)
	assert.Equal(t, diagram.ColorRed, views.Style(config.KindEvent).Color)
}

func TestLoadWithoutPaths(t *testing.T) {
	base := config.DefaultViews()
	views, err := NewLoader().Load(context.Background(), base)
	require.NoError(t, err)
	assert.Equal(t, base, views)
	assert.NotSame(t, base, views)
}

func TestLoadMissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), config.DefaultViews(), filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

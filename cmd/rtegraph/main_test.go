package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/rtegraph/internal/cli"
	"github.com/specialistvlad/rtegraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"model.xml":  testutil.ScenarioModel,
		"broken.xml": testutil.BrokenReferenceModel,
	})
	out := filepath.Join(dir, "out")

	t.Run("writes the selected report", func(t *testing.T) {
		var buf bytes.Buffer
		err := run(context.Background(), &buf, []string{"-report", "port-mapping", "-out", out, filepath.Join(dir, "model.xml")})
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(out, "port-mapping.dot"))
		assert.NoError(t, err)
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, run(context.Background(), &buf, []string{"-h"}))
	})

	t.Run("usage error carries exit code 2", func(t *testing.T) {
		var buf bytes.Buffer
		err := run(context.Background(), &buf, []string{"-format", "bmp", filepath.Join(dir, "model.xml")})

		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("integrity fault is a runtime error", func(t *testing.T) {
		var buf bytes.Buffer
		err := run(context.Background(), &buf, []string{"-out", filepath.Join(dir, "broken-out"), filepath.Join(dir, "broken.xml")})

		require.Error(t, err)
		var exitErr *cli.ExitError
		assert.NotErrorAs(t, err, &exitErr)
	})
}

// Package integrationtests runs the application end to end against model
// fixtures written to a temporary directory.
package integrationtests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/rtegraph/internal/app"
	"github.com/specialistvlad/rtegraph/internal/hcl"
	"github.com/specialistvlad/rtegraph/internal/testutil"
	"github.com/stretchr/testify/require"
)

// ModelFile is the name RunApp expects the model under in its files map.
const ModelFile = "model.xml"

// HarnessResult holds the outcomes of an application run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	OutDir    string
}

// Outputs returns the file names written to the output directory, sorted.
func (r *HarnessResult) Outputs(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(r.OutDir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// Read returns the content of an output file.
func (r *HarnessResult) Read(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.OutDir, name))
	require.NoError(t, err)
	return string(data)
}

// RunApp writes files to a temporary directory and runs the application
// against them. The model must be provided under ModelFile. configure may
// adjust the default configuration before it is validated.
func RunApp(t *testing.T, files map[string]string, configure func(*app.Config)) *HarnessResult {
	t.Helper()
	return RunAppWithContext(context.Background(), t, files, configure)
}

// RunAppWithContext is RunApp with a caller provided context.
func RunAppWithContext(ctx context.Context, t *testing.T, files map[string]string, configure func(*app.Config)) *HarnessResult {
	t.Helper()

	tmpDir := testutil.WriteFiles(t, files)
	outDir := filepath.Join(tmpDir, "out")

	cfg := app.Config{
		ModelPath: filepath.Join(tmpDir, ModelFile),
		Report:    "all",
		OutDir:    outDir,
		Format:    "dot",
		DotBinary: "dot",
		LogLevel:  "debug",
		LogFormat: "text",
	}
	if configure != nil {
		configure(&cfg)
	}
	if cfg.ViewsPath != "" && !filepath.IsAbs(cfg.ViewsPath) {
		cfg.ViewsPath = filepath.Join(tmpDir, cfg.ViewsPath)
	}

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return &HarnessResult{Err: err, OutDir: outDir}
	}

	logBuffer := &testutil.SafeBuffer{}
	testApp := app.NewApp(logBuffer, appConfig, hcl.NewLoader())
	runErr := testApp.Run(ctx)

	testutil.Logf(t, logBuffer)

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		OutDir:    outDir,
	}
}

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/rtegraph/internal/config"
	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	evalCtx *hcl.EvalContext
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL view configuration loader.
func NewLoader() *Loader {
	return &Loader{evalCtx: newEvalContext()}
}

// Load parses every .hcl file found under paths, in lexical order, and
// overlays its blocks onto a copy of base. Later files win.
func (l *Loader) Load(ctx context.Context, base *config.Views, paths ...string) (*config.Views, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	views := base.Clone()
	if len(paths) == 0 {
		return views, nil
	}

	hclFiles, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	styles, legends := 0, 0

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, l.evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		if err := checkRemain(ctx, file, root.Remain); err != nil {
			return nil, err
		}

		for _, s := range root.Styles {
			if err := l.applyStyle(ctx, views, s); err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			styles++
		}
		for _, lg := range root.Legends {
			if err := l.applyLegend(ctx, views, lg); err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			legends++
		}
	}

	logger.Debug("HCL loading complete.", "files", len(hclFiles), "styles", styles, "legends", legends)
	return views, nil
}

// checkRemain rejects unknown top-level blocks left over after decoding.
// Unknown top-level attributes are only logged.
func checkRemain(ctx context.Context, file string, remain hcl.Body) error {
	// JustAttributes also reports blocks already decoded into fileRoot, so
	// only its attributes are used.
	attrs, _ := remain.JustAttributes()
	schema := &hcl.BodySchema{}
	for name := range attrs {
		schema.Attributes = append(schema.Attributes, hcl.AttributeSchema{Name: name})
	}
	if _, diags := remain.Content(schema); diags.HasErrors() {
		return fmt.Errorf("unsupported content in HCL file %s: %w", file, diags)
	}
	if len(attrs) > 0 {
		ctxlog.FromContext(ctx).Warn("Ignoring unknown top-level attributes.", "file", file, "count", len(attrs))
	}
	return nil
}

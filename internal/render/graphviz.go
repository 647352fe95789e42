package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/rtegraph/internal/ctxlog"
)

// Image formats the Graphviz renderer produces.
var ImageFormats = []string{"svg", "png", "pdf"}

// Graphviz pipes the DOT source of a document through the Graphviz `dot`
// binary to produce an image.
type Graphviz struct {
	Dir    string
	Binary string
	Format string
}

// Render writes <Dir>/<name>.<Format>.
func (g *Graphviz) Render(ctx context.Context, doc Document) error {
	logger := ctxlog.FromContext(ctx)

	binary := g.Binary
	if binary == "" {
		binary = "dot"
	}
	if err := os.MkdirAll(g.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(g.Dir, FileName(doc.Name)+"."+g.Format)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, "-T"+g.Format, "-o", path)
	cmd.Stdin = strings.NewReader(Encode(doc.Graph))
	cmd.Stderr = &stderr

	logger.Debug("Running Graphviz.", "binary", binary, "format", g.Format, "path", path)
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s -T%s: %w: %s", binary, g.Format, err, msg)
		}
		return fmt.Errorf("%s -T%s: %w", binary, g.Format, err)
	}
	logger.Info("Wrote image.", "path", path)
	return nil
}

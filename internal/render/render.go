package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/diagram"
)

// Document is one diagram to render. Name is the output base name.
type Document struct {
	Name  string
	Graph *diagram.Graph
}

// Renderer writes documents somewhere.
type Renderer interface {
	Render(ctx context.Context, doc Document) error
}

// All renders every document with every renderer, stopping at the first error.
func All(ctx context.Context, docs []Document, renderers ...Renderer) error {
	logger := ctxlog.FromContext(ctx)
	for _, doc := range docs {
		for _, r := range renderers {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := r.Render(ctx, doc); err != nil {
				return fmt.Errorf("render %s: %w", doc.Name, err)
			}
		}
		logger.Debug("Document rendered.", "name", doc.Name, "nodes", doc.Graph.NodeCount(), "edges", doc.Graph.EdgeCount())
	}
	return nil
}

// FileName reduces s to a portable file base name.
func FileName(s string) string {
	s = strings.TrimSpace(s)
	var sb strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_', r == '.':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "diagram"
	}
	return sb.String()
}

// writeFile writes data to dir/name.ext, creating dir when needed.
func writeFile(dir, name, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, FileName(name)+"."+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/diagram"
	"github.com/zclconf/go-cty/cty"
)

// newEvalContext exposes the style tokens as the `shape` and `color` objects.
// `color.none` selects the renderer default.
func newEvalContext() *hcl.EvalContext {
	shapes := make(map[string]cty.Value)
	for _, s := range diagram.Shapes() {
		shapes[string(s)] = cty.StringVal(string(s))
	}
	colors := map[string]cty.Value{"none": cty.StringVal(string(diagram.ColorNone))}
	for _, c := range diagram.Colors() {
		colors[string(c)] = cty.StringVal(string(c))
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"shape": cty.ObjectVal(shapes),
			"color": cty.ObjectVal(colors),
		},
	}
}

// isExprDefined checks if an HCL expression was actually present in the
// source. The decoder fills omitted optional attributes with zero-width
// placeholder expressions, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.", "attribute", attrName, "hcl_range", r.String(), "is_defined", defined)
	return defined
}

// evalString evaluates expr to a string.
func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsKnown() || !val.Type().Equals(cty.String) {
		return "", fmt.Errorf("%s: expected a string, got %s", expr.Range(), val.Type().FriendlyName())
	}
	return val.AsString(), nil
}

func evalShape(expr hcl.Expression, evalCtx *hcl.EvalContext) (diagram.Shape, error) {
	v, err := evalString(expr, evalCtx)
	if err != nil {
		return "", err
	}
	s := diagram.Shape(v)
	if !s.Valid() {
		return "", fmt.Errorf("%s: unknown shape %q, expected one of %v", expr.Range(), v, diagram.Shapes())
	}
	return s, nil
}

func evalColor(expr hcl.Expression, evalCtx *hcl.EvalContext) (diagram.Color, error) {
	v, err := evalString(expr, evalCtx)
	if err != nil {
		return "", err
	}
	c := diagram.Color(v)
	if !c.Valid() {
		return "", fmt.Errorf("%s: unknown color %q", expr.Range(), v)
	}
	return c, nil
}

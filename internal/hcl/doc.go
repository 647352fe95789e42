// Package hcl provides the HCL implementation of config.Loader. View files
// declare `style` and `legend` blocks whose shape and color attributes are
// evaluated against the closed `shape` and `color` objects, so a token outside
// the palette fails at load time with a source-located diagnostic.
package hcl

// Package config defines the format-agnostic view configuration: how each kind
// of model element is turned into a diagram node and which legend entries each
// report carries. The built-in look is returned by DefaultViews; concrete
// loaders, such as the HCL one, overlay user files on top of it.
package config

package config

import "context"

// Loader is the interface for a format-specific view configuration loader.
type Loader interface {
	// Load reads every configuration file found under paths and overlays it
	// onto base. base is not modified.
	Load(ctx context.Context, base *Views, paths ...string) (*Views, error)
}

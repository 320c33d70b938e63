package config

import "context"

// Loader is the interface for a format-specific option loader.
type Loader interface {
	// Load reads options from the given paths and merges them into a
	// single Model. Later paths override earlier ones.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

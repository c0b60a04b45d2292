// Package assets loads detailed model assemblies for catalog entities.
package assets

import (
	"context"
)

// Part is one piece of a model assembly. Offset and Radius are in model
// units; the scene applies the per-type scale when building visuals.
type Part struct {
	Name   string     `json:"name"`
	Offset [3]float64 `json:"offset"`
	Radius float64    `json:"radius"`
	Color  string     `json:"color"`
}

// Model is a detailed visual assembly: one or more parts around a
// common origin.
type Model struct {
	Name  string `json:"name"`
	Parts []Part `json:"parts"`
}

// Loader is the source of detailed model assemblies.
type Loader interface {
	// Name returns the loader name for display/logging.
	Name() string

	// Load fetches the model at a conventional relative path, e.g.
	// "planets/earth.json". Any error means the caller falls back to a
	// procedural proxy; there are no retries.
	Load(ctx context.Context, relPath string) (*Model, error)
}

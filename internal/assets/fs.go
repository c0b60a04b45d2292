package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FSLoader reads model assemblies from a directory tree laid out by the
// asset path convention.
type FSLoader struct {
	root string
}

// NewFSLoader creates a loader rooted at dir. The directory does not
// have to exist; every load then fails and the resolver falls back.
func NewFSLoader(dir string) *FSLoader {
	return &FSLoader{root: dir}
}

// Name implements Loader.
func (l *FSLoader) Name() string {
	return "fs:" + l.root
}

// Load implements Loader.
func (l *FSLoader) Load(ctx context.Context, relPath string) (*Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filepath.Join(l.root, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}

	var model Model
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("parse asset %s: %w", relPath, err)
	}

	if len(model.Parts) == 0 {
		return nil, fmt.Errorf("asset %s has no parts", relPath)
	}
	for i, part := range model.Parts {
		if part.Radius <= 0 {
			return nil, fmt.Errorf("asset %s: part %d has non-positive radius", relPath, i)
		}
	}

	return &model, nil
}

// NullLoader fails every load; it backs headless runs without an assets
// directory so all entities resolve to proxies.
type NullLoader struct{}

// Name implements Loader.
func (NullLoader) Name() string { return "null" }

// Load implements Loader.
func (NullLoader) Load(ctx context.Context, relPath string) (*Model, error) {
	return nil, fmt.Errorf("no asset source for %s", relPath)
}

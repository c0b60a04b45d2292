package scene

import (
	"context"

	"github.com/litescript/ls-atlas/internal/assets"
	"github.com/litescript/ls-atlas/internal/astro"
	"github.com/litescript/ls-atlas/internal/catalog"
	"github.com/litescript/ls-atlas/internal/logging"
)

// Outcome is the single result of resolving one entity. Exactly one of
// {detailed, fallback, skipped} holds: a detailed outcome has a handle
// and Fallback false, a fallback outcome has a handle and the load
// error that caused it, a skipped outcome has no handle.
type Outcome struct {
	Entity   catalog.Entity
	Handle   *VisualHandle
	Fallback bool
	Skipped  bool
	LoadErr  error // set on the fallback path, nil otherwise
}

// Resolver maps entities to visual handles.
type Resolver struct {
	loader assets.Loader
	log    *logging.Logger
}

// NewResolver creates a resolver backed by an asset loader.
func NewResolver(loader assets.Loader, log *logging.Logger) *Resolver {
	if log == nil {
		log = logging.Discard()
	}
	return &Resolver{loader: loader, log: log}
}

// Resolve produces the visual for one entity. Called once per entity,
// in any order. A load failure is recovered silently into the proxy
// path; an unknown entity type yields no visual at all, which is almost
// certainly malformed catalog data and is logged at warn level.
func (r *Resolver) Resolve(ctx context.Context, e catalog.Entity) Outcome {
	if e.Type == catalog.TypeUnknown {
		r.log.Warn("entity %q has unknown type, no visual created", e.Name)
		return Outcome{Entity: e, Skipped: true}
	}

	model, err := r.loader.Load(ctx, catalog.AssetPath(e))
	if err != nil {
		r.log.Debug("asset for %q unavailable (%v), using proxy", e.Name, err)
		return Outcome{Entity: e, Handle: proxyHandle(e), Fallback: true, LoadErr: err}
	}

	return Outcome{Entity: e, Handle: detailedHandle(e, model)}
}

// ResolveAll resolves a whole catalog sequentially. Used by the
// headless modes; the TUI resolves on its background loop instead.
func (r *Resolver) ResolveAll(ctx context.Context, entities []catalog.Entity) []Outcome {
	outcomes := make([]Outcome, 0, len(entities))
	for _, e := range entities {
		outcomes = append(outcomes, r.Resolve(ctx, e))
	}
	return outcomes
}

// detailedHandle builds a handle from a loaded assembly, applying the
// per-type scale to part offsets and radii.
func detailedHandle(e catalog.Entity, model *assets.Model) *VisualHandle {
	spec := catalog.SpecFor(e.Type)

	parts := make([]Part, 0, len(model.Parts))
	for _, p := range model.Parts {
		color := p.Color
		if color == "" {
			color = spec.Color
		}
		parts = append(parts, Part{
			Name: p.Name,
			Offset: astro.Vec3{
				X: p.Offset[0] * spec.Scale,
				Y: p.Offset[1] * spec.Scale,
				Z: p.Offset[2] * spec.Scale,
			},
			Radius: p.Radius * spec.Scale,
			Color:  color,
		})
	}

	return &VisualHandle{
		Entity:   e,
		Pos:      e.Pos,
		Visible:  true,
		Detailed: true,
		Parts:    parts,
	}
}

// proxyHandle builds the procedural fallback: a single sphere with the
// per-type scale and palette.
func proxyHandle(e catalog.Entity) *VisualHandle {
	spec := catalog.SpecFor(e.Type)
	return &VisualHandle{
		Entity:  e,
		Pos:     e.Pos,
		Visible: true,
		Parts: []Part{
			{Name: "proxy", Radius: spec.Scale, Color: spec.Color},
		},
	}
}

// Package scene maintains the renderable proxies for catalog entities:
// resolution to detailed or fallback visuals, the scene index, the
// visibility filter, and pointer picking.
package scene

import (
	"fmt"

	"github.com/litescript/ls-atlas/internal/astro"
	"github.com/litescript/ls-atlas/internal/catalog"
)

// Part is one sphere of a visual, in scene units (per-type scale
// already applied). Offset is relative to the handle position.
type Part struct {
	Name   string
	Offset astro.Vec3
	Radius float64
	Color  string
}

// VisualHandle is the renderable proxy bound to exactly one entity.
// The root carries the entity back-reference; parts of a detailed
// assembly carry no entity data of their own.
type VisualHandle struct {
	Entity   catalog.Entity
	Pos      astro.Vec3 // current placed position (entity position x scale factor)
	Visible  bool
	Detailed bool // true when backed by a loaded asset, false for the proxy
	Parts    []Part
}

// PartCenter returns the world-space center of a part.
func (h *VisualHandle) PartCenter(i int) astro.Vec3 {
	return h.Pos.Add(h.Parts[i].Offset)
}

// BoundingRadius returns the radius of the sphere around the handle
// position that contains every part.
func (h *VisualHandle) BoundingRadius() float64 {
	var r float64
	for _, p := range h.Parts {
		if pr := p.Offset.Norm() + p.Radius; pr > r {
			r = pr
		}
	}
	return r
}

// Index is the set of all handles attached to the scene. Handles are
// attached once per entity and never removed for the session.
type Index struct {
	handles []*VisualHandle
	byID    map[string]*VisualHandle
}

// NewIndex creates an empty scene index.
func NewIndex() *Index {
	return &Index{byID: make(map[string]*VisualHandle)}
}

// Attach adds a handle to the index. Attaching a second handle for the
// same entity is an invariant violation and fails.
func (x *Index) Attach(h *VisualHandle) error {
	id := h.Entity.ID
	if _, exists := x.byID[id]; exists {
		return fmt.Errorf("entity %q already has a visual", id)
	}
	x.handles = append(x.handles, h)
	x.byID[id] = h
	return nil
}

// ByID returns the handle for an entity ID, or nil.
func (x *Index) ByID(id string) *VisualHandle {
	return x.byID[id]
}

// Handles returns the attached handles in attach order. The slice is
// shared; callers must not modify it.
func (x *Index) Handles() []*VisualHandle {
	return x.handles
}

// Len returns the number of attached handles.
func (x *Index) Len() int {
	return len(x.handles)
}

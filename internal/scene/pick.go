package scene

import (
	"github.com/litescript/ls-atlas/internal/astro"
)

// Viewport is the pick surface in display cells.
type Viewport struct {
	Width  int
	Height int
}

// NormalizePointer maps pointer cell coordinates to device-independent
// [-1, 1] coordinates. The vertical axis is inverted: screen rows grow
// downward, scene Y grows upward.
func NormalizePointer(px, py int, vp Viewport) (float64, float64) {
	x := 2*(float64(px)+0.5)/float64(vp.Width) - 1
	y := -(2*(float64(py)+0.5)/float64(vp.Height) - 1)
	return x, y
}

// Pick resolves a pointer position to the entity-bearing handle it
// hits, or nil. All parts of every visible handle are candidates; the
// nearest intersection wins and resolves to its owning handle root,
// which carries the entity. Invisible handles are excluded. Pick never
// mutates scene state; selection-highlight bookkeeping belongs to the
// caller.
func Pick(px, py int, vp Viewport, view astro.View, index *Index) *VisualHandle {
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil
	}

	ndcX, ndcY := NormalizePointer(px, py, vp)
	ray := view.PickRay(ndcX, ndcY)

	var best *VisualHandle
	bestDist := 0.0

	for _, h := range index.Handles() {
		if !h.Visible {
			continue
		}
		for i := range h.Parts {
			dist, ok := ray.IntersectSphere(h.PartCenter(i), h.Parts[i].Radius)
			if !ok {
				continue
			}
			// Nearest hit wins; ties keep the first-enumerated handle.
			if best == nil || dist < bestDist {
				best = h
				bestDist = dist
			}
		}
	}

	return best
}

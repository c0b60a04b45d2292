package scene

import (
	"github.com/litescript/ls-atlas/internal/catalog"
)

// FilterState is the multi-facet visibility filter plus the placement
// scale factor. Mutated only by UI-originated commands.
type FilterState struct {
	Types       map[catalog.Type]bool
	Sectors     map[int]bool
	ScaleFactor float64
}

// NewFilterState returns the default filter for a catalog: all four
// types enabled, every sector present in the catalog enabled, scale 1.
func NewFilterState(entities []catalog.Entity) *FilterState {
	types := make(map[catalog.Type]bool, len(catalog.Types))
	for _, t := range catalog.Types {
		types[t] = true
	}
	sectors := make(map[int]bool)
	for _, s := range catalog.Sectors(entities) {
		sectors[s] = true
	}
	return &FilterState{Types: types, Sectors: sectors, ScaleFactor: 1}
}

// ToggleType flips one type toggle.
func (f *FilterState) ToggleType(t catalog.Type) {
	f.Types[t] = !f.Types[t]
}

// ToggleSector flips one sector toggle. Sectors absent from the catalog
// can still be toggled; they simply match no entity.
func (f *FilterState) ToggleSector(s int) {
	f.Sectors[s] = !f.Sectors[s]
}

// SetScale sets the placement scale factor, clamped to be non-negative.
func (f *FilterState) SetScale(v float64) {
	if v < 0 {
		v = 0
	}
	f.ScaleFactor = v
}

// Visible reports whether an entity passes the filter: its type toggle
// and its sector toggle must both be enabled.
func (f *FilterState) Visible(e catalog.Entity) bool {
	return f.Types[e.Type] && f.Sectors[e.Sector]
}

// Apply sets the render-visibility flag on every handle in the index.
// Hidden handles stay resident; the picker skips them.
func (f *FilterState) Apply(index *Index) {
	for _, h := range index.Handles() {
		h.Visible = f.Visible(h.Entity)
	}
}

// Rescale repositions every handle to entity position times the scale
// factor. Placement only: part geometry is never scaled by this factor.
// Always computed from the original entity coordinates so repeated or
// reverted changes cannot drift.
func (f *FilterState) Rescale(index *Index) {
	for _, h := range index.Handles() {
		h.Pos = h.Entity.Pos.Scale(f.ScaleFactor)
	}
}

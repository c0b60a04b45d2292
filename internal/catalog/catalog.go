// Package catalog defines the celestial entity model and the static
// per-type rendering constants.
package catalog

import (
	"github.com/litescript/ls-atlas/internal/astro"
)

// Type classifies a catalog entity.
type Type int

const (
	TypeUnknown Type = iota
	TypeStar
	TypePlanet
	TypeMoon
	TypeNebula
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeStar:
		return "star"
	case TypePlanet:
		return "planet"
	case TypeMoon:
		return "moon"
	case TypeNebula:
		return "nebula"
	default:
		return "unknown"
	}
}

// ParseType parses a type name. Unrecognized names yield TypeUnknown;
// validation reports them, parsing never fails.
func ParseType(s string) Type {
	switch s {
	case "star":
		return TypeStar
	case "planet":
		return TypePlanet
	case "moon":
		return TypeMoon
	case "nebula":
		return TypeNebula
	default:
		return TypeUnknown
	}
}

// Types lists the four known entity types in display order.
var Types = []Type{TypeStar, TypePlanet, TypeMoon, TypeNebula}

// Entity is one catalog record. Entities are immutable after load.
type Entity struct {
	ID            string
	Name          string
	Type          Type
	Pos           astro.Vec3
	Distance      float64 // light years from the observer
	Constellation string
	Sector        int
}

// RenderSpec holds the per-type visual constants: the scale applied to
// both detailed assets and proxy spheres, the proxy palette, and the
// plural segment of the asset path.
type RenderSpec struct {
	Scale    float64
	Color    string // hex palette color for the proxy
	Emissive bool
	Plural   string
}

// renderSpecs is the single lookup table replacing per-type branching.
var renderSpecs = map[Type]RenderSpec{
	TypeStar:   {Scale: 14, Color: "#FFD27D", Emissive: true, Plural: "stars"},
	TypePlanet: {Scale: 7, Color: "#3B82F6", Emissive: false, Plural: "planets"},
	TypeMoon:   {Scale: 4, Color: "#9CA3AF", Emissive: false, Plural: "moons"},
	TypeNebula: {Scale: 22, Color: "#C084FC", Emissive: true, Plural: "nebulae"},
}

// defaultRenderSpec covers types without a table entry.
var defaultRenderSpec = RenderSpec{Scale: 6, Color: "#888888", Plural: "objects"}

// SpecFor returns the render constants for a type.
func SpecFor(t Type) RenderSpec {
	if spec, ok := renderSpecs[t]; ok {
		return spec
	}
	return defaultRenderSpec
}

// Sectors returns the sorted distinct sector tags present in a catalog.
func Sectors(entities []Entity) []int {
	seen := make(map[int]bool)
	var sectors []int
	for _, e := range entities {
		if !seen[e.Sector] {
			seen[e.Sector] = true
			sectors = append(sectors, e.Sector)
		}
	}
	// Insertion sort: sector lists are tiny.
	for i := 1; i < len(sectors); i++ {
		for j := i; j > 0 && sectors[j] < sectors[j-1]; j-- {
			sectors[j], sectors[j-1] = sectors[j-1], sectors[j]
		}
	}
	return sectors
}

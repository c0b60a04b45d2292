package catalog

import (
	"github.com/litescript/ls-atlas/internal/astro"
)

// Default is the built-in catalog used when no -catalog file is given.
// Positions are scene units on an illustrative layout, not ephemeris
// data; distances are light years from Earth.
func Default() []Entity {
	return []Entity{
		// Stars
		{ID: "sol", Name: "Sol", Type: TypeStar, Pos: astro.Vec3{}, Distance: 0, Constellation: "—", Sector: 0},
		{ID: "proximacentauri", Name: "Proxima Centauri", Type: TypeStar, Pos: astro.Vec3{X: 180, Y: -20, Z: 40}, Distance: 4.25, Constellation: "Centaurus", Sector: 1},
		{ID: "sirius", Name: "Sirius", Type: TypeStar, Pos: astro.Vec3{X: -220, Y: 35, Z: 120}, Distance: 8.6, Constellation: "Canis Major", Sector: 2},
		{ID: "vega", Name: "Vega", Type: TypeStar, Pos: astro.Vec3{X: 90, Y: 140, Z: -200}, Distance: 25, Constellation: "Lyra", Sector: 3},
		{ID: "betelgeuse", Name: "Betelgeuse", Type: TypeStar, Pos: astro.Vec3{X: -310, Y: 80, Z: -150}, Distance: 548, Constellation: "Orion", Sector: 2},
		{ID: "polaris", Name: "Polaris", Type: TypeStar, Pos: astro.Vec3{X: 10, Y: 260, Z: 30}, Distance: 433, Constellation: "Ursa Minor", Sector: 3},

		// Planets
		{ID: "mercury", Name: "Mercury", Type: TypePlanet, Pos: astro.Vec3{X: 40, Y: 0, Z: 10}, Distance: 0, Constellation: "—", Sector: 0},
		{ID: "venus", Name: "Venus", Type: TypePlanet, Pos: astro.Vec3{X: -70, Y: 0, Z: 30}, Distance: 0, Constellation: "—", Sector: 0},
		{ID: "earth", Name: "Earth", Type: TypePlanet, Pos: astro.Vec3{X: 100, Y: 0, Z: -20}, Distance: 0, Constellation: "—", Sector: 0},
		{ID: "mars", Name: "Mars", Type: TypePlanet, Pos: astro.Vec3{X: -140, Y: 5, Z: -60}, Distance: 0, Constellation: "—", Sector: 0},
		{ID: "jupiter", Name: "Jupiter", Type: TypePlanet, Pos: astro.Vec3{X: 210, Y: -10, Z: 160}, Distance: 0, Constellation: "—", Sector: 1},
		{ID: "saturn", Name: "Saturn", Type: TypePlanet, Pos: astro.Vec3{X: -260, Y: 15, Z: 200}, Distance: 0, Constellation: "—", Sector: 1},

		// Moons
		{ID: "luna", Name: "Luna", Type: TypeMoon, Pos: astro.Vec3{X: 112, Y: 4, Z: -24}, Distance: 0, Constellation: "—", Sector: 0},
		{ID: "io", Name: "Io", Type: TypeMoon, Pos: astro.Vec3{X: 222, Y: -8, Z: 168}, Distance: 0, Constellation: "—", Sector: 1},
		{ID: "europa", Name: "Europa", Type: TypeMoon, Pos: astro.Vec3{X: 200, Y: -14, Z: 172}, Distance: 0, Constellation: "—", Sector: 1},
		{ID: "titan", Name: "Titan", Type: TypeMoon, Pos: astro.Vec3{X: -272, Y: 18, Z: 214}, Distance: 0, Constellation: "—", Sector: 1},

		// Nebulae
		{ID: "orionnebula", Name: "Orion Nebula", Type: TypeNebula, Pos: astro.Vec3{X: -380, Y: 120, Z: -260}, Distance: 1344, Constellation: "Orion", Sector: 2},
		{ID: "crabnebula", Name: "Crab Nebula", Type: TypeNebula, Pos: astro.Vec3{X: 340, Y: -90, Z: -310}, Distance: 6500, Constellation: "Taurus", Sector: 2},
		{ID: "ringnebula", Name: "Ring Nebula", Type: TypeNebula, Pos: astro.Vec3{X: 150, Y: 210, Z: -340}, Distance: 2567, Constellation: "Lyra", Sector: 3},
		{ID: "helixnebula", Name: "Helix Nebula", Type: TypeNebula, Pos: astro.Vec3{X: -60, Y: -180, Z: 330}, Distance: 655, Constellation: "Aquarius", Sector: 3},
	}
}

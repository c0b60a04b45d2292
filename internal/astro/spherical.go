package astro

import (
	"math"
)

// Spherical represents a position on a sphere around the scene origin.
// Theta is the azimuth angle in the XZ plane measured from +Z toward +X;
// Phi is the polar angle measured from the +Y axis (0 = straight up).
type Spherical struct {
	Radius float64
	Theta  float64
	Phi    float64
}

// ToSpherical converts a cartesian position to spherical coordinates.
// The radius must be nonzero; a zero vector yields a zero Spherical.
func ToSpherical(v Vec3) Spherical {
	r := v.Norm()
	if r == 0 {
		return Spherical{}
	}

	// Clamp to [-1, 1] to guard acos against floating point error.
	cosPhi := v.Y / r
	if cosPhi > 1 {
		cosPhi = 1
	} else if cosPhi < -1 {
		cosPhi = -1
	}

	return Spherical{
		Radius: r,
		Theta:  math.Atan2(v.X, v.Z),
		Phi:    math.Acos(cosPhi),
	}
}

// FromSpherical converts spherical coordinates back to a cartesian
// position:
//
//	x = r·sin(phi)·sin(theta)
//	y = r·cos(phi)
//	z = r·sin(phi)·cos(theta)
func FromSpherical(s Spherical) Vec3 {
	sinPhi := math.Sin(s.Phi)
	return Vec3{
		X: s.Radius * sinPhi * math.Sin(s.Theta),
		Y: s.Radius * math.Cos(s.Phi),
		Z: s.Radius * sinPhi * math.Cos(s.Theta),
	}
}

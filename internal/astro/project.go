package astro

import (
	"math"
)

// DefaultFOVDeg is the vertical field of view used by the orbit view.
const DefaultFOVDeg = 60.0

// nearPlane rejects projections of points at or behind the eye.
const nearPlane = 0.1

// ProjectedPoint is a point projected to normalized device coordinates.
// X and Y are in [-1, 1] for points inside the view frustum; Depth is
// the distance along the view direction, used for occlusion ordering.
type ProjectedPoint struct {
	X     float64
	Y     float64
	Depth float64
}

// Ray is a half-line cast from the camera into the scene.
type Ray struct {
	Origin Vec3
	Dir    Vec3 // unit length
}

// View is the camera basis for one rendered frame. It looks from Eye at
// the scene origin with +Y up, and is shared by projection (rendering)
// and ray generation (picking) so the two can never diverge.
type View struct {
	Eye     Vec3
	forward Vec3
	right   Vec3
	up      Vec3

	tanHalf float64 // tan(fov/2)
	aspect  float64 // width/height of the viewport in scene proportions
}

// NewView builds a view for an eye position looking at the origin.
// fovDeg is the vertical field of view; aspect is viewport width over
// height after any display cell correction. An eye at the origin has no
// defined direction and yields a view looking down -Z.
func NewView(eye Vec3, fovDeg, aspect float64) View {
	forward := eye.Scale(-1).Normalized()
	if forward.Norm() == 0 {
		forward = Vec3{Z: -1}
	}

	worldUp := Vec3{Y: 1}
	right := forward.Cross(worldUp).Normalized()
	if right.Norm() == 0 {
		// Eye on the Y axis: pick an arbitrary horizontal basis.
		right = Vec3{X: 1}
	}
	up := right.Cross(forward)

	if aspect <= 0 {
		aspect = 1
	}

	return View{
		Eye:     eye,
		forward: forward,
		right:   right,
		up:      up,
		tanHalf: math.Tan(degToRad(fovDeg) / 2),
		aspect:  aspect,
	}
}

// Project maps a scene point to normalized device coordinates.
// Returns false for points at or behind the eye plane.
func (v View) Project(p Vec3) (ProjectedPoint, bool) {
	rel := p.Sub(v.Eye)
	depth := rel.Dot(v.forward)
	if depth < nearPlane {
		return ProjectedPoint{}, false
	}

	return ProjectedPoint{
		X:     rel.Dot(v.right) / (depth * v.tanHalf * v.aspect),
		Y:     rel.Dot(v.up) / (depth * v.tanHalf),
		Depth: depth,
	}, true
}

// PickRay returns the ray through a normalized device coordinate. It is
// the exact inverse of Project: projecting any point on the returned ray
// reproduces (ndcX, ndcY).
func (v View) PickRay(ndcX, ndcY float64) Ray {
	dir := v.forward.
		Add(v.right.Scale(ndcX * v.tanHalf * v.aspect)).
		Add(v.up.Scale(ndcY * v.tanHalf))
	return Ray{Origin: v.Eye, Dir: dir.Normalized()}
}

// IntersectSphere returns the distance along the ray to the nearest
// intersection with a sphere, or false if the ray misses it. A ray
// starting inside the sphere hits the far surface.
func (r Ray) IntersectSphere(center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Package camera owns the orbit camera: a state machine over manual
// drag, auto-rotation, and directional zoom around a fixed origin
// target.
package camera

import (
	"math"

	"github.com/litescript/ls-atlas/internal/astro"
)

// Mode is the navigation state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeAutoRotating
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "drag"
	case ModeAutoRotating:
		return "auto"
	default:
		return "unknown"
	}
}

// phiEpsilon keeps the polar angle away from the poles, where the
// azimuth becomes degenerate.
const phiEpsilon = 0.01

// Config holds the navigation constants.
type Config struct {
	DefaultEye      astro.Vec3
	DragSensitivity float64 // radians per pointer cell
	BaseRate        float64 // auto-rotate radians per frame at speed 1
	ZoomStep        float64 // scene units per wheel notch
	MinRadius       float64 // the camera may never reach the origin
}

// DefaultConfig returns the navigation defaults.
func DefaultConfig() Config {
	return Config{
		DefaultEye:      astro.Vec3{X: 0, Y: 120, Z: 320},
		DragSensitivity: 0.02,
		BaseRate:        0.004,
		ZoomStep:        18,
		MinRadius:       10,
	}
}

// Navigator advances the camera state machine. All transitions go
// through one spherical derivation so the manual and automatic paths
// cannot diverge.
type Navigator struct {
	cfg Config

	pos           astro.Vec3
	mode          Mode
	rotationSpeed float64
}

// New creates a navigator at the configured default eye position.
func New(cfg Config) *Navigator {
	if cfg.MinRadius <= 0 {
		cfg.MinRadius = 1
	}
	return &Navigator{
		cfg:           cfg,
		pos:           cfg.DefaultEye,
		rotationSpeed: 1,
	}
}

// Pos returns the current camera position. The look-at target is always
// the origin.
func (n *Navigator) Pos() astro.Vec3 { return n.pos }

// Mode returns the current navigation mode.
func (n *Navigator) Mode() Mode { return n.mode }

// Radius returns the current orbit radius.
func (n *Navigator) Radius() float64 { return n.pos.Norm() }

// RotationSpeed returns the auto-rotate speed multiplier.
func (n *Navigator) RotationSpeed() float64 { return n.rotationSpeed }

// SetRotationSpeed sets the auto-rotate speed multiplier, clamped to be
// non-negative.
func (n *Navigator) SetRotationSpeed(v float64) {
	if v < 0 {
		v = 0
	}
	n.rotationSpeed = v
}

// BeginDrag starts a manual drag. Any manual interaction cancels
// auto-rotation before the drag takes over.
func (n *Navigator) BeginDrag() {
	if n.mode == ModeAutoRotating {
		n.mode = ModeIdle
	}
	n.mode = ModeDragging
}

// Drag converts a pointer delta into azimuth/polar increments while a
// drag is active. The orbit radius is preserved across the drag.
func (n *Navigator) Drag(dx, dy int) {
	if n.mode != ModeDragging {
		return
	}
	n.orbit(-float64(dx)*n.cfg.DragSensitivity, -float64(dy)*n.cfg.DragSensitivity)
}

// EndDrag finishes a manual drag.
func (n *Navigator) EndDrag() {
	if n.mode == ModeDragging {
		n.mode = ModeIdle
	}
}

// ToggleAutoRotate switches auto-rotation on or off. Toggling it on
// while dragging abandons the drag.
func (n *Navigator) ToggleAutoRotate() {
	if n.mode == ModeAutoRotating {
		n.mode = ModeIdle
		return
	}
	n.mode = ModeAutoRotating
}

// Advance applies one frame of auto-rotation: the azimuth advances by
// the base rate times the speed; radius and polar angle are untouched.
// A frame tick during a drag does nothing.
func (n *Navigator) Advance() {
	if n.mode != ModeAutoRotating {
		return
	}
	n.orbit(n.cfg.BaseRate*n.rotationSpeed, 0)
}

// orbit is the single transition applying angle deltas from either
// input source, recomputing the position on the sphere of the current
// radius.
func (n *Navigator) orbit(dTheta, dPhi float64) {
	s := astro.ToSpherical(n.pos)
	if s.Radius == 0 {
		s.Radius = n.cfg.MinRadius
	}

	s.Theta += dTheta
	s.Phi += dPhi
	if s.Phi < phiEpsilon {
		s.Phi = phiEpsilon
	} else if s.Phi > math.Pi-phiEpsilon {
		s.Phi = math.Pi - phiEpsilon
	}

	n.pos = astro.FromSpherical(s)
}

// Zoom moves the camera along its view direction: positive notches move
// toward the origin, negative away. Valid in every mode. The radius is
// clamped so the camera can never coincide with the origin.
func (n *Navigator) Zoom(notches int) {
	if notches == 0 {
		return
	}

	radius := n.pos.Norm()
	if radius == 0 {
		n.pos = n.cfg.DefaultEye
		return
	}

	newRadius := radius - float64(notches)*n.cfg.ZoomStep
	if newRadius < n.cfg.MinRadius {
		newRadius = n.cfg.MinRadius
	}
	n.pos = n.pos.Scale(newRadius / radius)
}

// Reset jumps the camera to the default position. The navigation mode
// is orthogonal and left unchanged.
func (n *Navigator) Reset() {
	n.pos = n.cfg.DefaultEye
}

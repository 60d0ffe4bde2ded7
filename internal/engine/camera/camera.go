// Package camera provides the orbit camera for the universe view.
package camera

import (
	gomath "math"

	"github.com/archiviz/universe/pkg/vecmath"
)

// followDamping is the per-frame interpolation factor for the fly-to
// behavior: the orbit center moves a fixed fraction of the remaining
// distance each frame instead of jumping.
const followDamping = 0.08

// Orbit orbits around a center point with drag-to-rotate and
// scroll-to-zoom. The center smoothly follows a target when one is set.
type Orbit struct {
	Center vecmath.Vec3

	// Spherical coordinates
	Distance  float32 // distance from center
	RotationX float32 // pitch, radians
	RotationY float32 // yaw, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// New creates an orbit camera with defaults sized for the ±60 point cloud.
func New() *Orbit {
	return &Orbit{
		Distance:        160.0,
		RotationX:       0.35,
		RotationY:       0.0,
		MinDistance:     10.0,
		MaxDistance:     600.0,
		MinPitch:        -1.4,
		MaxPitch:        1.4,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *Orbit) Position() vecmath.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return vecmath.Vec3{
		X: c.Center.X + x,
		Y: c.Center.Y + y,
		Z: c.Center.Z + z,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Orbit) ViewMatrix() vecmath.Mat4 {
	up := vecmath.Vec3{X: 0, Y: 1, Z: 0}
	return vecmath.LookAt(c.Position(), c.Center, up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *Orbit) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.RotationX = vecmath.Clamp(c.RotationX, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *Orbit) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = vecmath.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// Follow moves the orbit center a damped step toward target. Called once
// per frame this produces the fly-to effect; with the selected record as
// the target the camera settles just off the point, never snapping.
func (c *Orbit) Follow(target vecmath.Vec3) {
	c.Center = c.Center.Lerp(target, followDamping)
}

// FollowSettled reports whether the center is effectively at the target.
func (c *Orbit) FollowSettled(target vecmath.Vec3) bool {
	return c.Center.Distance(target) < 0.01
}

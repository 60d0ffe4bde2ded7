// Package picking provides ray casting and point picking utilities.
package picking

import (
	gomath "math"

	"github.com/archiviz/universe/pkg/vecmath"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    vecmath.Vec3
	Direction vecmath.Vec3 // Normalized direction
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj vecmath.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	// Unproject near and far points
	nearPoint := vecmath.Vec4{ndcX, ndcY, -1.0, 1.0}
	farPoint := vecmath.Vec4{ndcX, ndcY, 1.0, 1.0}

	nearWorld := invViewProj.MulVec4(nearPoint)
	farWorld := invViewProj.MulVec4(farPoint)

	// Perspective divide
	if nearWorld[3] != 0 {
		nearWorld[0] /= nearWorld[3]
		nearWorld[1] /= nearWorld[3]
		nearWorld[2] /= nearWorld[3]
	}
	if farWorld[3] != 0 {
		farWorld[0] /= farWorld[3]
		farWorld[1] /= farWorld[3]
		farWorld[2] /= farWorld[3]
	}

	origin := vecmath.Vec3{X: nearWorld[0], Y: nearWorld[1], Z: nearWorld[2]}
	dir := vecmath.Vec3{
		X: farWorld[0] - nearWorld[0],
		Y: farWorld[1] - nearWorld[1],
		Z: farWorld[2] - nearWorld[2],
	}.Normalize()

	return Ray{Origin: origin, Direction: dir}
}

// IntersectSphere intersects the ray with a sphere. Returns the ray
// parameter of the nearest intersection in front of the origin and
// whether the sphere is hit.
func (r Ray) IntersectSphere(center vecmath.Vec3, radius float32) (t float32, ok bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sqrtD := float32(gomath.Sqrt(float64(disc)))
	t = -b - sqrtD
	if t < 0 {
		t = -b + sqrtD // origin inside the sphere
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// NearestSphere finds the closest hit among a set of spheres. positions
// holds packed xyz triples; radius is applied per sphere via radiusAt.
// Returns the index of the nearest hit sphere, or -1 when the ray
// misses everything.
func (r Ray) NearestSphere(positions []float32, radiusAt func(i int) float32) int {
	best := -1
	bestT := float32(gomath.MaxFloat32)

	n := len(positions) / 3
	for i := 0; i < n; i++ {
		center := vecmath.Vec3{
			X: positions[i*3],
			Y: positions[i*3+1],
			Z: positions[i*3+2],
		}
		t, ok := r.IntersectSphere(center, radiusAt(i))
		if ok && t < bestT {
			bestT = t
			best = i
		}
	}
	return best
}

package camera

import (
	gomath "math"
	"testing"

	"github.com/archiviz/universe/pkg/vecmath"
)

func TestPositionAtDefaultPitch(t *testing.T) {
	c := New()
	c.Distance = 100
	c.RotationX = 0
	c.RotationY = 0

	pos := c.Position()
	if gomath.Abs(float64(pos.Z-100)) > 1e-4 {
		t.Errorf("Z = %v, want 100", pos.Z)
	}
	if gomath.Abs(float64(pos.X)) > 1e-4 || gomath.Abs(float64(pos.Y)) > 1e-4 {
		t.Errorf("X,Y = %v,%v, want 0,0", pos.X, pos.Y)
	}
}

func TestPositionFollowsCenter(t *testing.T) {
	c := New()
	c.Center = vecmath.Vec3{X: 10, Y: 20, Z: 30}
	c.Distance = 50
	c.RotationX = 0
	c.RotationY = 0

	pos := c.Position()
	if pos.X != 10 || pos.Y != 20 {
		t.Errorf("position = %+v, want offset from center", pos)
	}
	if gomath.Abs(float64(pos.Z-80)) > 1e-4 {
		t.Errorf("Z = %v, want 80", pos.Z)
	}
}

func TestDragClampsPitch(t *testing.T) {
	c := New()
	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("pitch = %v, want clamped to %v", c.RotationX, c.MaxPitch)
	}
	c.HandleDrag(0, -20000)
	if c.RotationX != c.MinPitch {
		t.Errorf("pitch = %v, want clamped to %v", c.RotationX, c.MinPitch)
	}
}

func TestZoomClampsDistance(t *testing.T) {
	c := New()
	for i := 0; i < 200; i++ {
		c.HandleZoom(10)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %v, want %v", c.Distance, c.MinDistance)
	}
	for i := 0; i < 200; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %v, want %v", c.Distance, c.MaxDistance)
	}
}

func TestFollowConverges(t *testing.T) {
	c := New()
	target := vecmath.Vec3{X: 40, Y: -12, Z: 7}

	for i := 0; i < 500; i++ {
		c.Follow(target)
	}
	if !c.FollowSettled(target) {
		t.Errorf("center = %+v, did not settle at %+v", c.Center, target)
	}
}

func TestFollowIsDamped(t *testing.T) {
	c := New()
	target := vecmath.Vec3{X: 100}

	c.Follow(target)
	if c.Center.X <= 0 || c.Center.X >= 100 {
		t.Errorf("center.X = %v after one step, want strictly between 0 and 100", c.Center.X)
	}
	first := c.Center.X
	c.Follow(target)
	step2 := c.Center.X - first
	if step2 >= first {
		t.Errorf("second step %v not smaller than first %v", step2, first)
	}
}

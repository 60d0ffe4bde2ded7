package universe

import (
	"math"
	"testing"

	"github.com/archiviz/universe/pkg/vecmath"
)

func TestEaseEndpoints(t *testing.T) {
	if got := EaseInOutCubic(0); got != 0 {
		t.Errorf("ease(0) = %f, want 0", got)
	}
	if got := EaseInOutCubic(1); got != 1 {
		t.Errorf("ease(1) = %f, want 1", got)
	}
	// Continuity at the piecewise boundary.
	if got := EaseInOutCubic(0.5); math.Abs(float64(got-0.5)) > 1e-6 {
		t.Errorf("ease(0.5) = %f, want 0.5", got)
	}
}

func TestEaseMonotonic(t *testing.T) {
	prev := float32(-1)
	for i := 0; i <= 100; i++ {
		p := float32(i) / 100
		e := EaseInOutCubic(p)
		if e < prev {
			t.Fatalf("ease not monotonic at p=%f: %f < %f", p, e, prev)
		}
		if e < 0 || e > 1 {
			t.Fatalf("ease(%f) = %f outside [0,1]", p, e)
		}
		prev = e
	}
}

func TestTransitionProgressClamps(t *testing.T) {
	tr := NewTransition(0.4)
	tr.Retarget([]int{1}, []vecmath.Vec3{{X: 10}})

	var last float32
	for i := 0; i < 10; i++ {
		tr.Advance()
		if tr.Progress() < last {
			t.Fatalf("progress decreased: %f -> %f", last, tr.Progress())
		}
		last = tr.Progress()
	}
	if tr.Progress() != 1 {
		t.Errorf("progress = %f, want clamped at 1", tr.Progress())
	}
	if !tr.Done() {
		t.Error("transition should be done")
	}

	// Idempotent once finished.
	tr.Advance()
	if tr.Progress() != 1 {
		t.Errorf("progress moved after completion: %f", tr.Progress())
	}
}

func TestTransitionInterpolates(t *testing.T) {
	tr := NewTransition(0.5)
	tr.Retarget([]int{1}, []vecmath.Vec3{{X: 0}})
	tr.Advance()
	tr.Advance() // settle at x=0

	tr.Retarget([]int{1}, []vecmath.Vec3{{X: 100}})
	if got := tr.At(0); got.X != 0 {
		t.Errorf("at progress 0 position should be previous (0), got %f", got.X)
	}

	tr.Advance() // progress 0.5, eased = 0.5
	if got := tr.At(0); math.Abs(float64(got.X-50)) > 1e-3 {
		t.Errorf("at progress 0.5 x = %f, want 50", got.X)
	}

	tr.Advance()
	if got := tr.At(0); got.X != 100 {
		t.Errorf("at progress 1 x = %f, want 100", got.X)
	}
}

func TestTransitionNewPointAppearsInPlace(t *testing.T) {
	tr := NewTransition(0.5)
	tr.Retarget([]int{1}, []vecmath.Vec3{{X: 5}})
	tr.Advance()
	tr.Advance()

	// Point 2 was not displayed before; it must not fly in from anywhere.
	tr.Retarget([]int{1, 2}, []vecmath.Vec3{{X: 5}, {X: 42}})
	if got := tr.At(1); got.X != 42 {
		t.Errorf("new point should start at target, got x=%f", got.X)
	}
	// Point 1 keeps its displayed position as the source.
	if got := tr.At(0); got.X != 5 {
		t.Errorf("existing point should start from displayed position, got x=%f", got.X)
	}
}

func TestTransitionRetargetCapturesMidFlight(t *testing.T) {
	tr := NewTransition(0.5)
	tr.Retarget([]int{1}, []vecmath.Vec3{{X: 0}})
	tr.Advance()
	tr.Advance()

	tr.Retarget([]int{1}, []vecmath.Vec3{{X: 100}})
	tr.Advance() // halfway, displayed x=50

	// Retarget mid-animation: the captured source is the displayed
	// position, not the stale previous target.
	tr.Retarget([]int{1}, []vecmath.Vec3{{X: 200}})
	if got := tr.At(0); math.Abs(float64(got.X-50)) > 1e-3 {
		t.Errorf("mid-flight capture: start x = %f, want 50", got.X)
	}
}

func TestTransitionBadStepDefaults(t *testing.T) {
	if tr := NewTransition(0); tr.step != 0.02 {
		t.Errorf("zero step should default, got %f", tr.step)
	}
	if tr := NewTransition(5); tr.step != 0.02 {
		t.Errorf("oversized step should default, got %f", tr.step)
	}
}

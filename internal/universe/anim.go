package universe

import "github.com/archiviz/universe/pkg/vecmath"

// Transition animates point positions between layouts. Whenever the target
// buffer changes (new visible set or a shuffle) the previously displayed
// positions are captured and progress restarts from zero; each frame
// advances progress by a fixed step and every point is interpolated along
// an ease-in-out cubic curve. Once progress reaches 1 the transition is
// idle until the next retarget.
type Transition struct {
	ids      []int
	prev     []vecmath.Vec3
	target   []vecmath.Vec3
	progress float32
	step     float32
}

// NewTransition creates a transition advancing by step per frame.
func NewTransition(step float32) *Transition {
	if step <= 0 || step > 1 {
		step = 0.02
	}
	return &Transition{step: step}
}

// EaseInOutCubic is the easing curve: 4p³ below the midpoint, mirrored
// above it. ease(0)=0, ease(0.5)=0.5, ease(1)=1.
func EaseInOutCubic(p float32) float32 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}

// Retarget installs a new target buffer, capturing the currently displayed
// positions as the interpolation source. Points are matched by id; a point
// absent from the previous layout starts at its target (it appears in
// place rather than flying in from the origin).
func (t *Transition) Retarget(ids []int, positions []vecmath.Vec3) {
	displayed := make(map[int]vecmath.Vec3, len(t.ids))
	for i, id := range t.ids {
		displayed[id] = t.at(i)
	}

	t.ids = append(t.ids[:0:0], ids...)
	t.target = append(t.target[:0:0], positions...)
	t.prev = make([]vecmath.Vec3, len(positions))
	for i, id := range ids {
		if p, ok := displayed[id]; ok {
			t.prev[i] = p
		} else {
			t.prev[i] = positions[i]
		}
	}
	t.progress = 0
}

// Advance moves the animation forward one frame. Progress is monotonically
// non-decreasing within a cycle and clamps at 1.
func (t *Transition) Advance() {
	if t.progress >= 1 {
		return
	}
	t.progress = vecmath.Clamp(t.progress+t.step, 0, 1)
}

// Done reports whether the current cycle has finished.
func (t *Transition) Done() bool {
	return t.progress >= 1
}

// Progress returns the raw (un-eased) progress in [0,1].
func (t *Transition) Progress() float32 {
	return t.progress
}

// Len returns the number of animated points.
func (t *Transition) Len() int {
	return len(t.target)
}

// At returns point i's interpolated position for the current progress.
func (t *Transition) At(i int) vecmath.Vec3 {
	return t.at(i)
}

func (t *Transition) at(i int) vecmath.Vec3 {
	if i >= len(t.target) {
		return vecmath.Vec3{}
	}
	if t.progress >= 1 || i >= len(t.prev) {
		return t.target[i]
	}
	return t.prev[i].Lerp(t.target[i], EaseInOutCubic(t.progress))
}

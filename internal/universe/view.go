package universe

import (
	"go.uber.org/zap"

	"github.com/archiviz/universe/internal/dataset"
	"github.com/archiviz/universe/internal/logger"
	"github.com/archiviz/universe/pkg/vecmath"
)

// View is the universe view-model. It owns filter/selection/hover state and
// the layout transition, and derives the flat position/color/size buffers
// the renderer uploads each frame. All methods run on the render thread;
// the single-threaded frame loop is the concurrency model.
type View struct {
	store  *dataset.Store
	filter FilterState

	selection Selection
	hover     Hover

	transition *Transition
	sizes      Sizes
	extent     float32

	visible []dataset.Record
	dirty   bool

	// Flat per-point buffers, rebuilt on demand.
	positions []float32
	colors    []float32
	pointSize []float32
}

// Options tunes the view.
type Options struct {
	Sizes         Sizes
	AnimationStep float32
	ShuffleExtent float32
}

// NewView builds a view over the given store.
func NewView(store *dataset.Store, opts Options) *View {
	if opts.ShuffleExtent <= 0 {
		opts.ShuffleExtent = 60
	}
	v := &View{
		store:      store,
		filter:     NewFilterState(),
		transition: NewTransition(opts.AnimationStep),
		sizes:      opts.Sizes,
		extent:     opts.ShuffleExtent,
		dirty:      true,
	}
	return v
}

// Store exposes the underlying dataset store.
func (v *View) Store() *dataset.Store {
	return v.store
}

// Filter returns a copy of the current filter state.
func (v *View) Filter() FilterState {
	return v.filter
}

// SetQuery updates the search term.
func (v *View) SetQuery(q string) {
	if v.filter.Query == q {
		return
	}
	v.filter.Query = q
	v.dirty = true
}

// ToggleCategory flips one category's filter toggle.
func (v *View) ToggleCategory(c dataset.Category) {
	v.filter.Types[c] = !v.filter.Types[c]
	v.dirty = true
}

// SetArchitectureOnly restricts the view to architecture-classified records.
func (v *View) SetArchitectureOnly(on bool) {
	if v.filter.ArchitectureOnly == on {
		return
	}
	v.filter.ArchitectureOnly = on
	v.dirty = true
}

// ToggleShuffle randomizes or restores the layout and starts a transition.
func (v *View) ToggleShuffle() {
	v.store.ToggleShuffle(v.extent)
	v.dirty = true
}

// Shuffled reports the store's layout state.
func (v *View) Shuffled() bool {
	return v.store.Shuffled()
}

// Replace swaps in a new dataset (open-dataset dialog), clearing selection
// and hover since their records may no longer exist.
func (v *View) Replace(records []dataset.Record) {
	v.store.Replace(records)
	v.selection.Clear()
	v.hover.End()
	v.dirty = true
}

// Visible returns the current filtered subset, recomputing it if any input
// changed since the last call. Derivations are always in sync with the
// latest committed inputs before a frame renders.
func (v *View) Visible() []dataset.Record {
	if v.dirty {
		v.recompute()
	}
	return v.visible
}

func (v *View) recompute() {
	v.visible = Visible(v.store.Records(), v.filter)
	v.dirty = false

	ids := make([]int, len(v.visible))
	targets := make([]vecmath.Vec3, len(v.visible))
	for i, r := range v.visible {
		ids[i] = r.ID
		targets[i] = vecmath.Vec3{X: r.X, Y: r.Y, Z: r.Z}
	}
	v.transition.Retarget(ids, targets)

	// Drop selection/hover for records that filtered out.
	if v.selection.Active() && v.indexOf(v.selection.ID()) < 0 {
		v.selection.Clear()
	}
	if h := v.hover.Record(); h != nil && v.indexOf(h.ID) < 0 {
		v.hover.End()
	}
}

func (v *View) indexOf(id int) int {
	for i, r := range v.visible {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Advance steps the layout animation one frame.
func (v *View) Advance() {
	v.Visible() // commit pending recompute first
	v.transition.Advance()
}

// Frame derives the flat buffers for the current frame. The returned slices
// are reused between calls; the renderer copies them into GPU buffers
// before the next frame.
func (v *View) Frame() (positions, colors, sizes []float32) {
	visible := v.Visible()
	n := len(visible)

	v.positions = resize(v.positions, n*3)
	v.colors = resize(v.colors, n*3)
	v.pointSize = resize(v.pointSize, n)

	for i, r := range visible {
		p := v.transition.At(i)
		v.positions[i*3+0] = p.X
		v.positions[i*3+1] = p.Y
		v.positions[i*3+2] = p.Z

		col, size := Appearance(r, &v.selection, v.sizes)
		v.colors[i*3+0] = col[0]
		v.colors[i*3+1] = col[1]
		v.colors[i*3+2] = col[2]
		v.pointSize[i] = size
	}

	return v.positions, v.colors, v.pointSize
}

func resize(s []float32, n int) []float32 {
	if cap(s) < n {
		return make([]float32, n)
	}
	return s[:n]
}

// PointRadius returns the pick radius for visible point i, scaled from its
// current display size.
func (v *View) PointRadius(i int) float32 {
	visible := v.Visible()
	if i < 0 || i >= len(visible) {
		return 0
	}
	_, size := Appearance(visible[i], &v.selection, v.sizes)
	// Display size is in pixels; picking uses a world-space sphere that
	// grows with the emphasized points.
	return 0.35 * size
}

// PointPosition returns visible point i's current (animated) position.
func (v *View) PointPosition(i int) vecmath.Vec3 {
	return v.transition.At(i)
}

// ClickPoint handles a click on visible point i, toggling selection.
// Panics inside handling are contained here so a bad record can never take
// down the render loop.
func (v *View) ClickPoint(i int) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("click handler failed", zap.Any("panic", r), zap.Int("index", i))
		}
	}()

	visible := v.Visible()
	if i < 0 || i >= len(visible) {
		return
	}
	v.selection.Click(visible[i].ID)
}

// HoverPoint handles the pointer moving over visible point i.
func (v *View) HoverPoint(i int, screenX, screenY float32) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("hover handler failed", zap.Any("panic", r), zap.Int("index", i))
		}
	}()

	visible := v.Visible()
	if i < 0 || i >= len(visible) {
		v.hover.End()
		return
	}
	v.hover.Begin(&visible[i], screenX, screenY)
}

// HoverEnd clears hover when the pointer leaves every point or the canvas.
func (v *View) HoverEnd() {
	v.hover.End()
}

// Hovered returns the hovered record and pointer position, or nil.
func (v *View) Hovered() (*dataset.Record, float32, float32) {
	x, y := v.hover.Position()
	return v.hover.Record(), x, y
}

// ClearSelection drops the selection (detail panel close button).
func (v *View) ClearSelection() {
	v.selection.Clear()
}

// Selected returns the selected record, or nil.
func (v *View) Selected() *dataset.Record {
	if !v.selection.Active() {
		return nil
	}
	visible := v.Visible()
	i := v.indexOf(v.selection.ID())
	if i < 0 {
		return nil
	}
	return &visible[i]
}

// CameraTarget returns the point the camera should fly toward: the selected
// record's position while a selection exists, the origin otherwise.
func (v *View) CameraTarget() vecmath.Vec3 {
	if r := v.Selected(); r != nil {
		return vecmath.Vec3{X: r.X, Y: r.Y, Z: r.Z}
	}
	return vecmath.Vec3{}
}

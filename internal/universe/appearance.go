package universe

import "github.com/archiviz/universe/internal/dataset"

// Color is an RGB triple in [0,1] per channel (before emphasis boost).
type Color [3]float32

// palette assigns each category its fixed display color.
var palette = map[dataset.Category]Color{
	dataset.CategoryExterior: {0.31, 0.60, 1.00}, // blue
	dataset.CategoryInterior: {1.00, 0.72, 0.30}, // amber
	dataset.CategoryAerial:   {0.62, 0.44, 1.00}, // violet
	dataset.CategoryNature:   {0.36, 0.85, 0.52}, // green
	dataset.CategoryOther:    {0.65, 0.68, 0.72}, // gray
}

// Emphasis factors. Dimming pushes unselected points into the background
// while additive blending makes the boosted points glow.
const (
	dimFactor   = 0.15
	boostFactor = 1.8
)

// Sizes holds the three point sizes used by the renderer, in pixels.
type Sizes struct {
	Background float32
	Normal     float32
	Selected   float32
}

// CategoryColor returns the palette color for c, with the "other" fallback
// for anything unrecognized.
func CategoryColor(c dataset.Category) Color {
	if col, ok := palette[c]; ok {
		return col
	}
	return palette[dataset.CategoryOther]
}

// Appearance derives a record's display color and size from the selection
// state: with a selection active every other point is dimmed and shrunk;
// the selected point (or every point when nothing is selected) is boosted.
func Appearance(r dataset.Record, sel *Selection, sizes Sizes) (Color, float32) {
	base := CategoryColor(r.Type)

	if sel.Active() && sel.ID() != r.ID {
		return base.scale(dimFactor), sizes.Background
	}

	boosted := base.scale(boostFactor)
	if sel.Active() && sel.ID() == r.ID {
		return boosted, sizes.Selected
	}
	return boosted, sizes.Normal
}

func (c Color) scale(f float32) Color {
	return Color{c[0] * f, c[1] * f, c[2] * f}
}

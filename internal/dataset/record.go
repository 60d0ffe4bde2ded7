// Package dataset loads and owns the image-archive artifacts produced by the
// offline classification pipeline: the coordinate dataset rendered as the
// point cloud and the statistics summary shown in the filter panel.
package dataset

// Category is the image classification assigned by the offline pipeline.
type Category string

// Known categories. Anything else resolves to CategoryOther.
const (
	CategoryExterior Category = "exterior"
	CategoryInterior Category = "interior"
	CategoryAerial   Category = "aerial"
	CategoryNature   Category = "nature"
	CategoryOther    Category = "other"
)

// Categories lists all known categories in display order.
var Categories = []Category{
	CategoryExterior,
	CategoryInterior,
	CategoryAerial,
	CategoryNature,
	CategoryOther,
}

// ParseCategory maps a raw type string to a known category. Unrecognized
// values fall back to CategoryOther, matching the upstream pipeline's default.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryExterior, CategoryInterior, CategoryAerial, CategoryNature, CategoryOther:
		return Category(s)
	default:
		return CategoryOther
	}
}

// Record is one image in the archive. Position fields are mutable under
// layout shuffling; everything else is fixed once loaded.
type Record struct {
	ID             int      `json:"id"`
	X              float32  `json:"x"`
	Y              float32  `json:"y"`
	Z              float32  `json:"z"`
	Type           Category `json:"type"`
	Filename       string   `json:"filename"`
	Description    string   `json:"description"`
	Path           string   `json:"path"`
	IsArchitecture bool     `json:"is_architecture"`
}

// Stats is the statistics.json summary consumed by the filter panel badges.
type Stats struct {
	TotalImages        int            `json:"total_images"`
	ArchitectureImages int            `json:"architecture_images"`
	TypeDistribution   map[string]int `json:"type_distribution"`
}

// CategoryCount returns the number of images classified as c, zero when the
// distribution has no entry.
func (s *Stats) CategoryCount(c Category) int {
	if s == nil || s.TypeDistribution == nil {
		return 0
	}
	return s.TypeDistribution[string(c)]
}

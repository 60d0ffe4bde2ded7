// Package universe implements the view-model for the 3D point-cloud view:
// filtering and search, selection and hover state, layout transitions, and
// the per-frame position/color/size derivation the renderer uploads.
package universe

import (
	"strings"

	"github.com/archiviz/universe/internal/dataset"
)

// FilterState is the active category toggles plus free-text query.
// An empty Types map (or all-false) means no category restriction.
type FilterState struct {
	ArchitectureOnly bool
	Types            map[dataset.Category]bool
	Query            string
}

// NewFilterState returns a state that shows everything.
func NewFilterState() FilterState {
	return FilterState{Types: make(map[dataset.Category]bool)}
}

// AnyCategoryActive reports whether at least one category toggle is on.
func (f FilterState) AnyCategoryActive() bool {
	for _, on := range f.Types {
		if on {
			return true
		}
	}
	return false
}

// Visible derives the filtered subset of records. It is a pure function:
// records is never mutated and the result is a fresh slice, rebuilt from
// scratch on every call (datasets are thousands of records, not millions).
func Visible(records []dataset.Record, f FilterState) []dataset.Record {
	restrict := f.AnyCategoryActive()
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if f.ArchitectureOnly && !r.IsArchitecture {
			continue
		}
		if restrict && !f.Types[r.Type] {
			continue
		}
		if query != "" && !matches(r, query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matches reports whether the lowercased query is a substring of the
// record's filename, description, or category name.
func matches(r dataset.Record, query string) bool {
	if strings.Contains(strings.ToLower(r.Filename), query) {
		return true
	}
	if r.Description != "" && strings.Contains(strings.ToLower(r.Description), query) {
		return true
	}
	return strings.Contains(string(r.Type), query)
}

package universe

import "github.com/archiviz/universe/internal/dataset"

// Selection tracks the at-most-one record the user has clicked.
type Selection struct {
	id     int
	active bool
}

// Click toggles selection of the given id: selecting it if nothing (or a
// different record) is selected, deselecting if it is already selected.
func (s *Selection) Click(id int) {
	if s.active && s.id == id {
		s.active = false
		return
	}
	s.id = id
	s.active = true
}

// Clear drops any selection.
func (s *Selection) Clear() {
	s.active = false
}

// Active reports whether a record is selected.
func (s *Selection) Active() bool {
	return s.active
}

// ID returns the selected record id; only meaningful when Active.
func (s *Selection) ID() int {
	return s.id
}

// Hover tracks the at-most-one record under the pointer, with the last
// known pointer position in screen coordinates for tooltip anchoring.
type Hover struct {
	record   *dataset.Record
	screenX  float32
	screenY  float32
}

// Begin marks rec as hovered at the given pointer position.
func (h *Hover) Begin(rec *dataset.Record, x, y float32) {
	h.record = rec
	h.screenX = x
	h.screenY = y
}

// Move updates the pointer position while hovering.
func (h *Hover) Move(x, y float32) {
	if h.record != nil {
		h.screenX = x
		h.screenY = y
	}
}

// End clears the hover state.
func (h *Hover) End() {
	h.record = nil
}

// Record returns the hovered record, or nil.
func (h *Hover) Record() *dataset.Record {
	return h.record
}

// Position returns the last pointer position in screen coordinates.
func (h *Hover) Position() (x, y float32) {
	return h.screenX, h.screenY
}

package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/archiviz/universe/internal/dataset"
	"github.com/archiviz/universe/internal/i18n"
)

// tooltipOffset keeps the hover card clear of the cursor.
const tooltipOffset = 14

// tooltipFilenameRunes caps the filename shown on the hover card.
const tooltipFilenameRunes = 28

func (s *State) renderTooltip() {
	rec, x, y := s.View.Hovered()
	if rec == nil {
		return
	}

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoInputs

	// Pivot (0,1) hangs the card's bottom-left off the anchor, so the
	// auto-sized card sits above the cursor
	imgui.SetNextWindowPosV(imgui.NewVec2(x, y-tooltipOffset), imgui.CondAlways, imgui.NewVec2(0, 1))
	imgui.SetNextWindowBgAlpha(0.9)
	if imgui.BeginV("##HoverCard", nil, flags) {
		s.renderThumbnail(rec, 160)
		imgui.Text(truncateRunes(rec.Filename, tooltipFilenameRunes))
		imgui.TextDisabled(s.categoryLabel(rec.Type))
	}
	imgui.End()
}

// truncateRunes shortens s to at most max runes, marking the cut with an
// ellipsis. Filenames are frequently Korean, so the cut is rune-wise.
func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

func (s *State) renderDetail() {
	rec := s.View.Selected()
	if rec == nil {
		return
	}

	if imgui.Button(s.Locale.T(i18n.KeyClose) + "##closedetail") {
		s.View.ClearSelection()
		return
	}
	imgui.Separator()

	s.renderThumbnail(rec, detailPanelWidth-20)

	imgui.TextWrapped(rec.Filename)
	imgui.TextDisabled(s.categoryLabel(rec.Type))
	imgui.Separator()

	if rec.Description != "" {
		imgui.TextWrapped(rec.Description)
	} else {
		imgui.TextDisabled(s.Locale.T(i18n.KeyNoDescription))
	}

	imgui.Separator()
	imgui.TextDisabled(fmt.Sprintf("#%d  (%.1f, %.1f, %.1f)", rec.ID, rec.X, rec.Y, rec.Z))
}

// renderThumbnail draws the record image scaled to maxWidth. Records
// whose image failed to load get no image area at all.
func (s *State) renderThumbnail(rec *dataset.Record, maxWidth float32) {
	entry := s.Textures.Get(rec.ID, dataset.ResolveImagePath(s.AssetsRoot, rec.Path))
	if entry.Texture == nil || entry.Width == 0 || entry.Height == 0 {
		return
	}

	w := maxWidth
	h := w * float32(entry.Height) / float32(entry.Width)
	imgui.ImageWithBgV(
		entry.Texture.ID,
		imgui.NewVec2(w, h),
		imgui.NewVec2(0, 0),
		imgui.NewVec2(1, 1),
		imgui.NewVec4(0, 0, 0, 0),
		imgui.NewVec4(1, 1, 1, 1),
	)
}

func (s *State) categoryLabel(c dataset.Category) string {
	return s.Locale.T(categoryKeys[c])
}

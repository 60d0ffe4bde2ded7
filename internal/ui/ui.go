// Package ui renders the gallery's imgui surface: the control panel,
// the 3D viewport, the hover tooltip and the detail panel.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/archiviz/universe/internal/dataset"
	"github.com/archiviz/universe/internal/engine/audio"
	"github.com/archiviz/universe/internal/engine/camera"
	"github.com/archiviz/universe/internal/engine/pointcloud"
	"github.com/archiviz/universe/internal/engine/texture"
	"github.com/archiviz/universe/internal/i18n"
	"github.com/archiviz/universe/internal/universe"
)

// Layout dimensions.
const (
	controlPanelWidth = float32(300)
	detailPanelWidth  = float32(340)
	statusBarHeight   = float32(28)
)

// State holds everything the UI draws from and writes back to.
type State struct {
	View     *universe.View
	Camera   *camera.Orbit
	Renderer *pointcloud.Renderer
	Textures *texture.Cache
	Audio    *audio.Manager
	Locale   i18n.Locale

	Stats      *dataset.Stats
	AssetsRoot string

	// Search text owned by the input widget; pushed into the view on
	// every edit.
	SearchText string

	MusicOn bool
	BGMPath string

	// Path picked in the file dialog goroutine, consumed on the main
	// thread next frame.
	PendingDatasetPath string

	// OnOpenDataset is invoked on the main thread with a path chosen
	// in the file dialog.
	OnOpenDataset func(path string)

	lastMousePos imgui.Vec2
}

// Render draws one frame of the interface.
func (s *State) Render() {
	if s.PendingDatasetPath != "" {
		path := s.PendingDatasetPath
		s.PendingDatasetPath = ""
		if s.OnOpenDataset != nil {
			s.OnOpenDataset(path)
		}
	}

	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	contentHeight := workSize.Y - statusBarHeight

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	// Left panel - search and filters
	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(controlPanelWidth, contentHeight))
	if imgui.BeginV(s.Locale.T(i18n.KeyTitle)+"###Controls", nil, flags) {
		s.renderControls()
	}
	imgui.End()

	showDetail := s.View.Selected() != nil
	viewportWidth := workSize.X - controlPanelWidth
	if showDetail {
		viewportWidth -= detailPanelWidth
	}

	// Center panel - the universe itself
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+controlPanelWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(viewportWidth, contentHeight))
	viewportFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("###Viewport", nil, viewportFlags) {
		s.renderViewport()
	}
	imgui.End()

	// Right panel - selected image detail
	if showDetail {
		imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+controlPanelWidth+viewportWidth, workPos.Y))
		imgui.SetNextWindowSize(imgui.NewVec2(detailPanelWidth, contentHeight))
		if imgui.BeginV("###Detail", nil, viewportFlags) {
			s.renderDetail()
		}
		imgui.End()
	}

	// Status bar
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, statusBarHeight))
	statusFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("###StatusBar", nil, statusFlags) {
		s.renderStatusBar()
	}
	imgui.End()

	s.renderTooltip()
}

func (s *State) renderStatusBar() {
	visible := len(s.View.Visible())
	total := s.View.Store().Len()
	imgui.Text(fmt.Sprintf("%s: %d / %s: %d",
		s.Locale.T(i18n.KeyVisibleCount), visible,
		s.Locale.T(i18n.KeyTotalCount), total))

	if s.Stats != nil {
		imgui.SameLine()
		imgui.TextDisabled(fmt.Sprintf("| %s: %d",
			s.Locale.T(i18n.KeyArchitectureOnly), s.Stats.ArchitectureImages))
	}
}

package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/archiviz/universe/internal/engine/picking"
)

func (s *State) renderViewport() {
	// Advance animation and camera fly-to once per frame
	s.View.Advance()
	s.Camera.Follow(s.View.CameraTarget())

	positions, colors, sizes := s.View.Frame()
	s.Renderer.Upload(positions, colors, sizes)

	avail := imgui.ContentRegionAvail()
	if avail.X < 1 || avail.Y < 1 {
		return
	}
	// Keep the offscreen target matched to the widget so picking
	// coordinates map 1:1
	if err := s.Renderer.Resize(int32(avail.X), int32(avail.Y)); err != nil {
		return
	}

	textureID := s.Renderer.Render(s.Camera.ViewMatrix())

	imagePos := imgui.CursorScreenPos()

	// Display rendered texture (flip V for OpenGL)
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(avail.X, avail.Y),
		imgui.NewVec2(0, 1), // UV flipped
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)

	if !imgui.IsItemHovered() {
		s.View.HoverEnd()
		return
	}

	mousePos := imgui.MousePos()
	dragging := imgui.IsMouseDragging(imgui.MouseButtonLeft)

	if dragging {
		s.Camera.HandleDrag(mousePos.X-s.lastMousePos.X, mousePos.Y-s.lastMousePos.Y)
		s.View.HoverEnd()
	}
	s.lastMousePos = mousePos

	if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
		s.Camera.HandleZoom(wheel)
	}

	if dragging {
		return
	}

	// Hit test against the displayed points
	idx := s.pickPoint(positions, mousePos.X-imagePos.X, mousePos.Y-imagePos.Y)

	if idx >= 0 {
		s.View.HoverPoint(idx, mousePos.X, mousePos.Y)
	} else {
		s.View.HoverEnd()
	}

	if imgui.IsMouseClickedBool(imgui.MouseButtonLeft) {
		if idx >= 0 {
			s.View.ClickPoint(idx)
		} else {
			s.View.ClearSelection()
		}
	}
}

// pickPoint casts a ray through the viewport pixel and returns the index
// of the nearest visible point, -1 on a miss.
func (s *State) pickPoint(positions []float32, localX, localY float32) int {
	w, h := s.Renderer.Size()
	if w < 1 || h < 1 {
		return -1
	}

	viewProj := s.Renderer.ProjectionMatrix().Mul(s.Camera.ViewMatrix())
	ray := picking.ScreenToRay(localX, localY, float32(w), float32(h), viewProj.Inverse())

	return ray.NearestSphere(positions, s.View.PointRadius)
}

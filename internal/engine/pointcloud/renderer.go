// Package pointcloud renders the image universe as a cloud of round,
// glowing points into an offscreen framebuffer that the UI displays as
// an image widget.
package pointcloud

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/archiviz/universe/internal/engine/shader"
	"github.com/archiviz/universe/internal/logger"
	"github.com/archiviz/universe/pkg/vecmath"
)

const vertexShaderSource = `#version 410 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aColor;
layout(location = 2) in float aSize;

uniform mat4 uView;
uniform mat4 uProjection;
uniform float uPixelScale;

out vec3 vColor;

void main() {
	vec4 viewPos = uView * vec4(aPosition, 1.0);
	gl_Position = uProjection * viewPos;

	// Perspective point size: shrink with distance
	float dist = max(length(viewPos.xyz), 0.001);
	gl_PointSize = max(aSize * uPixelScale / dist, 1.0);

	vColor = aColor;
}
`

const fragmentShaderSource = `#version 410 core
in vec3 vColor;
out vec4 fragColor;

void main() {
	// Round sprite with a soft falloff toward the edge
	vec2 p = gl_PointCoord * 2.0 - 1.0;
	float r2 = dot(p, p);
	if (r2 > 1.0) {
		discard;
	}
	float alpha = 1.0 - smoothstep(0.55, 1.0, r2);
	fragColor = vec4(vColor, alpha);
}
`

// pixelScale converts world point sizes to screen pixels at unit distance.
const pixelScale = 90.0

// Renderer draws packed point buffers offscreen. The caller uploads fresh
// buffers each frame with Upload and composites the color texture into
// the UI.
type Renderer struct {
	width  int32
	height int32

	fbo          uint32
	colorTexture uint32
	depthRBO     uint32

	program       uint32
	locView       int32
	locProjection int32
	locPixelScale int32

	vao       uint32
	posVBO    uint32
	colorVBO  uint32
	sizeVBO   uint32
	capacity  int // points the VBOs can hold
	numPoints int32

	Background [4]float32
}

// New creates a renderer with an offscreen target of the given size.
// Requires a current OpenGL context.
func New(width, height int32) (*Renderer, error) {
	r := &Renderer{
		width:      width,
		height:     height,
		Background: [4]float32{0.03, 0.04, 0.08, 1.0},
	}

	if err := r.createFramebuffer(); err != nil {
		return nil, err
	}

	program, err := shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		r.Destroy()
		return nil, err
	}
	r.program = program
	r.locView = shader.Uniform(program, "uView")
	r.locProjection = shader.Uniform(program, "uProjection")
	r.locPixelScale = shader.Uniform(program, "uPixelScale")

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.posVBO)
	gl.GenBuffers(1, &r.colorVBO)
	gl.GenBuffers(1, &r.sizeVBO)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.posVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, nil)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 0, nil)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.sizeVBO)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, 0, nil)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("point cloud renderer created",
		zap.Int32("width", width), zap.Int32("height", height))
	return r, nil
}

func (r *Renderer) createFramebuffer() error {
	gl.GenFramebuffers(1, &r.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)

	gl.GenTextures(1, &r.colorTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.colorTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, r.width, r.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, r.colorTexture, 0)

	gl.GenRenderbuffers(1, &r.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, r.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, r.width, r.height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, r.depthRBO)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

// Resize recreates the offscreen target at a new size.
func (r *Renderer) Resize(width, height int32) error {
	if width == r.width && height == r.height {
		return nil
	}
	if width < 1 || height < 1 {
		return nil
	}

	r.destroyFramebuffer()
	r.width = width
	r.height = height
	return r.createFramebuffer()
}

// Size returns the offscreen target dimensions.
func (r *Renderer) Size() (int32, int32) {
	return r.width, r.height
}

// Upload streams point data for the next Render call. positions is
// packed xyz, colors packed rgb, sizes one float per point.
func (r *Renderer) Upload(positions, colors, sizes []float32) {
	n := len(sizes)
	r.numPoints = int32(n)
	if n == 0 {
		return
	}

	// Orphan and regrow the buffers when the point count increases
	if n > r.capacity {
		r.capacity = n + n/2
		gl.BindBuffer(gl.ARRAY_BUFFER, r.posVBO)
		gl.BufferData(gl.ARRAY_BUFFER, r.capacity*3*4, nil, gl.STREAM_DRAW)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
		gl.BufferData(gl.ARRAY_BUFFER, r.capacity*3*4, nil, gl.STREAM_DRAW)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.sizeVBO)
		gl.BufferData(gl.ARRAY_BUFFER, r.capacity*4, nil, gl.STREAM_DRAW)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.posVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*3*4, gl.Ptr(positions))
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*3*4, gl.Ptr(colors))
	gl.BindBuffer(gl.ARRAY_BUFFER, r.sizeVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*4, gl.Ptr(sizes))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render draws the uploaded points and returns the color texture ID.
func (r *Renderer) Render(view vecmath.Mat4) uint32 {
	// Save caller state; imgui owns the default framebuffer
	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	var prevViewport [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
	gl.Viewport(0, 0, r.width, r.height)

	gl.ClearColor(r.Background[0], r.Background[1], r.Background[2], r.Background[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.numPoints > 0 {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
		gl.DepthMask(false)

		// Additive-ish blending makes overlapping points glow
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
		gl.Enable(gl.PROGRAM_POINT_SIZE)

		gl.UseProgram(r.program)

		aspect := float32(r.width) / float32(r.height)
		projection := vecmath.Perspective(gomath.Pi/4, aspect, 0.1, 5000.0)

		gl.UniformMatrix4fv(r.locProjection, 1, false, projection.Ptr())
		gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
		gl.Uniform1f(r.locPixelScale, pixelScale)

		gl.BindVertexArray(r.vao)
		gl.DrawArrays(gl.POINTS, 0, r.numPoints)
		gl.BindVertexArray(0)

		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
		gl.Disable(gl.PROGRAM_POINT_SIZE)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
	gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])

	return r.colorTexture
}

// ProjectionMatrix returns the projection used by Render at the current
// target size, for picking.
func (r *Renderer) ProjectionMatrix() vecmath.Mat4 {
	aspect := float32(r.width) / float32(r.height)
	return vecmath.Perspective(gomath.Pi/4, aspect, 0.1, 5000.0)
}

func (r *Renderer) destroyFramebuffer() {
	if r.fbo != 0 {
		gl.DeleteFramebuffers(1, &r.fbo)
		r.fbo = 0
	}
	if r.colorTexture != 0 {
		gl.DeleteTextures(1, &r.colorTexture)
		r.colorTexture = 0
	}
	if r.depthRBO != 0 {
		gl.DeleteRenderbuffers(1, &r.depthRBO)
		r.depthRBO = 0
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	r.destroyFramebuffer()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	for _, vbo := range []*uint32{&r.posVBO, &r.colorVBO, &r.sizeVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
			*vbo = 0
		}
	}
}

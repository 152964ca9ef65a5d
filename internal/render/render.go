package render

import (
	"image/color"

	"rubik-sketch/internal/camera"
	"rubik-sketch/internal/logger"
	"rubik-sketch/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Overlay draws 2D information on top of the 3D scene.
type Overlay interface {
	Draw(s *scene.Scene)
}

// Renderer draws a scene with raylib. GPU resources are created on the first Render, after
// the window and its GL context exist.
type Renderer struct {
	width, height int

	loaded    bool
	box       rl.Mesh
	lit       rl.Material
	additive  rl.Material
	overlay   Overlay
	log       logger.Logger
	litShader bool
}

// New returns a renderer. overlay may be nil.
func New(overlay Overlay, log logger.Logger) *Renderer {
	return &Renderer{overlay: overlay, log: logger.OrNop(log)}
}

// SetSize records the output size and resizes the window when it differs.
func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = width, height
	if !rl.IsWindowReady() {
		return
	}
	if rl.GetScreenWidth() != width || rl.GetScreenHeight() != height {
		rl.SetWindowSize(width, height)
	}
}

// Size is the output size last set with SetSize.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// ensure creates the box mesh and both materials if not yet loaded.
func (r *Renderer) ensure() {
	if r.loaded {
		return
	}
	r.box = rl.GenMeshCube(1, 1, 1)
	r.lit = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		r.lit.Shader = shader
		r.litShader = true
	} else {
		r.log.Warnf("lit shader failed to compile, falling back to unlit pieces")
	}
	r.additive = rl.LoadMaterialDefault()
	r.loaded = true
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	if !r.loaded {
		return
	}
	rl.UnloadMesh(&r.box)
	rl.UnloadMaterial(r.lit)
	rl.UnloadMaterial(r.additive)
	r.loaded = false
}

// Render draws one full frame: background, lit pieces, the additive indicator when visible,
// then the overlay.
func (r *Renderer) Render(s *scene.Scene) {
	r.ensure()

	rl.BeginDrawing()
	rl.ClearBackground(s.Background)

	rl.BeginMode3D(camera3D(s.Camera))
	// BeginMode3D builds its own projection with fixed clip planes; draw with the camera's.
	rl.SetMatrixProjection(projection(s.Camera))
	if r.litShader {
		setLightUniforms(r.lit.Shader, s)
	}
	for _, p := range s.Grid.Pieces() {
		r.drawBox(r.lit, p.Color(), s.Grid.PieceToWorld(p))
	}
	if s.Indicator.Visible {
		rl.BeginBlendMode(rl.BlendAdditive)
		r.drawBox(r.additive, s.Indicator.Color, s.Indicator.Transform())
		rl.EndBlendMode()
	}
	rl.EndMode3D()

	if r.overlay != nil {
		r.overlay.Draw(s)
	}
	rl.EndDrawing()
}

func (r *Renderer) drawBox(mtl rl.Material, c color.RGBA, model mgl32.Mat4) {
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = c
	}
	rl.DrawMesh(r.box, mtl, toMatrix(model))
}

// camera3D mirrors the camera model into raylib for the view matrix. The projection is
// replaced right after BeginMode3D.
func camera3D(c *camera.Perspective) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(c.Position),
		Target:     toVector3(c.Target),
		Up:         toVector3(c.Up),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// projection is the camera's projection, carrying its fovy, aspect and near/far planes.
func projection(c *camera.Perspective) rl.Matrix {
	return toMatrix(c.Projection())
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// toMatrix converts column-major mgl32 storage into raylib's Matrix, whose Mn fields use
// the same column-major numbering.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

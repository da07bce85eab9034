package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// sceneStride is the vertex layout of every 3D mesh: pos(3) normal(3) color(3).
const sceneStride = 9 * 4

type Renderer struct {
	// Scene program, shared by terrain and props.
	sceneProg   uint32
	uVP         int32
	uModel      int32
	uSunDir     int32
	uAmbient    int32
	uSunTint    int32
	uFogColor   int32
	uFogDensity int32
	uEyePos     int32
	uFlash      int32

	// Static terrain mesh.
	terrainVAO   uint32
	terrainVBO   uint32
	terrainVerts int32

	// Static decor mesh (trees, rocks, grass).
	decorVAO   uint32
	decorVBO   uint32
	decorVerts int32

	// Streaming mesh for animals, tracks and other per-frame geometry.
	dynVAO uint32
	dynVBO uint32
	dynCap int

	// Particle point sprites.
	particleProg  uint32
	particleVAO   uint32
	particleVBO   uint32
	paUVP         int32
	paUEyePos     int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	// Reusable render buffers to avoid per-frame heap allocations.
	dynBuf      []float32
	particleBuf []float32
}

func NewRenderer() (*Renderer, error) {
	sceneProg, err := linkProgram(sceneVertSrc, sceneFragSrc)
	if err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}
	particleProg, err := linkProgram(particleVertSrc, particleFragSrc)
	if err != nil {
		gl.DeleteProgram(sceneProg)
		return nil, fmt.Errorf("particle program: %w", err)
	}

	r := &Renderer{
		sceneProg:    sceneProg,
		particleProg: particleProg,
	}

	gl.UseProgram(sceneProg)
	r.uVP = gl.GetUniformLocation(sceneProg, gl.Str("uVP\x00"))
	r.uModel = gl.GetUniformLocation(sceneProg, gl.Str("uModel\x00"))
	r.uSunDir = gl.GetUniformLocation(sceneProg, gl.Str("uSunDir\x00"))
	r.uAmbient = gl.GetUniformLocation(sceneProg, gl.Str("uAmbient\x00"))
	r.uSunTint = gl.GetUniformLocation(sceneProg, gl.Str("uSunTint\x00"))
	r.uFogColor = gl.GetUniformLocation(sceneProg, gl.Str("uFogColor\x00"))
	r.uFogDensity = gl.GetUniformLocation(sceneProg, gl.Str("uFogDensity\x00"))
	r.uEyePos = gl.GetUniformLocation(sceneProg, gl.Str("uEyePos\x00"))
	r.uFlash = gl.GetUniformLocation(sceneProg, gl.Str("uFlash\x00"))

	ident := mgl32.Ident4()
	gl.UniformMatrix4fv(r.uModel, 1, false, &ident[0])
	gl.Uniform1f(r.uAmbient, 1.0)
	gl.Uniform3f(r.uSunTint, 1, 1, 1)
	gl.Uniform1f(r.uFlash, 0)

	r.terrainVAO, r.terrainVBO = newSceneVAO()
	r.decorVAO, r.decorVBO = newSceneVAO()
	r.dynVAO, r.dynVBO = newSceneVAO()

	// Particle VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, z, size, r, g, b, a).
	var pVAO, pVBO uint32
	gl.GenVertexArrays(1, &pVAO)
	gl.GenBuffers(1, &pVBO)
	gl.BindVertexArray(pVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, pVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticleRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	r.particleVAO = pVAO
	r.particleVBO = pVBO

	gl.UseProgram(particleProg)
	r.paUVP = gl.GetUniformLocation(particleProg, gl.Str("uVP\x00"))
	r.paUEyePos = gl.GetUniformLocation(particleProg, gl.Str("uEyePos\x00"))

	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return r, nil
}

// newSceneVAO creates an empty VAO/VBO pair with the scene vertex layout.
func newSceneVAO() (uint32, uint32) {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, sceneStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, sceneStride, glOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, sceneStride, glOffset(6*4))
	return vao, vbo
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.terrainVBO, r.decorVBO, r.dynVBO, r.particleVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.terrainVAO, r.decorVAO, r.dynVAO, r.particleVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.sceneProg, r.particleProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// UploadTerrain pushes the static terrain mesh once at level start.
func (r *Renderer) UploadTerrain(mesh []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.terrainVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh)*4, gl.Ptr(mesh), gl.STATIC_DRAW)
	r.terrainVerts = int32(len(mesh) / 9)
}

// UploadDecor pushes the static prop mesh once at level start.
func (r *Renderer) UploadDecor(mesh []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.decorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh)*4, gl.Ptr(mesh), gl.STATIC_DRAW)
	r.decorVerts = int32(len(mesh) / 9)
}

func (r *Renderer) BeginFrame(cam *Camera, fbW, fbH int, sky RGB) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(float32(sky.R)/255, float32(sky.G)/255, float32(sky.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	vp := cam.ViewProjection()
	gl.UseProgram(r.sceneProg)
	gl.UniformMatrix4fv(r.uVP, 1, false, &vp[0])
	gl.Uniform3f(r.uEyePos, float32(cam.Eye.X), float32(cam.Eye.Y), float32(cam.Eye.Z))

	gl.UseProgram(r.particleProg)
	gl.UniformMatrix4fv(r.paUVP, 1, false, &vp[0])
	gl.Uniform3f(r.paUEyePos, float32(cam.Eye.X), float32(cam.Eye.Y), float32(cam.Eye.Z))
}

// SetLight pushes the day-cycle and weather lighting state for this frame.
func (r *Renderer) SetLight(sunDir Vec3, ambient float64, tint RGB, fogColor RGB, fogDensity, flash float64) {
	gl.UseProgram(r.sceneProg)
	gl.Uniform3f(r.uSunDir, float32(sunDir.X), float32(sunDir.Y), float32(sunDir.Z))
	gl.Uniform1f(r.uAmbient, float32(ambient))
	gl.Uniform3f(r.uSunTint, float32(tint.R)/255, float32(tint.G)/255, float32(tint.B)/255)
	gl.Uniform3f(r.uFogColor, float32(fogColor.R)/255, float32(fogColor.G)/255, float32(fogColor.B)/255)
	gl.Uniform1f(r.uFogDensity, float32(fogDensity))
	gl.Uniform1f(r.uFlash, float32(flash))
}

func (r *Renderer) DrawTerrain() {
	if r.terrainVerts == 0 {
		return
	}
	gl.UseProgram(r.sceneProg)
	gl.BindVertexArray(r.terrainVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, r.terrainVerts)
}

func (r *Renderer) DrawDecor() {
	if r.decorVerts == 0 {
		return
	}
	gl.UseProgram(r.sceneProg)
	gl.BindVertexArray(r.decorVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, r.decorVerts)
}

// DrawDynamic uploads and draws the per-frame mesh (animals, tracks).
func (r *Renderer) DrawDynamic(mesh []float32) {
	if len(mesh) == 0 {
		return
	}
	gl.UseProgram(r.sceneProg)
	gl.BindVertexArray(r.dynVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.dynVBO)
	if len(mesh) > r.dynCap {
		gl.BufferData(gl.ARRAY_BUFFER, len(mesh)*4, gl.Ptr(mesh), gl.STREAM_DRAW)
		r.dynCap = len(mesh)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(mesh)*4, gl.Ptr(mesh))
	}
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(mesh)/9))
}

// DrawParticles renders the point sprite buffer with depth test but no
// depth write so precipitation doesn't punch holes in itself.
func (r *Renderer) DrawParticles(buf []float32) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxParticleRender {
		count = MaxParticleRender
		buf = buf[:count*8]
	}
	gl.UseProgram(r.particleProg)
	gl.BindVertexArray(r.particleVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.particleVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(buf))
	gl.DepthMask(false)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.DepthMask(true)
}

package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"go.uber.org/zap"

	"github.com/hubastard/grove-thumbstick/engine/assets"
	"github.com/hubastard/grove-thumbstick/engine/core"
)

// RendererGL draws flat rectangles and anti-aliased circles in framebuffer
// pixels (origin top-left). Every shape is the same unit quad scaled by uniforms.
type RendererGL struct {
	win     core.Window
	log     *zap.Logger
	program uint32
	vao     uint32
	vbo     uint32

	uViewport int32
	uRect     int32
	uColor    int32
	uCircle   int32
	uFeather  int32

	width, height float32
}

func NewRendererGL(win core.Window, _ core.Config, log *zap.Logger) (*RendererGL, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &RendererGL{win: win, log: log}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	vsSrc, err := assets.LoadShader("shape.vert")
	if err != nil {
		return err
	}
	fsSrc, err := assets.LoadShader("shape.frag")
	if err != nil {
		return err
	}
	r.program, err = makeProgram(vsSrc, fsSrc)
	if err != nil {
		return err
	}
	r.uViewport = uniform(r.program, "uViewport")
	r.uRect = uniform(r.program, "uRect")
	r.uColor = uniform(r.program, "uColor")
	r.uCircle = uniform(r.program, "uCircle")
	r.uFeather = uniform(r.program, "uFeather")

	// Unit quad as two triangles: pos (x,y) in [0,1].
	verts := []float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, unsafe.Pointer(uintptr(0)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if r.win != nil {
		w, h := r.win.FramebufferSize()
		r.Resize(w, h)
	}
	r.log.Debug("gl renderer ready")
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
	r.width, r.height = float32(w), float32(h)
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *RendererGL) DrawRect(x, y, w, h float32, color [4]float32) {
	r.draw(x, y, w, h, color, false, 0)
}

func (r *RendererGL) DrawCircle(cx, cy, radius float32, color [4]float32) {
	if radius <= 0 {
		return
	}
	// Feather about one pixel, expressed in the quad's [-1,1] space.
	r.draw(cx-radius, cy-radius, 2*radius, 2*radius, color, true, 1.5/radius)
}

func (r *RendererGL) draw(x, y, w, h float32, color [4]float32, circle bool, feather float32) {
	if w <= 0 || h <= 0 || r.width == 0 || r.height == 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.Uniform2f(r.uViewport, r.width, r.height)
	gl.Uniform4f(r.uRect, x, y, w, h)
	gl.Uniform4f(r.uColor, color[0], color[1], color[2], color[3])
	if circle {
		gl.Uniform1i(r.uCircle, 1)
	} else {
		gl.Uniform1i(r.uCircle, 0)
	}
	gl.Uniform1f(r.uFeather, feather)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// --- Shader utilities ---

func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		msg := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(msg))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(msg, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		msg := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(msg))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(msg, "\x00"))
	}
	return prog, nil
}

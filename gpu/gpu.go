// Package gpu describes the slice of the GL / WebGL 1 API the renderer uses.
// Backends live in the opengl (desktop) and webgl (js/wasm) packages.
package gpu

// Enum is a GL enumerant. WebGL shares the numeric values of desktop GL, so
// backends pass these straight through.
type Enum uint32

const (
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
	StaticDraw         Enum = 0x88E4

	VertexShader   Enum = 0x8B31
	FragmentShader Enum = 0x8B30

	Float         Enum = 0x1406
	UnsignedShort Enum = 0x1403

	Triangles Enum = 0x0004

	ColorBufferBit Enum = 0x4000
	DepthBufferBit Enum = 0x0100
	DepthTest      Enum = 0x0B71
)

// Object handles. Zero is never a valid object.
type (
	Buffer  uint32
	Shader  uint32
	Program uint32
)

// UniformLocation is -1 when the uniform is not active in the program.
type UniformLocation int32

// Context is a current GL context bound to a drawing surface. Calls are not
// safe for concurrent use; a context belongs to the goroutine (and, on the
// desktop, the OS thread) that created it.
type Context interface {
	CreateBuffer() Buffer
	DeleteBuffer(b Buffer)
	BindBuffer(target Enum, b Buffer)
	BufferDataFloat32(target Enum, data []float32, usage Enum)
	BufferDataUint16(target Enum, data []uint16, usage Enum)

	CreateShader(typ Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	BindAttribLocation(p Program, index uint32, name string)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)
	GetUniformLocation(p Program, name string) UniformLocation

	UniformMatrix4fv(loc UniformLocation, m [16]float32)
	Uniform4fv(loc UniformLocation, v [4]float32)

	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int, typ Enum, normalized bool, stride, offset int)

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	ClearDepth(d float32)
	Clear(mask Enum)
	Enable(capability Enum)
	DrawElements(mode Enum, count int, typ Enum, offset int)
	Flush()
}

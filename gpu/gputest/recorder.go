// Package gputest provides a gpu.Context that records calls instead of
// talking to a driver.
package gputest

import (
	"fmt"
	"slices"

	"one-engine/gpu"
)

// DrawCall is one recorded DrawElements.
type DrawCall struct {
	Mode   gpu.Enum
	Count  int
	Type   gpu.Enum
	Offset int
	// Program and ElementBuffer are the bindings in effect at draw time.
	Program       gpu.Program
	ElementBuffer gpu.Buffer
}

// AttribPointer is the recorded state of one vertex attribute.
type AttribPointer struct {
	Buffer gpu.Buffer
	Size   int
	Type   gpu.Enum
}

// Recorder implements gpu.Context in memory. Fail the compile of a shader
// stage or the program link by setting the corresponding log field.
type Recorder struct {
	CompileErrors map[gpu.Enum]string
	LinkError     string

	Calls        []string
	Draws        []DrawCall
	Flushes      int
	Clears       []gpu.Enum
	Enabled      []gpu.Enum
	ClearedColor [4]float32
	ClearedDepth float32
	ViewportSize [2]int
	ShadersMade  int
	ProgramsMade int
	ProgramLinks int

	BufferData  map[gpu.Buffer]any
	Attribs     map[uint32]AttribPointer
	AttribNames map[gpu.Program]map[uint32]string
	Uniforms    map[string]any // by uniform name

	next          uint32
	live          map[uint32]string
	shaderTypes   map[gpu.Shader]gpu.Enum
	shaderSources map[gpu.Shader]string
	linked        map[gpu.Program]bool
	locations     map[gpu.UniformLocation]string
	bound         map[gpu.Enum]gpu.Buffer
	current       gpu.Program
}

func NewRecorder() *Recorder {
	return &Recorder{
		CompileErrors: make(map[gpu.Enum]string),
		BufferData:    make(map[gpu.Buffer]any),
		Attribs:       make(map[uint32]AttribPointer),
		AttribNames:   make(map[gpu.Program]map[uint32]string),
		Uniforms:      make(map[string]any),
		live:          make(map[uint32]string),
		shaderTypes:   make(map[gpu.Shader]gpu.Enum),
		shaderSources: make(map[gpu.Shader]string),
		linked:        make(map[gpu.Program]bool),
		locations:     make(map[gpu.UniformLocation]string),
		bound:         make(map[gpu.Enum]gpu.Buffer),
	}
}

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) alloc(kind string) uint32 {
	r.next++
	r.live[r.next] = kind
	return r.next
}

// Live returns the number of undeleted objects of kind "buffer", "shader"
// or "program".
func (r *Recorder) Live(kind string) int {
	n := 0
	for _, k := range r.live {
		if k == kind {
			n++
		}
	}
	return n
}

// IsLive reports whether handle has been created and not deleted.
func (r *Recorder) IsLive(handle uint32) bool {
	_, ok := r.live[handle]
	return ok
}

func (r *Recorder) CreateBuffer() gpu.Buffer {
	b := gpu.Buffer(r.alloc("buffer"))
	r.record("CreateBuffer() = %d", b)
	return b
}

func (r *Recorder) DeleteBuffer(b gpu.Buffer) {
	r.record("DeleteBuffer(%d)", b)
	delete(r.live, uint32(b))
	delete(r.BufferData, b)
}

func (r *Recorder) BindBuffer(target gpu.Enum, b gpu.Buffer) {
	r.record("BindBuffer(%#x, %d)", target, b)
	r.bound[target] = b
}

func (r *Recorder) BufferDataFloat32(target gpu.Enum, data []float32, usage gpu.Enum) {
	r.record("BufferDataFloat32(%#x, %d)", target, len(data))
	r.BufferData[r.bound[target]] = slices.Clone(data)
}

func (r *Recorder) BufferDataUint16(target gpu.Enum, data []uint16, usage gpu.Enum) {
	r.record("BufferDataUint16(%#x, %d)", target, len(data))
	r.BufferData[r.bound[target]] = slices.Clone(data)
}

func (r *Recorder) CreateShader(typ gpu.Enum) gpu.Shader {
	s := gpu.Shader(r.alloc("shader"))
	r.shaderTypes[s] = typ
	r.ShadersMade++
	r.record("CreateShader(%#x) = %d", typ, s)
	return s
}

func (r *Recorder) ShaderSource(s gpu.Shader, src string) {
	r.record("ShaderSource(%d)", s)
	r.shaderSources[s] = src
}

func (r *Recorder) CompileShader(s gpu.Shader) {
	r.record("CompileShader(%d)", s)
}

func (r *Recorder) ShaderCompiled(s gpu.Shader) bool {
	_, failed := r.CompileErrors[r.shaderTypes[s]]
	return !failed && r.shaderSources[s] != ""
}

func (r *Recorder) ShaderInfoLog(s gpu.Shader) string {
	return r.CompileErrors[r.shaderTypes[s]]
}

// ShaderSourceOf returns the source given to the shader of typ created last.
func (r *Recorder) ShaderSourceOf(typ gpu.Enum) string {
	var last gpu.Shader
	for s, t := range r.shaderTypes {
		if t == typ && s > last {
			last = s
		}
	}
	return r.shaderSources[last]
}

func (r *Recorder) DeleteShader(s gpu.Shader) {
	r.record("DeleteShader(%d)", s)
	delete(r.live, uint32(s))
}

func (r *Recorder) CreateProgram() gpu.Program {
	p := gpu.Program(r.alloc("program"))
	r.ProgramsMade++
	r.AttribNames[p] = make(map[uint32]string)
	r.record("CreateProgram() = %d", p)
	return p
}

func (r *Recorder) AttachShader(p gpu.Program, s gpu.Shader) {
	r.record("AttachShader(%d, %d)", p, s)
}

func (r *Recorder) BindAttribLocation(p gpu.Program, index uint32, name string) {
	r.record("BindAttribLocation(%d, %d, %s)", p, index, name)
	r.AttribNames[p][index] = name
}

func (r *Recorder) LinkProgram(p gpu.Program) {
	r.record("LinkProgram(%d)", p)
	r.ProgramLinks++
	r.linked[p] = r.LinkError == ""
}

func (r *Recorder) ProgramLinked(p gpu.Program) bool {
	return r.linked[p]
}

func (r *Recorder) ProgramInfoLog(p gpu.Program) string {
	return r.LinkError
}

func (r *Recorder) DeleteProgram(p gpu.Program) {
	r.record("DeleteProgram(%d)", p)
	delete(r.live, uint32(p))
}

func (r *Recorder) UseProgram(p gpu.Program) {
	r.record("UseProgram(%d)", p)
	r.current = p
}

func (r *Recorder) GetUniformLocation(p gpu.Program, name string) gpu.UniformLocation {
	loc := gpu.UniformLocation(len(r.locations))
	r.locations[loc] = name
	return loc
}

func (r *Recorder) UniformMatrix4fv(loc gpu.UniformLocation, m [16]float32) {
	r.record("UniformMatrix4fv(%d)", loc)
	r.Uniforms[r.locations[loc]] = m
}

func (r *Recorder) Uniform4fv(loc gpu.UniformLocation, v [4]float32) {
	r.record("Uniform4fv(%d)", loc)
	r.Uniforms[r.locations[loc]] = v
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray(%d)", index)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int, typ gpu.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer(%d, %d)", index, size)
	r.Attribs[index] = AttribPointer{Buffer: r.bound[gpu.ArrayBuffer], Size: size, Type: typ}
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
	r.ViewportSize = [2]int{width, height}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor")
	r.ClearedColor = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) ClearDepth(d float32) {
	r.record("ClearDepth")
	r.ClearedDepth = d
}

func (r *Recorder) Clear(mask gpu.Enum) {
	r.record("Clear(%#x)", mask)
	r.Clears = append(r.Clears, mask)
}

func (r *Recorder) Enable(capability gpu.Enum) {
	r.record("Enable(%#x)", capability)
	r.Enabled = append(r.Enabled, capability)
}

func (r *Recorder) DrawElements(mode gpu.Enum, count int, typ gpu.Enum, offset int) {
	r.record("DrawElements(%#x, %d)", mode, count)
	r.Draws = append(r.Draws, DrawCall{
		Mode:          mode,
		Count:         count,
		Type:          typ,
		Offset:        offset,
		Program:       r.current,
		ElementBuffer: r.bound[gpu.ElementArrayBuffer],
	})
}

func (r *Recorder) Flush() {
	r.record("Flush")
	r.Flushes++
}

// Host hands out a single Recorder as the surface context. A nil Context
// models an environment without GPU support.
type Host struct {
	Context *Recorder
	Err     error

	Width, Height int
	Surfaces      int
}

func (h *Host) CreateSurface(width, height int) (gpu.Context, error) {
	h.Surfaces++
	h.Width, h.Height = width, height
	if h.Err != nil {
		return nil, h.Err
	}
	if h.Context == nil {
		return nil, nil
	}
	return h.Context, nil
}

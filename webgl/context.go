//go:build js && wasm

// Package webgl implements gpu.Context on a browser WebGL 1 context.
package webgl

import (
	"encoding/binary"
	"math"
	"syscall/js"

	"one-engine/gpu"
)

// Context wraps a WebGLRenderingContext. JS objects are kept in a handle
// table so the renderer can refer to them by integer.
type Context struct {
	gl js.Value

	next     uint32
	objects  map[uint32]js.Value
	uniforms []js.Value
}

var _ gpu.Context = (*Context)(nil)

func newContext(gl js.Value) *Context {
	return &Context{
		gl:      gl,
		objects: make(map[uint32]js.Value),
	}
}

func (c *Context) put(v js.Value) uint32 {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	c.next++
	c.objects[c.next] = v
	return c.next
}

func (c *Context) get(handle uint32) js.Value {
	if v, ok := c.objects[handle]; ok {
		return v
	}
	return js.Null()
}

func (c *Context) drop(handle uint32) js.Value {
	v := c.get(handle)
	delete(c.objects, handle)
	return v
}

func float32Array(data []float32) js.Value {
	buf := make([]byte, len(data)*4)
	for i, f := range data {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	u8 := js.Global().Get("Uint8Array").New(len(buf))
	js.CopyBytesToJS(u8, buf)
	return js.Global().Get("Float32Array").New(u8.Get("buffer"))
}

func uint16Array(data []uint16) js.Value {
	buf := make([]byte, len(data)*2)
	for i, v := range data {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	u8 := js.Global().Get("Uint8Array").New(len(buf))
	js.CopyBytesToJS(u8, buf)
	return js.Global().Get("Uint16Array").New(u8.Get("buffer"))
}

func (c *Context) CreateBuffer() gpu.Buffer {
	return gpu.Buffer(c.put(c.gl.Call("createBuffer")))
}

func (c *Context) DeleteBuffer(b gpu.Buffer) {
	c.gl.Call("deleteBuffer", c.drop(uint32(b)))
}

func (c *Context) BindBuffer(target gpu.Enum, b gpu.Buffer) {
	c.gl.Call("bindBuffer", int(target), c.get(uint32(b)))
}

func (c *Context) BufferDataFloat32(target gpu.Enum, data []float32, usage gpu.Enum) {
	c.gl.Call("bufferData", int(target), float32Array(data), int(usage))
}

func (c *Context) BufferDataUint16(target gpu.Enum, data []uint16, usage gpu.Enum) {
	c.gl.Call("bufferData", int(target), uint16Array(data), int(usage))
}

func (c *Context) CreateShader(typ gpu.Enum) gpu.Shader {
	return gpu.Shader(c.put(c.gl.Call("createShader", int(typ))))
}

func (c *Context) ShaderSource(s gpu.Shader, src string) {
	c.gl.Call("shaderSource", c.get(uint32(s)), src)
}

func (c *Context) CompileShader(s gpu.Shader) {
	c.gl.Call("compileShader", c.get(uint32(s)))
}

func (c *Context) ShaderCompiled(s gpu.Shader) bool {
	return c.gl.Call("getShaderParameter", c.get(uint32(s)), c.gl.Get("COMPILE_STATUS")).Bool()
}

func (c *Context) ShaderInfoLog(s gpu.Shader) string {
	return c.gl.Call("getShaderInfoLog", c.get(uint32(s))).String()
}

func (c *Context) DeleteShader(s gpu.Shader) {
	c.gl.Call("deleteShader", c.drop(uint32(s)))
}

func (c *Context) CreateProgram() gpu.Program {
	return gpu.Program(c.put(c.gl.Call("createProgram")))
}

func (c *Context) AttachShader(p gpu.Program, s gpu.Shader) {
	c.gl.Call("attachShader", c.get(uint32(p)), c.get(uint32(s)))
}

func (c *Context) BindAttribLocation(p gpu.Program, index uint32, name string) {
	c.gl.Call("bindAttribLocation", c.get(uint32(p)), index, name)
}

func (c *Context) LinkProgram(p gpu.Program) {
	c.gl.Call("linkProgram", c.get(uint32(p)))
}

func (c *Context) ProgramLinked(p gpu.Program) bool {
	return c.gl.Call("getProgramParameter", c.get(uint32(p)), c.gl.Get("LINK_STATUS")).Bool()
}

func (c *Context) ProgramInfoLog(p gpu.Program) string {
	return c.gl.Call("getProgramInfoLog", c.get(uint32(p))).String()
}

func (c *Context) DeleteProgram(p gpu.Program) {
	c.gl.Call("deleteProgram", c.drop(uint32(p)))
}

func (c *Context) UseProgram(p gpu.Program) {
	c.gl.Call("useProgram", c.get(uint32(p)))
}

// GetUniformLocation returns -1 for uniforms the driver optimised away,
// matching desktop GL.
func (c *Context) GetUniformLocation(p gpu.Program, name string) gpu.UniformLocation {
	loc := c.gl.Call("getUniformLocation", c.get(uint32(p)), name)
	if loc.IsNull() {
		return -1
	}
	c.uniforms = append(c.uniforms, loc)
	return gpu.UniformLocation(len(c.uniforms) - 1)
}

func (c *Context) uniform(loc gpu.UniformLocation) js.Value {
	if loc < 0 || int(loc) >= len(c.uniforms) {
		return js.Null()
	}
	return c.uniforms[loc]
}

func (c *Context) UniformMatrix4fv(loc gpu.UniformLocation, m [16]float32) {
	c.gl.Call("uniformMatrix4fv", c.uniform(loc), false, float32Array(m[:]))
}

func (c *Context) Uniform4fv(loc gpu.UniformLocation, v [4]float32) {
	c.gl.Call("uniform4fv", c.uniform(loc), float32Array(v[:]))
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.gl.Call("enableVertexAttribArray", index)
}

func (c *Context) VertexAttribPointer(index uint32, size int, typ gpu.Enum, normalized bool, stride, offset int) {
	c.gl.Call("vertexAttribPointer", index, size, int(typ), normalized, stride, offset)
}

func (c *Context) Viewport(x, y, width, height int) {
	c.gl.Call("viewport", x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
}

func (c *Context) ClearDepth(d float32) {
	c.gl.Call("clearDepth", d)
}

func (c *Context) Clear(mask gpu.Enum) {
	c.gl.Call("clear", int(mask))
}

func (c *Context) Enable(capability gpu.Enum) {
	c.gl.Call("enable", int(capability))
}

func (c *Context) DrawElements(mode gpu.Enum, count int, typ gpu.Enum, offset int) {
	c.gl.Call("drawElements", int(mode), count, int(typ), offset)
}

func (c *Context) Flush() {
	c.gl.Call("flush")
}

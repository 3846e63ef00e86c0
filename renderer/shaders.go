package renderer

import (
	"fmt"

	"one-engine/gpu"
)

// Attribute locations bound before linking.
const (
	attribPosition = 0
	attribNormal   = 1
	attribUV       = 2
)

var attribNames = [...]string{
	attribPosition: "position",
	attribNormal:   "normal",
	attribUV:       "uv",
}

// Uniform slots, in upload order.
const (
	uniformMVP = iota
	uniformNormal
	uniformLightVec
	uniformLightColor
	uniformMaterialColor
	numUniforms
)

var uniformNames = [numUniforms]string{
	uniformMVP:           "mvpMatrix",
	uniformNormal:        "normalMatrix",
	uniformLightVec:      "lightVec",
	uniformLightColor:    "lightColor",
	uniformMaterialColor: "materialColor",
}

// vertex shader: flat lighting against a fixed +Z direction, UV passthrough
const vertSrc = `#ifdef GL_ES
precision highp float;
#endif

uniform mat4 mvpMatrix;
uniform mat4 normalMatrix;
uniform vec4 lightVec;
uniform vec4 lightColor;
uniform vec4 materialColor;

attribute vec3 position;
attribute vec3 normal;
attribute vec2 uv;

varying vec4 color;
varying vec2 texCoord;

void main() {
  float light = clamp(dot(vec3(0.0, 0.0, 1.0), lightVec.xyz), 0.0, 1.0) * 0.8 + 0.2;
  color       = min(min(materialColor, lightColor), vec4(light, light, light, 1.0));
  texCoord    = uv;
  gl_Position = mvpMatrix * vec4(position, 1.0);
}`

// fragment shader: interpolated colour; the texture sample is disabled
const fragSrc = `#ifdef GL_ES
precision highp float;
#endif

uniform sampler2D texture;

varying vec4 color;
varying vec2 texCoord;

void main() {
  //gl_FragColor = texture2D(texture, texCoord) * color;
  gl_FragColor = color;
}`

// program is a linked shader program and its uniform locations.
type program struct {
	handle   gpu.Program
	uniforms [numUniforms]gpu.UniformLocation
}

func newProgram(ctx gpu.Context, vertSrc, fragSrc string) (*program, error) {
	vert, err := compileShader(ctx, vertSrc, gpu.VertexShader)
	if err != nil {
		return nil, err
	}
	frag, err := compileShader(ctx, fragSrc, gpu.FragmentShader)
	if err != nil {
		ctx.DeleteShader(vert)
		return nil, err
	}

	prog := ctx.CreateProgram()
	ctx.AttachShader(prog, vert)
	ctx.AttachShader(prog, frag)
	for index, name := range attribNames {
		ctx.BindAttribLocation(prog, uint32(index), name)
	}
	ctx.LinkProgram(prog)

	// Shaders are flagged for deletion and go away with the program.
	ctx.DeleteShader(vert)
	ctx.DeleteShader(frag)

	if !ctx.ProgramLinked(prog) {
		log := ctx.ProgramInfoLog(prog)
		ctx.DeleteProgram(prog)
		return nil, &ShaderError{Stage: "program", Log: log, err: ErrShaderLink}
	}

	p := &program{handle: prog}
	for i, name := range uniformNames {
		p.uniforms[i] = ctx.GetUniformLocation(prog, name)
	}
	return p, nil
}

func compileShader(ctx gpu.Context, src string, shaderType gpu.Enum) (gpu.Shader, error) {
	shader := ctx.CreateShader(shaderType)
	ctx.ShaderSource(shader, src)
	ctx.CompileShader(shader)

	if !ctx.ShaderCompiled(shader) {
		log := ctx.ShaderInfoLog(shader)
		ctx.DeleteShader(shader)
		return 0, &ShaderError{Stage: stageName(shaderType), Log: log, err: ErrShaderCompile}
	}
	return shader, nil
}

func stageName(shaderType gpu.Enum) string {
	switch shaderType {
	case gpu.VertexShader:
		return "vertex"
	case gpu.FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("shader %#x", uint32(shaderType))
}

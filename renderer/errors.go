package renderer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported means the host could not provide a GPU context.
	ErrUnsupported = errors.New("gpu context is not supported")
	// ErrNotSized is returned by Render before SetSize has succeeded.
	ErrNotSized = errors.New("renderer has no surface; call SetSize first")
	// ErrMultipleMeshes is returned when a scene holds more than one mesh.
	// The pipeline draws exactly one mesh per frame.
	ErrMultipleMeshes = errors.New("scene has more than one mesh")

	ErrShaderCompile = errors.New("shader compile failed")
	ErrShaderLink    = errors.New("shader link failed")
)

// ShaderError carries the driver's info log for a failed compile or link.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "program"
	Log   string
	err   error
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Stage, e.err, e.Log)
}

func (e *ShaderError) Unwrap() error {
	return e.err
}

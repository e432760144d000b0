package shaderplay

import "errors"

// Collaborator failures during startup. Implementations wrap them with the
// underlying cause.
var (
	ErrGLFWInit     = errors.New("failed to initialize GLFW")
	ErrCreateWindow = errors.New("failed to create GLFW window")
	ErrGLInit       = errors.New("failed to initialize OpenGL")
	ErrUsage        = errors.New("usage")
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps the error ending a playground run to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	}
	return ExitFailure
}

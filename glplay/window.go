//go:build !tinygo && cgo

package glplay

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/shaderplay"
)

// windowConfig is the subset of [shaderplay.Config] needed to open a window.
type windowConfig struct {
	Width, Height int
	Title         string
	Version       [2]int
	Resizable     bool
	Visible       bool
	SwapInterval  int
}

func startGLFW(cfg windowConfig) (window *glfw.Window, term func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", shaderplay.ErrGLFWInit, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Version[0])
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Version[1])
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	glfw.WindowHint(glfw.Visible, glfwBool(cfg.Visible))

	window, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("%w: %w", shaderplay.ErrCreateWindow, err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, nil, fmt.Errorf("%w: %w", shaderplay.ErrGLInit, err)
	}
	term = func() {
		window.Destroy()
		glfw.Terminate()
	}
	return window, term, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

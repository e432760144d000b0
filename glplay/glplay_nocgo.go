//go:build tinygo || !cgo

// Package glplay renders shaderplay fragment shaders on a full screen quad
// in a GLFW window.
package glplay

import (
	"context"
	"errors"
	"log/slog"

	"github.com/soypat/shaderplay"
)

var errNoCGO = errors.New("glplay requires CGo and is not supported on TinyGo")

type Source struct {
	Path     string
	Fragment string
}

type Options struct {
	Config     shaderplay.Config
	Logger     *slog.Logger
	TimeSource shaderplay.TimeSource
}

func Run(ctx context.Context, src Source, opts Options) error {
	return errNoCGO
}

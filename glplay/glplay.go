//go:build !tinygo && cgo

// Package glplay renders shaderplay fragment shaders on a full screen quad
// in a GLFW window.
package glplay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/shaderplay"
)

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// Source is the fragment shader to render.
type Source struct {
	// Path is the fragment shader file. Hot reload requires it.
	Path string
	// Fragment is inline shader source used when Path is empty.
	Fragment string
}

// Options configures [Run].
type Options struct {
	Config shaderplay.Config
	// Logger receives reload, resize and snapshot events. Nil means slog.Default().
	Logger *slog.Logger
	// TimeSource overrides the frame clock source. Nil means the OS monotonic clock.
	TimeSource shaderplay.TimeSource
}

// Run opens a window and renders src until the window is closed, escape is
// pressed or ctx is done. It must be called from the main goroutine.
// Startup failures (window, GL loader, shader read, compile and link) are
// returned immediately. Reload failures once running are only logged.
func Run(ctx context.Context, src Source, opts Options) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", shaderplay.ErrUsage, err)
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	fragment := src.Fragment
	if src.Path != "" {
		var err error
		fragment, err = shaderplay.ReadShaderFile(src.Path)
		if err != nil {
			return err
		}
	}

	window, term, err := startGLFW(windowConfig{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Title:        cfg.Title,
		Version:      cfg.GLVersion,
		Resizable:    cfg.Resizable,
		Visible:      true,
		SwapInterval: cfg.SwapInterval,
	})
	if err != nil {
		return err
	}
	defer term()
	log.Debug("context created", slog.String("gl", gl.GoStr(gl.GetString(gl.VERSION))))

	p := &player{
		cfg:    cfg,
		log:    log,
		window: window,
		reloader: &shaderplay.Reloader{
			Compiler: compiler{},
			Path:     src.Path,
			Vertex:   shaderplay.QuadVertexShader,
			Names:    cfg.Uniforms,
		},
		feeder: shaderplay.NewUniformFeeder(cfg.Uniforms),
		stats:  shaderplay.FrameStats{Interval: cfg.StatsInterval},
	}
	_, err = p.reloader.Build(fragment)
	if err != nil {
		return err
	}
	defer func() { compiler{}.DeleteProgram(p.reloader.Program()) }()

	p.mesh, err = uploadQuad()
	if err != nil {
		return err
	}
	defer p.mesh.delete()

	if cfg.HotReload && src.Path != "" {
		p.watcher, err = shaderplay.WatchShader(src.Path)
		if err != nil {
			log.Warn("hot reload disabled", slog.String("err", err.Error()))
		} else {
			defer p.watcher.Close()
			log.Info("watching shader", slog.String("path", p.watcher.Path()))
		}
	}

	fbw, fbh := window.GetFramebufferSize()
	p.viewport = shaderplay.NewViewportTracker(shaderplay.Viewport{Width: int32(fbw), Height: int32(fbh)})
	p.setCallbacks()
	p.clock = shaderplay.NewFrameClock(opts.TimeSource, cfg.DeltaPolicy)
	return p.loop(ctx)
}

// player holds the state threaded through the render loop.
type player struct {
	cfg      shaderplay.Config
	log      *slog.Logger
	window   *glfw.Window
	reloader *shaderplay.Reloader
	watcher  *shaderplay.ShaderWatcher
	feeder   *shaderplay.UniformFeeder
	viewport *shaderplay.ViewportTracker
	clock    *shaderplay.FrameClock
	stats    shaderplay.FrameStats
	mesh     quad
	mouse    ms2.Vec

	reloadRequested   bool
	snapshotRequested bool
}

func (p *player) setCallbacks() {
	p.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		p.viewport.Resize(width, height)
		vp := shaderplay.Viewport{Width: int32(width), Height: int32(height)}
		if ratio, ok := vp.AspectRatio(); ok {
			p.log.Debug("framebuffer resized", slog.Int("width", width), slog.Int("height", height), slog.Float64("aspect", float64(ratio)))
		} else {
			p.log.Debug("framebuffer minimized", slog.Int("width", width), slog.Int("height", height))
		}
	})
	p.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyF12:
			p.snapshotRequested = true
		case glfw.KeyR:
			p.reloadRequested = true
		}
	})
	p.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		ww, wh := w.GetSize()
		vp := p.viewport.Current()
		if ww <= 0 || wh <= 0 {
			return
		}
		// Window coordinates to framebuffer pixels, origin at the bottom left.
		sx := float32(vp.Width) / float32(ww)
		sy := float32(vp.Height) / float32(wh)
		p.mouse = ms2.Vec{X: float32(xpos) * sx, Y: float32(vp.Height) - float32(ypos)*sy}
	})
}

func (p *player) loop(ctx context.Context) error {
	for !p.window.ShouldClose() {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		p.pollReload()
		p.frame()
		p.window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// frame draws a single frame to the back buffer.
func (p *player) frame() {
	sample := p.clock.Tick()
	vp := p.viewport.Sync(gl.Viewport)

	c := p.cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	prog := program{id: p.reloader.Program()}
	prog.Bind()
	p.feeder.UpdateFrame(prog, shaderplay.FrameInputs{
		Sample:   sample,
		Viewport: vp,
		Mouse:    p.mouse,
	})
	p.mesh.draw()

	if p.stats.Add(sample) {
		p.log.Debug("frame timing",
			slog.Float64("mean_ms", float64(p.stats.MeanFrameMillis())),
			slog.Float64("jitter_ms", float64(p.stats.JitterMillis())),
			slog.Float64("fps", float64(p.stats.FPS())))
		if p.cfg.TitleTiming {
			p.window.SetTitle(p.stats.Title(p.cfg.Title))
		}
	}
	if p.snapshotRequested {
		p.snapshotRequested = false
		path, err := saveSnapshot(p.cfg.Snapshot, vp)
		if err != nil {
			p.log.Error("snapshot failed", slog.String("err", err.Error()))
		} else {
			p.log.Info("snapshot saved", slog.String("path", path))
		}
	}
}

func (p *player) pollReload() {
	if p.watcher != nil {
		if err := p.watcher.Err(); err != nil {
			p.log.Warn("shader watcher", slog.String("err", err.Error()))
		}
		if p.watcher.Changed() {
			p.reloadRequested = true
		}
	}
	if !p.reloadRequested || p.reloader.Path == "" {
		p.reloadRequested = false
		return
	}
	p.reloadRequested = false
	_, err := p.reloader.Reload()
	if err != nil {
		logBuildError(p.log, "reload failed, keeping previous program", err)
		return
	}
	p.log.Info("shader reloaded", slog.String("path", p.reloader.Path), slog.Int("builds", p.reloader.Builds()))
}

// logBuildError logs err with one record per compile diagnostic.
func logBuildError(log *slog.Logger, msg string, err error) {
	var cerr *shaderplay.CompileError
	if !errors.As(err, &cerr) || len(cerr.Diagnostics) == 0 {
		log.Error(msg, slog.String("err", err.Error()))
		return
	}
	log.Error(msg, slog.String("stage", cerr.Stage.String()), slog.Int("diagnostics", len(cerr.Diagnostics)))
	for _, d := range cerr.Diagnostics {
		log.Error(d.Message, slog.String("severity", d.Severity.String()), slog.Int("line", d.Line), slog.Int("col", d.Column))
	}
}

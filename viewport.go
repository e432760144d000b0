package shaderplay

import "github.com/soypat/geometry/ms2"

// Viewport is a framebuffer size in pixels.
type Viewport struct {
	Width  int32
	Height int32
}

// AspectRatio returns Width/Height. ok is false and ratio zero when the height
// is not positive, which happens when a window is minimized.
func (vp Viewport) AspectRatio() (ratio float32, ok bool) {
	if vp.Height <= 0 {
		return 0, false
	}
	return float32(vp.Width) / float32(vp.Height), true
}

// Resolution returns the viewport size as a vector for uniform upload.
func (vp Viewport) Resolution() ms2.Vec {
	return ms2.Vec{X: float32(vp.Width), Y: float32(vp.Height)}
}

// Empty reports whether there is nothing to draw to.
func (vp Viewport) Empty() bool { return vp.Width <= 0 || vp.Height <= 0 }

// ViewportTracker mirrors framebuffer size changes reported by the windowing
// layer into the graphics context. Resize is meant to be called from the
// framebuffer size callback any number of times between frames; Sync is called
// once per frame before drawing and applies only the latest size.
type ViewportTracker struct {
	current Viewport
	pending Viewport
	dirty   bool
	resizes int
}

// NewViewportTracker returns a tracker whose first Sync applies initial.
func NewViewportTracker(initial Viewport) *ViewportTracker {
	return &ViewportTracker{pending: initial, current: initial, dirty: true}
}

// Resize records a framebuffer size change.
func (t *ViewportTracker) Resize(width, height int) {
	t.pending = Viewport{Width: int32(width), Height: int32(height)}
	t.dirty = true
	t.resizes++
}

// Sync calls apply with the latest reported size if it changed since the last
// Sync and returns the viewport to be used for this frame. apply may be nil.
func (t *ViewportTracker) Sync(apply func(x, y, width, height int32)) Viewport {
	if t.dirty {
		t.current = t.pending
		t.dirty = false
		if apply != nil {
			apply(0, 0, t.current.Width, t.current.Height)
		}
	}
	return t.current
}

// Current returns the viewport applied by the last Sync.
func (t *ViewportTracker) Current() Viewport { return t.current }

// Resizes returns the number of resize events received.
func (t *ViewportTracker) Resizes() int { return t.resizes }

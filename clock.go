// Package shaderplay keeps fragment shader playgrounds fed: a monotonic frame
// clock, viewport tracking and per-frame uniform uploads.
package shaderplay

import (
	"fmt"
	"sync/atomic"
)

// lastMillis holds the last value read from the OS time source. It is returned
// when the OS call fails so a render loop never stalls on a bad clock read.
var lastMillis atomic.Uint64

// NowMilliseconds returns milliseconds since an unspecified epoch read from the
// OS monotonic time source. The source is picked at compile time. NowMilliseconds
// never fails: if the OS call errors the last known value is returned.
func NowMilliseconds() uint64 {
	return nowFrom(systemMillis)
}

// nowFrom reads the clock with read, falling back to the last good value.
func nowFrom(read func() (uint64, bool)) uint64 {
	ms, ok := read()
	if !ok {
		return lastMillis.Load()
	}
	lastMillis.Store(ms)
	return ms
}

// ElapsedSince returns NowMilliseconds()-start. start must come from [NowMilliseconds].
func ElapsedSince(start uint64) uint64 {
	return elapsed(NowMilliseconds(), start)
}

// elapsed is the unsigned difference now-start clamped at zero so that a clock
// stepping back past start does not wrap around.
func elapsed(now, start uint64) uint64 {
	if now < start {
		return 0
	}
	return now - start
}

// TimeSource returns milliseconds since an arbitrary but fixed epoch.
type TimeSource func() uint64

// DeltaPolicy selects how negative frame deltas, only possible with a
// non-monotonic time source, are reported.
type DeltaPolicy uint8

const (
	// DeltaRaw reports deltas as measured, negative values included.
	DeltaRaw DeltaPolicy = iota
	// DeltaClamp floors deltas at zero.
	DeltaClamp
)

func (p DeltaPolicy) String() string {
	switch p {
	case DeltaRaw:
		return "raw"
	case DeltaClamp:
		return "clamp"
	}
	return fmt.Sprintf("DeltaPolicy(%d)", uint8(p))
}

func (p DeltaPolicy) MarshalText() ([]byte, error) {
	switch p {
	case DeltaRaw, DeltaClamp:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("invalid delta policy %d", uint8(p))
}

func (p *DeltaPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "raw":
		*p = DeltaRaw
	case "clamp":
		*p = DeltaClamp
	default:
		return fmt.Errorf("invalid delta policy %q, want \"raw\" or \"clamp\"", text)
	}
	return nil
}

// FrameSample is the timing of a single frame as derived by [FrameClock.Tick].
type FrameSample struct {
	// Frame is the zero based index of the frame.
	Frame uint64
	// ElapsedMillis is the time since the clock was started.
	ElapsedMillis uint64
	// DeltaMillis is ElapsedMillis minus the previous frame's ElapsedMillis.
	// It is only negative if the time source is not monotonic and the policy is DeltaRaw.
	DeltaMillis int64
}

// Seconds returns the elapsed time in seconds.
func (s FrameSample) Seconds() float32 {
	return float32(float64(s.ElapsedMillis) / 1000)
}

// DeltaSeconds returns the frame delta in seconds.
func (s FrameSample) DeltaSeconds() float32 {
	return float32(float64(s.DeltaMillis) / 1000)
}

// FrameClock tracks program time for a render loop. It is owned by the loop
// and passed around explicitly, there is no package level timing state.
type FrameClock struct {
	src         TimeSource
	policy      DeltaPolicy
	start       uint64
	lastElapsed uint64
	frames      uint64
}

// NewFrameClock captures the start time from src. A nil src uses [NowMilliseconds].
func NewFrameClock(src TimeSource, policy DeltaPolicy) *FrameClock {
	if src == nil {
		src = NowMilliseconds
	}
	return &FrameClock{
		src:    src,
		policy: policy,
		start:  src(),
	}
}

// Start returns the timestamp captured at construction.
func (c *FrameClock) Start() uint64 { return c.start }

// Elapsed returns the elapsed milliseconds as of the last call to Tick.
func (c *FrameClock) Elapsed() uint64 { return c.lastElapsed }

// Tick samples the time source and returns the new frame's timing. The delta
// is the difference of the elapsed values so no rounding error compounds.
func (c *FrameClock) Tick() FrameSample {
	el := elapsed(c.src(), c.start)
	delta := int64(el) - int64(c.lastElapsed)
	if delta < 0 && c.policy == DeltaClamp {
		delta = 0
	}
	c.lastElapsed = el
	sample := FrameSample{
		Frame:         c.frames,
		ElapsedMillis: el,
		DeltaMillis:   delta,
	}
	c.frames++
	return sample
}

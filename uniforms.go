package shaderplay

import (
	"github.com/soypat/geometry/ms2"
)

// UniformProgram is a linked shader program that accepts uniform uploads.
// Set methods assume the program is currently bound.
type UniformProgram interface {
	// ID uniquely identifies the program. A new ID invalidates cached locations.
	ID() uint32
	// UniformLocation returns the location of the named uniform and whether
	// the program declares it. Unused uniforms may be optimized away by drivers.
	UniformLocation(name string) (loc int32, found bool)
	SetUniform1f(loc int32, v float32)
	SetUniform2f(loc int32, x, y float32)
	SetUniform1i(loc int32, v int32)
}

// UniformNames are the names of the uniforms fed every frame. An empty name
// disables the corresponding uniform.
type UniformNames struct {
	Time       string `toml:"time"`
	Resolution string `toml:"resolution"`
	TimeDelta  string `toml:"time_delta"`
	Frame      string `toml:"frame"`
	Mouse      string `toml:"mouse"`
}

// DefaultUniformNames returns the conventional playground uniform names.
func DefaultUniformNames() UniformNames {
	return UniformNames{
		Time:       "uTime",
		Resolution: "uResolution",
		TimeDelta:  "uTimeDelta",
		Frame:      "uFrame",
		Mouse:      "uMouse",
	}
}

// UniformStatus is the outcome of feeding one uniform.
type UniformStatus uint8

const (
	// UniformDisabled means the uniform has no configured name.
	UniformDisabled UniformStatus = iota
	// UniformUploaded means the value was sent to the program.
	UniformUploaded
	// UniformNotFound means the program does not declare the uniform. This is
	// not an error: a shader need not use every input.
	UniformNotFound
)

func (s UniformStatus) String() string {
	switch s {
	case UniformDisabled:
		return "disabled"
	case UniformUploaded:
		return "uploaded"
	case UniformNotFound:
		return "not found"
	}
	return "invalid"
}

// FrameInputs are the per-frame values fed to the shader program.
type FrameInputs struct {
	Sample   FrameSample
	Viewport Viewport
	// Mouse is the cursor position in framebuffer pixels with origin at the bottom left.
	Mouse ms2.Vec
}

// FeedReport holds the outcome of each uniform upload of a frame.
type FeedReport struct {
	Time       UniformStatus
	Resolution UniformStatus
	TimeDelta  UniformStatus
	Frame      UniformStatus
	Mouse      UniformStatus
}

// Missing returns how many enabled uniforms the program does not declare.
func (r FeedReport) Missing() (n int) {
	for _, s := range [...]UniformStatus{r.Time, r.Resolution, r.TimeDelta, r.Frame, r.Mouse} {
		if s == UniformNotFound {
			n++
		}
	}
	return n
}

// UniformFeeder uploads the standard playground uniforms. It keeps no state
// besides the uniform locations of the last program it was used with.
type UniformFeeder struct {
	names  UniformNames
	progID uint32
	valid  bool
	locs   map[string]int32
}

// NewUniformFeeder returns a feeder for the given uniform names.
func NewUniformFeeder(names UniformNames) *UniformFeeder {
	return &UniformFeeder{names: names, locs: make(map[string]int32)}
}

// Update uploads elapsed time and resolution to prog, which must be bound.
func (f *UniformFeeder) Update(prog UniformProgram, elapsedSeconds float32, res Viewport) (time, resolution UniformStatus) {
	f.reset(prog)
	time = f.set1f(prog, f.names.Time, elapsedSeconds)
	r := res.Resolution()
	resolution = f.set2f(prog, f.names.Resolution, r.X, r.Y)
	return time, resolution
}

// UpdateFrame uploads all the frame inputs to prog, which must be bound.
func (f *UniformFeeder) UpdateFrame(prog UniformProgram, in FrameInputs) FeedReport {
	var r FeedReport
	r.Time, r.Resolution = f.Update(prog, in.Sample.Seconds(), in.Viewport)
	r.TimeDelta = f.set1f(prog, f.names.TimeDelta, in.Sample.DeltaSeconds())
	r.Frame = f.set1i(prog, f.names.Frame, int32(in.Sample.Frame))
	r.Mouse = f.set2f(prog, f.names.Mouse, in.Mouse.X, in.Mouse.Y)
	return r
}

func (f *UniformFeeder) reset(prog UniformProgram) {
	if f.valid && prog.ID() == f.progID {
		return
	}
	clear(f.locs)
	f.progID = prog.ID()
	f.valid = true
}

// location looks up name once per program. Misses are cached as -1.
func (f *UniformFeeder) location(prog UniformProgram, name string) (int32, UniformStatus) {
	if name == "" {
		return -1, UniformDisabled
	}
	if f.locs == nil {
		f.locs = make(map[string]int32)
	}
	loc, cached := f.locs[name]
	if !cached {
		var found bool
		loc, found = prog.UniformLocation(name)
		if !found {
			loc = -1
		}
		f.locs[name] = loc
	}
	if loc < 0 {
		return -1, UniformNotFound
	}
	return loc, UniformUploaded
}

func (f *UniformFeeder) set1f(prog UniformProgram, name string, v float32) UniformStatus {
	loc, status := f.location(prog, name)
	if status == UniformUploaded {
		prog.SetUniform1f(loc, v)
	}
	return status
}

func (f *UniformFeeder) set2f(prog UniformProgram, name string, x, y float32) UniformStatus {
	loc, status := f.location(prog, name)
	if status == UniformUploaded {
		prog.SetUniform2f(loc, x, y)
	}
	return status
}

func (f *UniformFeeder) set1i(prog UniformProgram, name string, v int32) UniformStatus {
	loc, status := f.location(prog, name)
	if status == UniformUploaded {
		prog.SetUniform1i(loc, v)
	}
	return status
}

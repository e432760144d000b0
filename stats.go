package shaderplay

import (
	"fmt"

	"github.com/chewxy/math32"
)

// FrameStats averages frame times over fixed intervals of elapsed time.
type FrameStats struct {
	// Interval is the averaging window in milliseconds. Zero means one second.
	Interval uint64

	windowStart uint64
	frames      uint64
	started     bool
	sumSq       float32
	meanMillis  float32
	jitter      float32
	fps         float32
}

// Add accounts a frame. It returns true when a new average was published.
func (s *FrameStats) Add(sample FrameSample) bool {
	interval := s.Interval
	if interval == 0 {
		interval = 1000
	}
	if !s.started {
		s.started = true
		s.windowStart = sample.ElapsedMillis
		return false
	}
	s.frames++
	d := float32(sample.DeltaMillis)
	s.sumSq += d * d
	span := elapsed(sample.ElapsedMillis, s.windowStart)
	if span < interval {
		return false
	}
	n := float32(s.frames)
	s.meanMillis = float32(span) / n
	// Population standard deviation of the frame deltas.
	s.jitter = math32.Sqrt(math32.Max(0, s.sumSq/n-s.meanMillis*s.meanMillis))
	s.fps = 0
	if s.meanMillis > 0 {
		s.fps = 1000 / s.meanMillis
	}
	s.windowStart = sample.ElapsedMillis
	s.frames = 0
	s.sumSq = 0
	return true
}

// MeanFrameMillis returns the last published mean frame time.
func (s *FrameStats) MeanFrameMillis() float32 { return s.meanMillis }

// JitterMillis returns the standard deviation of frame times in the last
// published window.
func (s *FrameStats) JitterMillis() float32 { return s.jitter }

// FPS returns the last published frame rate.
func (s *FrameStats) FPS() float32 { return s.fps }

// Title formats base with the last published statistics.
func (s *FrameStats) Title(base string) string {
	return fmt.Sprintf("%s | %.2f ms/frame (%.1f fps)", base, s.meanMillis, s.fps)
}

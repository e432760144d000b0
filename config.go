package shaderplay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config configures a playground window and its render loop.
type Config struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
	// SwapInterval is the number of screen updates to wait before swapping
	// buffers. 1 enables vsync.
	SwapInterval int `toml:"swap_interval"`
	// GLVersion is the requested core profile context version.
	GLVersion [2]int `toml:"gl_version"`
	// TitleTiming appends frame timing statistics to the window title.
	TitleTiming bool `toml:"title_timing"`
	// HotReload recompiles the fragment shader when its file changes.
	HotReload   bool        `toml:"hot_reload"`
	DeltaPolicy DeltaPolicy `toml:"delta_policy"`
	ClearColor  [4]float32  `toml:"clear_color"`
	// StatsInterval is the number of milliseconds over which frame statistics are averaged.
	StatsInterval uint64         `toml:"stats_interval"`
	Uniforms      UniformNames   `toml:"uniforms"`
	Snapshot      SnapshotConfig `toml:"snapshot"`
}

// SnapshotConfig configures framebuffer screenshots.
type SnapshotConfig struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		Title:         "shaderplay",
		Resizable:     true,
		SwapInterval:  1,
		GLVersion:     [2]int{4, 1},
		DeltaPolicy:   DeltaRaw,
		ClearColor:    [4]float32{0.2, 0.3, 0.3, 1},
		StatsInterval: 1000,
		Uniforms:      DefaultUniformNames(),
		Snapshot: SnapshotConfig{
			Dir:    ".",
			Format: "png",
		},
	}
}

// DecodeConfig decodes TOML from r into cfg. Keys absent from r keep the
// value already in cfg so callers usually start from [DefaultConfig].
// Unknown keys are an error.
func DecodeConfig(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	err := dec.Decode(cfg)
	if err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("decoding config: %s", strict.String())
		}
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

// LoadConfigFile reads the TOML file at path over [DefaultConfig] and validates the result.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	fp, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer fp.Close()
	err = DecodeConfig(fp, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	err = cfg.Validate()
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cfg for values a window cannot be created with.
func (cfg Config) Validate() error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	case cfg.GLVersion[0] < 3 || (cfg.GLVersion[0] == 3 && cfg.GLVersion[1] < 3):
		return fmt.Errorf("OpenGL %d.%d core profile unsupported, need 3.3 or later", cfg.GLVersion[0], cfg.GLVersion[1])
	case cfg.SwapInterval < 0:
		return errors.New("negative swap interval")
	case cfg.DeltaPolicy != DeltaRaw && cfg.DeltaPolicy != DeltaClamp:
		return fmt.Errorf("invalid delta policy %s", cfg.DeltaPolicy)
	}
	_, err := snapshotExt(cfg.Snapshot.Format)
	return err
}

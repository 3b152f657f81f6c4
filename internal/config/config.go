// Package config defines the process configuration and its koanf-based
// loading: defaults, optional YAML file, then environment variables.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StaticDir optionally serves a web UI from disk.
	StaticDir string `koanf:"static_dir"`

	// Detector selects the landmark model: pose, holistic, or mock.
	Detector string `koanf:"detector"`

	// TargetFPS caps the render loop rate.
	TargetFPS int `koanf:"target_fps"`

	// Facing is the camera requested at startup: front or back.
	Facing string `koanf:"facing"`

	// FrontDevice and BackDevice map facings to capture device IDs.
	FrontDevice int `koanf:"front_device"`
	BackDevice  int `koanf:"back_device"`

	// FrameWidth and FrameHeight are the resolution hint for the device.
	FrameWidth  int `koanf:"frame_width"`
	FrameHeight int `koanf:"frame_height"`

	// MirrorFront and MirrorBack set the per-facing overlay mirror policy.
	MirrorFront bool `koanf:"mirror_front"`
	MirrorBack  bool `koanf:"mirror_back"`

	// Adaptive enables motion-gated pacing: the loop idles while the
	// scene is static.
	Adaptive bool `koanf:"adaptive"`

	// MotionThreshold is the percentage of changed pixels that counts as
	// motion in adaptive mode.
	MotionThreshold float64 `koanf:"motion_threshold"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8080",
		Detector:        "pose",
		TargetFPS:       30,
		Facing:          "front",
		FrontDevice:     0,
		BackDevice:      1,
		FrameWidth:      640,
		FrameHeight:     480,
		MirrorFront:     true,
		MirrorBack:      false,
		Adaptive:        false,
		MotionThreshold: 1.0,
	}
}

package landmark

import (
	"errors"

	"gocv.io/x/gocv"
)

// ErrNotReady is returned while the underlying model service is still
// loading. Callers skip the current cycle and retry on the next frame.
var ErrNotReady = errors.New("landmark model not ready")

// ErrBadFrame is returned for a frame that cannot be inferred on
// (zero-dimension or stale). Recoverable, skip the cycle.
var ErrBadFrame = errors.New("frame not decodable")

// Detector produces a normalized landmark frame from a video frame.
type Detector interface {
	// Infer analyzes a frame and returns the detected landmark groups.
	// A frame with no groups is a valid result (nothing detected).
	Infer(frame *gocv.Mat) (*Frame, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for landmark detection.
type Config struct {
	// MinConfidence is the minimum detection confidence threshold (0.0-1.0)
	// passed to the model service. Points below it are still returned with
	// their score intact; drawing thresholds apply downstream.
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}

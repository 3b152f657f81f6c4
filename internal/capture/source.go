// Package capture provides facing-aware camera frame acquisition using
// GoCV (OpenCV).
package capture

import (
	"errors"
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// Default capture settings
const (
	DefaultFPS    = 30
	DefaultWidth  = 640
	DefaultHeight = 480
)

// ErrSourceNotOpen is returned when trying to read from a source that has
// not been started.
var ErrSourceNotOpen = errors.New("frame source is not open")

// Facing identifies which physical camera supplies the frame stream.
type Facing int

const (
	FacingFront Facing = iota
	FacingBack
)

// String returns the lowercase name of the facing.
func (f Facing) String() string {
	if f == FacingBack {
		return "back"
	}
	return "front"
}

// Opposite returns the other facing.
func (f Facing) Opposite() Facing {
	if f == FacingFront {
		return FacingBack
	}
	return FacingFront
}

// ParseFacing converts a facing name into a Facing value.
func ParseFacing(s string) (Facing, error) {
	switch s {
	case "front":
		return FacingFront, nil
	case "back":
		return FacingBack, nil
	default:
		return FacingFront, fmt.Errorf("unknown facing %q", s)
	}
}

// AcquisitionError reports that no camera could be acquired for a request.
type AcquisitionError struct {
	Requested Facing
	Err       error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire %s camera: %v", e.Requested, e.Err)
}

func (e *AcquisitionError) Unwrap() error { return e.Err }

// Source defines the interface for frame source implementations. At most
// one acquisition may be active at a time; Stop must release the hardware
// before a new Start.
type Source interface {
	// Start acquires the camera for the requested facing. The facing
	// actually granted may differ when the requested device is missing;
	// Facing reports the authoritative value.
	Start(requested Facing) error
	Stop() error
	ReadFrame() (*gocv.Mat, error)
	// Facing returns the granted facing, falling back to the requested one
	// when the platform cannot say which device it opened.
	Facing() Facing
	IsOpen() bool
	SetFPS(fps int)
	FPS() int
}

// deviceSource acquires frames from a video device chosen by facing.
type deviceSource struct {
	devices   map[Facing]int
	capture   *gocv.VideoCapture
	mu        sync.Mutex
	running   bool
	requested Facing
	granted   Facing
	fps       int
	width     int
	height    int
}

// Config maps each facing to a capture device ID and carries the
// resolution hint passed to the device.
type Config struct {
	FrontDevice int
	BackDevice  int
	Width       int
	Height      int
}

// DefaultSourceConfig maps front to device 0 and back to device 1 at
// 640x480.
func DefaultSourceConfig() Config {
	return Config{
		FrontDevice: 0,
		BackDevice:  1,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
	}
}

// NewSource creates a Source backed by the configured video devices.
func NewSource(cfg Config) Source {
	width := cfg.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := cfg.Height
	if height <= 0 {
		height = DefaultHeight
	}

	return &deviceSource{
		devices: map[Facing]int{
			FacingFront: cfg.FrontDevice,
			FacingBack:  cfg.BackDevice,
		},
		fps:    DefaultFPS,
		width:  width,
		height: height,
	}
}

// Start opens the device mapped to the requested facing. If that device
// cannot be opened it falls back to the opposite facing's device; the
// granted facing then reflects the fallback. A source that is already
// running must be stopped first.
func (s *deviceSource) Start(requested Facing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.New("frame source already started")
	}

	s.requested = requested

	capture, err := gocv.OpenVideoCapture(s.devices[requested])
	if err == nil {
		s.granted = requested
	} else {
		fallback := requested.Opposite()
		capture, err = gocv.OpenVideoCapture(s.devices[fallback])
		if err != nil {
			return &AcquisitionError{Requested: requested, Err: err}
		}
		s.granted = fallback
	}

	capture.Set(gocv.VideoCaptureFrameWidth, float64(s.width))
	capture.Set(gocv.VideoCaptureFrameHeight, float64(s.height))
	capture.Set(gocv.VideoCaptureFPS, float64(s.fps))

	s.capture = capture
	s.running = true

	return nil
}

// Stop closes the device and releases the hardware. Safe to call on a
// source that was never started.
func (s *deviceSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.capture == nil {
		s.running = false
		return nil
	}

	err := s.capture.Close()
	s.capture = nil
	s.running = false

	return err
}

// ReadFrame reads a single frame from the device.
// The caller is responsible for closing the returned Mat.
func (s *deviceSource) ReadFrame() (*gocv.Mat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.capture == nil {
		return nil, ErrSourceNotOpen
	}

	mat := gocv.NewMat()
	if ok := s.capture.Read(&mat); !ok {
		mat.Close()
		return nil, errors.New("failed to read frame from camera")
	}

	if mat.Empty() {
		mat.Close()
		return nil, errors.New("captured frame is empty")
	}

	return &mat, nil
}

// Facing returns the granted facing while running, else the last
// requested facing.
func (s *deviceSource) Facing() Facing {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return s.granted
	}
	return s.requested
}

// SetFPS sets the frames per second hint for capture.
// Values less than or equal to 0 are ignored.
func (s *deviceSource) SetFPS(fps int) {
	if fps <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.fps = fps

	if s.capture != nil {
		s.capture.Set(gocv.VideoCaptureFPS, float64(fps))
	}
}

// FPS returns the current frames per second setting.
func (s *deviceSource) FPS() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fps
}

// IsOpen returns true if the source is currently acquiring.
func (s *deviceSource) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

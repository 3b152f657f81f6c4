// Package overlay draws landmark skeletons onto a 2D pixel surface kept in
// sync with the camera frame resolution.
package overlay

import (
	"image"
	"image/color"
	"sync"

	"gocv.io/x/gocv"
)

// Surface is a 2D drawing target addressed in frame pixel coordinates.
type Surface interface {
	// Size returns the current pixel dimensions.
	Size() (width, height int)

	// Resize sets the pixel dimensions, discarding current content.
	Resize(width, height int)

	// SetBackground installs the frame restored by Clear. Implementations
	// that draw on a detached layer may ignore it.
	SetBackground(frame *gocv.Mat)

	// Clear erases all overlay content.
	Clear()

	// Line draws a stroked line between two points.
	Line(a, b image.Point, c color.RGBA, thickness int)

	// Circle draws a circle; negative thickness fills it.
	Circle(center image.Point, radius int, c color.RGBA, thickness int)
}

// SyncSize resizes the surface to width x height if its dimensions differ.
// It reports whether a resize happened. Cheap to call before every draw.
func SyncSize(s Surface, width, height int) bool {
	w, h := s.Size()
	if w == width && h == height {
		return false
	}
	s.Resize(width, height)
	return true
}

// MatSurface renders onto a gocv Mat composited over the current camera
// frame, suitable for encoding into an MJPEG stream.
type MatSurface struct {
	mu         sync.Mutex
	target     gocv.Mat
	background gocv.Mat
	width      int
	height     int
}

// NewMatSurface creates an empty surface. It owns its Mats; call Close
// when done.
func NewMatSurface(width, height int) *MatSurface {
	s := &MatSurface{
		target:     gocv.NewMat(),
		background: gocv.NewMat(),
	}
	s.Resize(width, height)
	return s
}

func (s *MatSurface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *MatSurface) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width <= 0 || height <= 0 {
		return
	}

	s.target.Close()
	s.target = gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
	s.width = width
	s.height = height
}

// SetBackground copies the frame in as the backdrop restored by Clear.
func (s *MatSurface) SetBackground(frame *gocv.Mat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if frame == nil || frame.Empty() {
		return
	}
	frame.CopyTo(&s.background)
}

// Clear restores the backdrop, or fills with black when none is set.
func (s *MatSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.background.Empty() && s.background.Cols() == s.width && s.background.Rows() == s.height {
		s.background.CopyTo(&s.target)
		return
	}
	s.target.SetTo(gocv.NewScalar(0, 0, 0, 0))
}

func (s *MatSurface) Line(a, b image.Point, c color.RGBA, thickness int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gocv.Line(&s.target, a, b, c, thickness)
}

func (s *MatSurface) Circle(center image.Point, radius int, c color.RGBA, thickness int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gocv.Circle(&s.target, center, radius, c, thickness)
}

// EncodeJPEG returns the current composited surface as JPEG bytes.
func (s *MatSurface) EncodeJPEG() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, err := gocv.IMEncode(".jpg", s.target)
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	data := make([]byte, buf.Len())
	copy(data, buf.GetBytes())
	return data, nil
}

// Close releases the underlying Mats.
func (s *MatSurface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target.Close()
	s.background.Close()
}

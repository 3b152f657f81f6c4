package view

import (
	"sync"

	"github.com/ayusman/poseview/internal/landmark"
)

// Feed holds the latest render outputs for consumers outside the loop:
// the MJPEG stream handler, the landmarks WebSocket hub, and the tray FPS
// readout. Only the most recent value of each is retained.
type Feed struct {
	mu        sync.RWMutex
	jpeg      []byte
	landmarks *landmark.Frame
	fps       int
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{}
}

// SetJPEG stores the latest composited frame.
func (f *Feed) SetJPEG(data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jpeg = data
}

// JPEG returns the latest composited frame, or nil before the first render.
func (f *Feed) JPEG() []byte {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.jpeg
}

// SetLandmarks stores the latest landmark frame.
func (f *Feed) SetLandmarks(lf *landmark.Frame) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.landmarks = lf
}

// Landmarks returns the latest landmark frame, or nil.
func (f *Feed) Landmarks() *landmark.Frame {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.landmarks
}

// SetFPS stores the latest once-per-second frame rate report.
func (f *Feed) SetFPS(fps int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fps = fps
}

// FPS returns the latest frame rate report.
func (f *Feed) FPS() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.fps
}

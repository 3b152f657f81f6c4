package capture

import (
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// MockSource plays back pre-recorded frames for testing. The granted
// facing can be forced to differ from the requested one to simulate a
// platform falling back to another device.
type MockSource struct {
	frames    []*gocv.Mat
	index     int
	loop      bool
	mu        sync.Mutex
	running   bool
	requested Facing
	granted   Facing
	grant     map[Facing]Facing
	startErr  error
	fps       int

	starts int
	stops  int
}

// NewMockSource creates a mock source that replays the given frames.
func NewMockSource(frames []*gocv.Mat, loop bool) *MockSource {
	return &MockSource{
		frames: frames,
		loop:   loop,
		fps:    DefaultFPS,
	}
}

// GrantFacing forces requests for the given facing to be granted another.
func (s *MockSource) GrantFacing(requested, granted Facing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grant == nil {
		s.grant = make(map[Facing]Facing)
	}
	s.grant[requested] = granted
}

// SetStartError makes the next Start calls fail with err.
func (s *MockSource) SetStartError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startErr = err
}

func (s *MockSource) Start(requested Facing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("mock source already started")
	}
	if s.startErr != nil {
		return &AcquisitionError{Requested: requested, Err: s.startErr}
	}

	s.requested = requested
	s.granted = requested
	if g, ok := s.grant[requested]; ok {
		s.granted = g
	}
	s.running = true
	s.index = 0
	s.starts++
	return nil
}

func (s *MockSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.stops++
	}
	s.running = false
	return nil
}

func (s *MockSource) ReadFrame() (*gocv.Mat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil, ErrSourceNotOpen
	}

	if len(s.frames) == 0 {
		return nil, fmt.Errorf("no frames available")
	}

	if s.index >= len(s.frames) {
		if s.loop {
			s.index = 0
		} else {
			return nil, fmt.Errorf("no more frames")
		}
	}

	// Clone so callers can close their copy freely
	frame := s.frames[s.index].Clone()
	s.index++

	return &frame, nil
}

func (s *MockSource) Facing() Facing {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return s.granted
	}
	return s.requested
}

func (s *MockSource) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *MockSource) SetFPS(fps int) {
	if fps <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fps = fps
}

func (s *MockSource) FPS() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fps
}

// Starts reports how many times Start succeeded.
func (s *MockSource) Starts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starts
}

// Stops reports how many times Stop was called on a running source.
func (s *MockSource) Stops() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stops
}

// SetFrames replaces the frame sequence
func (s *MockSource) SetFrames(frames []*gocv.Mat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = frames
	s.index = 0
}

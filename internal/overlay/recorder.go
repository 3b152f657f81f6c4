package overlay

import (
	"image"
	"image/color"
	"sync"

	"gocv.io/x/gocv"
)

// RecordedLine is one Line call captured by a Recorder.
type RecordedLine struct {
	A, B      image.Point
	Color     color.RGBA
	Thickness int
}

// RecordedCircle is one Circle call captured by a Recorder.
type RecordedCircle struct {
	Center    image.Point
	Radius    int
	Color     color.RGBA
	Thickness int
}

// Recorder is a Surface implementation for tests. It records drawing calls
// instead of rasterizing them. Clear drops previously recorded calls, so
// after a Draw the recorder holds exactly that draw's output.
type Recorder struct {
	mu          sync.Mutex
	width       int
	height      int
	clears      int
	backgrounds int
	lines       []RecordedLine
	circles     []RecordedCircle
}

// NewRecorder creates a recorder with the given initial dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *Recorder) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width = width
	r.height = height
}

func (r *Recorder) SetBackground(frame *gocv.Mat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backgrounds++
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
	r.lines = nil
	r.circles = nil
}

func (r *Recorder) Line(a, b image.Point, c color.RGBA, thickness int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, RecordedLine{A: a, B: b, Color: c, Thickness: thickness})
}

func (r *Recorder) Circle(center image.Point, radius int, c color.RGBA, thickness int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.circles = append(r.circles, RecordedCircle{Center: center, Radius: radius, Color: c, Thickness: thickness})
}

// Clears reports how many times the surface was cleared.
func (r *Recorder) Clears() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clears
}

// Lines returns a copy of the recorded line calls since the last Clear.
func (r *Recorder) Lines() []RecordedLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RecordedLine(nil), r.lines...)
}

// Circles returns a copy of the recorded circle calls since the last Clear.
func (r *Recorder) Circles() []RecordedCircle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RecordedCircle(nil), r.circles...)
}

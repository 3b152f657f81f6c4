package landmark

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the inference results.
type MockDetector struct {
	frame *Frame
	err   error
	calls int
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetFrame sets the landmark frame that will be returned by Infer.
func (m *MockDetector) SetFrame(f *Frame) {
	m.frame = f
}

// SetError sets the error that will be returned by Infer.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Calls returns how many times Infer has been invoked.
func (m *MockDetector) Calls() int {
	return m.calls
}

// Infer returns the pre-configured frame or error.
func (m *MockDetector) Infer(frame *gocv.Mat) (*Frame, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.frame == nil {
		return &Frame{}, nil
	}
	return m.frame, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// BodyFixture returns a body group of 17 points laid out as a standing
// figure in a width x height frame, all with the given score.
func BodyFixture(width, height int, score float64) Group {
	w := float64(width)
	h := float64(height)

	// Normalized standing pose, head at the top.
	layout := [NumBodyPoints][2]float64{
		{0.50, 0.10}, // nose
		{0.48, 0.09}, // left_eye
		{0.52, 0.09}, // right_eye
		{0.46, 0.10}, // left_ear
		{0.54, 0.10}, // right_ear
		{0.42, 0.22}, // left_shoulder
		{0.58, 0.22}, // right_shoulder
		{0.38, 0.36}, // left_elbow
		{0.62, 0.36}, // right_elbow
		{0.36, 0.50}, // left_wrist
		{0.64, 0.50}, // right_wrist
		{0.44, 0.52}, // left_hip
		{0.56, 0.52}, // right_hip
		{0.43, 0.70}, // left_knee
		{0.57, 0.70}, // right_knee
		{0.42, 0.90}, // left_ankle
		{0.58, 0.90}, // right_ankle
	}

	points := make([]Point, NumBodyPoints)
	for i, p := range layout {
		points[i] = Point{
			X:     p[0] * w,
			Y:     p[1] * h,
			Score: score,
			Name:  BodyPointName(i),
		}
	}

	return Group{
		Name:        GroupBody,
		Points:      points,
		Connections: BodyConnections,
	}
}

// BodyFrameFixture wraps BodyFixture into a complete landmark frame.
func BodyFrameFixture(width, height int, score float64) *Frame {
	return &Frame{Groups: []Group{BodyFixture(width, height, score)}}
}

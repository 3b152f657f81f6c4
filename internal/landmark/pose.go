package landmark

import (
	"encoding/json"
	"fmt"

	"gocv.io/x/gocv"
)

// PoseDetector detects a single person's 17-point body skeleton using a
// pose estimation model service.
type PoseDetector struct {
	config Config
	svc    *service
}

// NewPoseDetector creates a detector backed by the pose model service.
// The service process is started lazily on the first inference.
func NewPoseDetector(config Config) (*PoseDetector, error) {
	svc, err := newService("pose_service.py")
	if err != nil {
		return nil, err
	}
	return &PoseDetector{config: config, svc: svc}, nil
}

// Infer runs pose estimation on a frame. If the model reports several
// subjects only the first is kept; the result carries at most one body
// group. Point coordinates are scaled to the frame's pixel space.
func (d *PoseDetector) Infer(frame *gocv.Mat) (*Frame, error) {
	line, err := d.svc.process(frame)
	if err != nil {
		return nil, err
	}

	var response struct {
		Poses []struct {
			Points []servicePoint `json:"points"`
		} `json:"poses"`
	}
	if err := json.Unmarshal(line, &response); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	result := &Frame{}
	if len(response.Poses) == 0 {
		return result, nil
	}

	// Single-subject policy: first candidate only.
	points := scalePoints(response.Poses[0].Points, frame.Cols(), frame.Rows())
	for i := range points {
		if points[i].Name == "" {
			points[i].Name = BodyPointName(i)
		}
	}

	result.Groups = append(result.Groups, Group{
		Name:        GroupBody,
		Points:      points,
		Connections: BodyConnections,
	})

	return result, nil
}

// Close shuts down the model service.
func (d *PoseDetector) Close() error {
	return d.svc.close()
}

// servicePoint is the wire shape of one landmark from a model service.
// Coordinates are normalized to [0,1] of the frame.
type servicePoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Score float64 `json:"score"`
	Name  string  `json:"name,omitempty"`
}

// scalePoints converts normalized service coordinates into frame pixel
// coordinates.
func scalePoints(in []servicePoint, width, height int) []Point {
	out := make([]Point, len(in))
	for i, p := range in {
		out[i] = Point{
			X:     p.X * float64(width),
			Y:     p.Y * float64(height),
			Score: p.Score,
			Name:  p.Name,
		}
	}
	return out
}

package landmark

import (
	"encoding/json"
	"fmt"

	"gocv.io/x/gocv"
)

// HolisticDetector detects body, hands, and the face oval contour for a
// single subject using a holistic model service.
type HolisticDetector struct {
	config Config
	svc    *service
}

// NewHolisticDetector creates a detector backed by the holistic model
// service. The service process is started lazily on the first inference.
func NewHolisticDetector(config Config) (*HolisticDetector, error) {
	svc, err := newService("holistic_service.py")
	if err != nil {
		return nil, err
	}
	return &HolisticDetector{config: config, svc: svc}, nil
}

// Infer runs holistic inference on a frame. The service reports each part
// under its own key; missing parts (no hand in view) simply produce no
// group. Point coordinates are scaled to the frame's pixel space.
func (d *HolisticDetector) Infer(frame *gocv.Mat) (*Frame, error) {
	line, err := d.svc.process(frame)
	if err != nil {
		return nil, err
	}

	var response struct {
		Groups map[string][]servicePoint `json:"groups"`
	}
	if err := json.Unmarshal(line, &response); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	result := &Frame{}
	// Iterate in draw order so group order is stable across frames.
	for _, name := range DrawOrder {
		raw, ok := response.Groups[name]
		if !ok || len(raw) == 0 {
			continue
		}
		points := scalePoints(raw, frame.Cols(), frame.Rows())
		if name == GroupBody {
			for i := range points {
				if points[i].Name == "" {
					points[i].Name = BodyPointName(i)
				}
			}
		}
		result.Groups = append(result.Groups, Group{
			Name:        name,
			Points:      points,
			Connections: Connections(name),
		})
	}

	return result, nil
}

// Close shuts down the model service.
func (d *HolisticDetector) Close() error {
	return d.svc.close()
}

// Package landmark defines the normalized landmark representation shared by
// detectors and the overlay renderer, plus the fixed skeleton adjacency
// tables for each group type.
package landmark

// Group names produced by the detectors.
const (
	GroupBody      = "body"
	GroupFace      = "face"
	GroupLeftHand  = "leftHand"
	GroupRightHand = "rightHand"
)

// DrawOrder is the fixed priority order for rendering groups. Later entries
// are drawn on top when groups overlap.
var DrawOrder = []string{GroupBody, GroupFace, GroupLeftHand, GroupRightHand}

// Point is a single scored landmark in frame pixel coordinates.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Score float64 `json:"score"`
	Name  string  `json:"name,omitempty"`
}

// Group is a named set of points together with the skeleton edges that
// connect them. Adjacency is static per group type, never per frame.
type Group struct {
	Name        string   `json:"name"`
	Points      []Point  `json:"points"`
	Connections [][2]int `json:"-"`
}

// Frame is the complete inference result for one video frame. A missing
// group means nothing is drawn for that group this frame.
type Frame struct {
	Groups []Group `json:"groups"`
}

// Group returns the group with the given name, or nil if absent.
func (f *Frame) Group(name string) *Group {
	if f == nil {
		return nil
	}
	for i := range f.Groups {
		if f.Groups[i].Name == name {
			return &f.Groups[i]
		}
	}
	return nil
}

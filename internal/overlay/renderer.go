package overlay

import (
	"image"
	"image/color"
	"math"

	"github.com/ayusman/poseview/internal/landmark"
)

// DefaultThreshold is the visibility score a point must strictly exceed to
// be drawn.
const DefaultThreshold = 0.35

// Reference width the stroke and marker sizes are tuned for; drawing is
// scaled proportionally at other resolutions.
const referenceWidth = 640

// Style fixes the appearance of one landmark group.
type Style struct {
	Color     color.RGBA
	Threshold float64
}

// markerOutline is the thin contrast ring around point markers.
var markerOutline = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// DefaultStyles returns the fixed per-group styling.
func DefaultStyles() map[string]Style {
	return map[string]Style{
		landmark.GroupBody:      {Color: color.RGBA{R: 0, G: 220, B: 90, A: 255}, Threshold: DefaultThreshold},
		landmark.GroupFace:      {Color: color.RGBA{R: 240, G: 200, B: 0, A: 255}, Threshold: DefaultThreshold},
		landmark.GroupLeftHand:  {Color: color.RGBA{R: 230, G: 60, B: 60, A: 255}, Threshold: DefaultThreshold},
		landmark.GroupRightHand: {Color: color.RGBA{R: 60, G: 120, B: 230, A: 255}, Threshold: DefaultThreshold},
	}
}

// Renderer draws landmark frames onto a surface in a fixed group priority
// order. It never mutates the landmark frame; mirroring is applied per
// point at draw time and cannot leak between calls.
type Renderer struct {
	styles map[string]Style
	order  []string
}

// NewRenderer creates a Renderer with the default styles and draw order.
func NewRenderer() *Renderer {
	return &Renderer{
		styles: DefaultStyles(),
		order:  landmark.DrawOrder,
	}
}

// SetStyle overrides the style for one group.
func (r *Renderer) SetStyle(group string, s Style) {
	r.styles[group] = s
}

// Draw clears the surface and renders every group of the landmark frame.
// When mirror is set, x coordinates are flipped about the vertical center
// of the canvas for this call only.
func (r *Renderer) Draw(s Surface, lf *landmark.Frame, mirror bool) {
	s.Clear()

	if lf == nil {
		return
	}

	width, _ := s.Size()
	thickness := scaled(width, 2, 1)
	radius := scaled(width, 4, 2)

	// Fixed priority order: later groups sit on top.
	for _, name := range r.order {
		if g := lf.Group(name); g != nil {
			r.drawGroup(s, g, mirror, width, thickness, radius)
		}
	}

	// Groups outside the known order are drawn last with default styling.
	for i := range lf.Groups {
		if !r.inOrder(lf.Groups[i].Name) {
			r.drawGroup(s, &lf.Groups[i], mirror, width, thickness, radius)
		}
	}
}

func (r *Renderer) inOrder(name string) bool {
	for _, n := range r.order {
		if n == name {
			return true
		}
	}
	return false
}

func (r *Renderer) drawGroup(s Surface, g *landmark.Group, mirror bool, width, thickness, radius int) {
	style, ok := r.styles[g.Name]
	if !ok {
		style = Style{Color: color.RGBA{R: 200, G: 200, B: 200, A: 255}, Threshold: DefaultThreshold}
	}

	// Edges first so markers sit on top of their own lines.
	for _, edge := range g.Connections {
		i, j := edge[0], edge[1]
		if i < 0 || j < 0 || i >= len(g.Points) || j >= len(g.Points) {
			continue
		}
		a, b := g.Points[i], g.Points[j]
		if a.Score <= style.Threshold || b.Score <= style.Threshold {
			continue
		}
		s.Line(project(a, mirror, width), project(b, mirror, width), style.Color, thickness)
	}

	for _, p := range g.Points {
		if p.Score <= style.Threshold {
			continue
		}
		center := project(p, mirror, width)
		s.Circle(center, radius, style.Color, -1)
		s.Circle(center, radius, markerOutline, 1)
	}
}

// project converts a landmark point into canvas coordinates, applying the
// horizontal flip when mirroring.
func project(p landmark.Point, mirror bool, width int) image.Point {
	x := int(math.Round(p.X))
	if mirror {
		x = width - 1 - x
	}
	return image.Pt(x, int(math.Round(p.Y)))
}

// scaled sizes a stroke proportionally to the canvas width with a floor.
func scaled(width, base, min int) int {
	v := int(math.Round(float64(base) * float64(width) / referenceWidth))
	if v < min {
		return min
	}
	return v
}

// Package testdata provides synthetic video frames for tests.
package testdata

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// SyntheticFrame returns a solid mid-gray frame of the given size.
// The caller is responsible for closing the returned Mat.
func SyntheticFrame(width, height int) *gocv.Mat {
	mat := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(96, 96, 96, 0),
		height, width, gocv.MatTypeCV8UC3,
	)
	return &mat
}

// FigureFrame returns a frame with a rough bright figure on a dark
// background, useful for exercising motion detection and encoding paths.
// The caller is responsible for closing the returned Mat.
func FigureFrame(width, height int) *gocv.Mat {
	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)

	bright := color.RGBA{R: 220, G: 220, B: 220}
	// Head
	gocv.Circle(&mat, image.Pt(width/2, height/6), height/12, bright, -1)
	// Torso
	gocv.Rectangle(&mat, image.Rect(width*2/5, height/4, width*3/5, height*3/5), bright, -1)
	// Legs
	gocv.Line(&mat, image.Pt(width*2/5, height*3/5), image.Pt(width/3, height-10), bright, 4)
	gocv.Line(&mat, image.Pt(width*3/5, height*3/5), image.Pt(width*2/3, height-10), bright, 4)

	return &mat
}

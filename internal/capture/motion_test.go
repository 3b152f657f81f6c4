package capture

import (
	"image"
	"image/color"
	"testing"

	"gocv.io/x/gocv"
)

func solidFrame(t *testing.T, c color.RGBA) *gocv.Mat {
	t.Helper()

	mat := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), 0),
		240, 320, gocv.MatTypeCV8UC3,
	)
	t.Cleanup(func() { mat.Close() })
	return &mat
}

func TestMotionGate_FirstFramePrimes(t *testing.T) {
	gate := NewMotionGate(1.0)
	defer gate.Close()

	frame := solidFrame(t, color.RGBA{R: 128, G: 128, B: 128})

	moved, changed := gate.Detect(frame)
	if moved {
		t.Error("first frame should never report motion")
	}
	if changed != 0 {
		t.Errorf("first frame changed = %v, want 0", changed)
	}
}

func TestMotionGate_StaticScene(t *testing.T) {
	gate := NewMotionGate(1.0)
	defer gate.Close()

	frame := solidFrame(t, color.RGBA{R: 128, G: 128, B: 128})

	gate.Detect(frame)
	moved, changed := gate.Detect(frame)

	if moved {
		t.Errorf("identical frames reported motion (changed = %v)", changed)
	}
}

func TestMotionGate_SceneChange(t *testing.T) {
	gate := NewMotionGate(1.0)
	defer gate.Close()

	dark := solidFrame(t, color.RGBA{})
	bright := solidFrame(t, color.RGBA{R: 255, G: 255, B: 255})

	gate.Detect(dark)
	moved, changed := gate.Detect(bright)

	if !moved {
		t.Errorf("full-frame change not detected (changed = %v)", changed)
	}
	if changed < 99 {
		t.Errorf("changed = %v, want ~100 for a full-frame flip", changed)
	}
}

func TestMotionGate_PartialChange(t *testing.T) {
	gate := NewMotionGate(50.0)
	defer gate.Close()

	base := solidFrame(t, color.RGBA{})

	moving := gocv.NewMatWithSize(240, 320, gocv.MatTypeCV8UC3)
	defer moving.Close()
	gocv.Rectangle(&moving, image.Rect(0, 0, 80, 60), color.RGBA{R: 255, G: 255, B: 255}, -1)

	gate.Detect(base)
	moved, changed := gate.Detect(&moving)

	// A 80x60 patch in a 320x240 frame is ~6% of pixels, below the 50% gate
	if moved {
		t.Errorf("small patch tripped a 50%% gate (changed = %v)", changed)
	}
	if changed <= 0 {
		t.Error("partial change should report a non-zero percentage")
	}
}

func TestMotionGate_Reset(t *testing.T) {
	gate := NewMotionGate(1.0)
	defer gate.Close()

	dark := solidFrame(t, color.RGBA{})
	bright := solidFrame(t, color.RGBA{R: 255, G: 255, B: 255})

	gate.Detect(dark)
	gate.Reset()

	// After reset the bright frame primes a new baseline, no motion
	if moved, _ := gate.Detect(bright); moved {
		t.Error("frame after Reset should prime, not report motion")
	}
}

func TestMotionGate_NilAndEmptyFrames(t *testing.T) {
	gate := NewMotionGate(1.0)
	defer gate.Close()

	if moved, _ := gate.Detect(nil); moved {
		t.Error("nil frame should not report motion")
	}

	empty := gocv.NewMat()
	defer empty.Close()
	if moved, _ := gate.Detect(&empty); moved {
		t.Error("empty frame should not report motion")
	}
}

package capture

import (
	"image"
	"sync"

	"gocv.io/x/gocv"
)

const (
	// blurKernel is the Gaussian kernel size used for noise reduction.
	blurKernel = 21
	// diffThreshold is the binary threshold for per-pixel change detection.
	diffThreshold = 25
)

// MotionGate detects motion between consecutive frames by blurred frame
// differencing. The render loop uses it, when adaptive pacing is enabled,
// to drop to an idle frame rate while the scene is static.
type MotionGate struct {
	threshold float64
	baseline  gocv.Mat
	primed    bool
	mu        sync.Mutex
}

// NewMotionGate creates a gate that reports motion when more than
// threshold percent of pixels changed since the previous frame.
func NewMotionGate(threshold float64) *MotionGate {
	return &MotionGate{
		threshold: threshold,
		baseline:  gocv.NewMat(),
	}
}

// Detect compares a frame against the previous one and reports whether
// motion was seen along with the percentage of changed pixels. The first
// frame primes the baseline and never reports motion.
func (g *MotionGate) Detect(frame *gocv.Mat) (bool, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if frame == nil || frame.Empty() {
		return false, 0
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Pt(blurKernel, blurKernel), 0, 0, gocv.BorderDefault)

	if !g.primed {
		blurred.CopyTo(&g.baseline)
		g.primed = true
		return false, 0
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(blurred, g.baseline, &diff)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(diff, &mask, diffThreshold, 255, gocv.ThresholdBinary)

	changed := float64(gocv.CountNonZero(mask)) / float64(mask.Rows()*mask.Cols()) * 100.0

	blurred.CopyTo(&g.baseline)

	return changed > g.threshold, changed
}

// Reset drops the baseline so the next frame primes it again. Called after
// a camera switch so the old scene does not register as motion.
func (g *MotionGate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.baseline.Empty() {
		g.baseline.Close()
		g.baseline = gocv.NewMat()
	}
	g.primed = false
}

// Close releases the baseline Mat.
func (g *MotionGate) Close() {
	g.Reset()
}

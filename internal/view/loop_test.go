package view

import (
	"context"
	"testing"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/poseview/internal/capture"
	"github.com/ayusman/poseview/internal/control"
	"github.com/ayusman/poseview/internal/landmark"
	"github.com/ayusman/poseview/internal/metrics"
	"github.com/ayusman/poseview/internal/overlay"
)

func testSource(t *testing.T) *capture.MockSource {
	t.Helper()

	mat := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { mat.Close() })

	return capture.NewMockSource([]*gocv.Mat{&mat}, true)
}

type loopFixture struct {
	controller *control.Controller
	source     *capture.MockSource
	detector   *landmark.MockDetector
	surface    *overlay.Recorder
	feed       *Feed
	loop       *Loop
}

func newLoopFixture(t *testing.T) *loopFixture {
	t.Helper()

	src := testSource(t)
	ctl := control.NewController(src, control.DefaultMirrorPolicy(), capture.FacingBack)
	if err := ctl.Start(); err != nil {
		t.Fatalf("controller start: %v", err)
	}
	t.Cleanup(func() { ctl.Stop() })

	det := landmark.NewMockDetector()
	det.SetFrame(landmark.BodyFrameFixture(640, 480, 0.9))

	f := &loopFixture{
		controller: ctl,
		source:     src,
		detector:   det,
		surface:    overlay.NewRecorder(0, 0),
		feed:       NewFeed(),
	}
	f.loop = New(Config{
		Camera:   ctl,
		Detector: det,
		Renderer: overlay.NewRenderer(),
		Surface:  f.surface,
		Feed:     f.feed,
		Metrics:  metrics.New(),
		Snapshot: func() ([]byte, error) { return []byte("jpeg"), nil },
	})
	return f
}

func TestLoop_StepRendersFrame(t *testing.T) {
	f := newLoopFixture(t)

	f.loop.Step()

	// Canvas sized to the frame before drawing
	if w, h := f.surface.Size(); w != 640 || h != 480 {
		t.Errorf("surface size = %dx%d, want 640x480", w, h)
	}
	if got, want := len(f.surface.Lines()), len(landmark.BodyConnections); got != want {
		t.Errorf("drew %d lines, want %d", got, want)
	}
	if f.feed.Landmarks() == nil {
		t.Error("feed should carry the latest landmark frame")
	}
	if string(f.feed.JPEG()) != "jpeg" {
		t.Error("feed should carry the latest snapshot")
	}
	if f.loop.meter.Count() != 1 {
		t.Errorf("meter count = %d, want 1", f.loop.meter.Count())
	}
}

func TestLoop_BackFacingNotMirrored(t *testing.T) {
	f := newLoopFixture(t)

	f.loop.Step()

	// Fixture nose sits at x=320 in a 640px frame; with the default back
	// policy nothing is flipped.
	circles := f.surface.Circles()
	if len(circles) == 0 {
		t.Fatal("no markers drawn")
	}
	if circles[0].Center.X != 320 {
		t.Errorf("nose marker at x=%d, want 320 (unmirrored)", circles[0].Center.X)
	}
}

func TestLoop_MirrorsAfterSwitchToFront(t *testing.T) {
	f := newLoopFixture(t)

	if err := f.controller.Switch(); err != nil {
		t.Fatalf("Switch() error = %v", err)
	}

	f.loop.Step()

	// x=320 flips to 639-320 on the mirrored front camera
	circles := f.surface.Circles()
	if len(circles) == 0 {
		t.Fatal("no markers drawn")
	}
	if circles[0].Center.X != 319 {
		t.Errorf("nose marker at x=%d, want 319 (mirrored)", circles[0].Center.X)
	}
}

func TestLoop_SurvivesInferenceError(t *testing.T) {
	f := newLoopFixture(t)

	f.detector.SetError(landmark.ErrNotReady)
	f.loop.Step()

	// Overlay cleared, nothing drawn, loop not crashed
	if len(f.surface.Lines()) != 0 {
		t.Error("failed inference should leave a cleared overlay")
	}
	if f.surface.Clears() == 0 {
		t.Error("failed inference should clear the canvas")
	}

	// Next iteration proceeds normally
	f.detector.SetError(nil)
	f.loop.Step()

	if len(f.surface.Lines()) == 0 {
		t.Error("iteration after a failed one should draw again")
	}
	if f.detector.Calls() != 2 {
		t.Errorf("detector calls = %d, want 2", f.detector.Calls())
	}
}

func TestLoop_SkipsWhenSourceNotOpen(t *testing.T) {
	f := newLoopFixture(t)
	f.controller.Stop()

	f.loop.Step()

	if f.detector.Calls() != 0 {
		t.Error("no inference should run without an open source")
	}
	if f.surface.Clears() != 0 {
		t.Error("nothing should be drawn without a ready frame")
	}
}

func TestLoop_SkipsWhenReadFails(t *testing.T) {
	f := newLoopFixture(t)
	f.source.SetFrames(nil)

	f.loop.Step()

	if f.detector.Calls() != 0 {
		t.Error("no inference should run when the frame read fails")
	}
}

func TestLoop_RunStopsOnCancel(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.cfg.TargetFPS = 100

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.loop.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after context cancellation")
	}

	if f.detector.Calls() == 0 {
		t.Error("loop never ran an iteration")
	}
}

func TestLoop_ReportsFPSToFeed(t *testing.T) {
	f := newLoopFixture(t)

	// Drive the meter's window manually through its report callback
	for i := 0; i < 5; i++ {
		f.loop.Step()
	}
	if f.loop.meter.Count() != 5 {
		t.Errorf("meter count = %d, want 5", f.loop.meter.Count())
	}
}

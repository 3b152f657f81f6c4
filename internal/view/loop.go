// Package view runs the per-frame render loop: pull a frame, infer
// landmarks, draw the overlay, account for FPS.
package view

import (
	"context"
	"errors"
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/poseview/internal/capture"
	"github.com/ayusman/poseview/internal/landmark"
	"github.com/ayusman/poseview/internal/metrics"
	"github.com/ayusman/poseview/internal/overlay"
)

// Pacing constants for the adaptive (motion-gated) mode.
const (
	// IdleFPS is the frame rate while the scene is static.
	IdleFPS = 5
	// idleTimeout is how long after the last motion the loop drops to idle.
	idleTimeout = 2 * time.Second
)

// CameraState supplies the active frame source and mirror flag for each
// iteration. Implemented by control.Controller.
type CameraState interface {
	Current() (capture.Source, bool)
}

// Config wires the loop's collaborators.
type Config struct {
	Camera   CameraState
	Detector landmark.Detector
	Renderer *overlay.Renderer
	Surface  overlay.Surface
	Feed     *Feed
	Metrics  *metrics.Metrics

	// TargetFPS caps the iteration rate. Defaults to 30.
	TargetFPS int

	// Snapshot encodes the composited surface for the feed after a draw.
	// Nil disables frame publishing.
	Snapshot func() ([]byte, error)

	// Gate enables motion-gated pacing when non-nil: while the scene is
	// static the loop idles at IdleFPS and skips inference.
	Gate *capture.MotionGate
}

// Loop is the continuously rescheduled render task. It has no terminal
// state in normal operation; cancel the context to stop it.
type Loop struct {
	cfg        Config
	meter      *Meter
	active     bool
	lastMotion time.Time
}

// New creates a render loop. The FPS meter feeds the Feed and the FPS
// gauge once per second.
func New(cfg Config) *Loop {
	if cfg.TargetFPS <= 0 {
		cfg.TargetFPS = 30
	}

	l := &Loop{cfg: cfg, active: true}
	l.meter = NewMeter(func(fps int) {
		if cfg.Feed != nil {
			cfg.Feed.SetFPS(fps)
		}
		if cfg.Metrics != nil {
			cfg.Metrics.FPS.Set(float64(fps))
		}
	})
	return l
}

// Run drives iterations at the target rate until the context is
// cancelled. Each iteration fully completes (inference awaited, good or
// bad) before the next is scheduled, so inference concurrency is bounded
// to one.
func (l *Loop) Run(ctx context.Context) {
	interval := time.Second / time.Duration(l.cfg.TargetFPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			wasActive := l.active
			l.Step()
			if l.cfg.Gate != nil && l.active != wasActive {
				if l.active {
					ticker.Reset(time.Second / time.Duration(l.cfg.TargetFPS))
					log.Println("Render loop switched to active mode")
				} else {
					ticker.Reset(time.Second / time.Duration(IdleFPS))
					log.Println("Render loop switched to idle mode")
				}
			}
		}
	}
}

// Step runs one iteration: read, infer, draw, publish. Every failure
// path returns without error, so the loop's rescheduling survives any
// collaborator fault. Run calls this at the target rate.
func (l *Loop) Step() {
	source, mirror := l.cfg.Camera.Current()
	if source == nil || !source.IsOpen() {
		// No ready frame source; reschedule without drawing.
		return
	}

	frame, err := source.ReadFrame()
	if err != nil {
		return
	}
	defer frame.Close()

	overlay.SyncSize(l.cfg.Surface, frame.Cols(), frame.Rows())
	l.cfg.Surface.SetBackground(frame)

	if l.cfg.Gate != nil && !l.gateAllows(frame) {
		// Idle: show the plain feed with a cleared overlay.
		l.cfg.Surface.Clear()
		l.publish()
		l.finish()
		return
	}

	lf, err := l.cfg.Detector.Infer(frame)
	if err != nil {
		if l.cfg.Metrics != nil {
			l.cfg.Metrics.InferenceErrors.Inc()
		}
		if !errors.Is(err, landmark.ErrNotReady) && !errors.Is(err, landmark.ErrBadFrame) {
			log.Printf("Error inferring landmarks: %v", err)
		}
		// Recoverable: clear the overlay and retry next cycle.
		l.cfg.Surface.Clear()
		l.publish()
		return
	}

	l.cfg.Renderer.Draw(l.cfg.Surface, lf, mirror)

	if l.cfg.Feed != nil {
		l.cfg.Feed.SetLandmarks(lf)
	}
	l.publish()
	l.finish()
}

// gateAllows tracks motion and reports whether inference should run this
// iteration. After idleTimeout with no motion the loop goes idle until the
// scene moves again.
func (l *Loop) gateAllows(frame *gocv.Mat) bool {
	moved, _ := l.cfg.Gate.Detect(frame)
	if moved {
		l.lastMotion = time.Now()
		l.active = true
		return true
	}
	if l.active && time.Since(l.lastMotion) > idleTimeout {
		l.active = false
	}
	return l.active
}

func (l *Loop) publish() {
	if l.cfg.Snapshot == nil || l.cfg.Feed == nil {
		return
	}
	if data, err := l.cfg.Snapshot(); err == nil {
		l.cfg.Feed.SetJPEG(data)
	}
}

func (l *Loop) finish() {
	if l.cfg.Metrics != nil {
		l.cfg.Metrics.FramesRendered.Inc()
	}
	l.meter.Tick()
}

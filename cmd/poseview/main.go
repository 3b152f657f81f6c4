package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ayusman/poseview/internal/capture"
	"github.com/ayusman/poseview/internal/config"
	"github.com/ayusman/poseview/internal/control"
	"github.com/ayusman/poseview/internal/landmark"
	"github.com/ayusman/poseview/internal/metrics"
	"github.com/ayusman/poseview/internal/overlay"
	"github.com/ayusman/poseview/internal/server"
	"github.com/ayusman/poseview/internal/tray"
	"github.com/ayusman/poseview/internal/view"
)

func main() {
	fmt.Println("Poseview - Landmark Overlay Viewer")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	facing, err := capture.ParseFacing(cfg.Facing)
	if err != nil {
		log.Fatalf("Invalid facing: %v", err)
	}

	m := metrics.New()

	source := capture.NewSource(capture.Config{
		FrontDevice: cfg.FrontDevice,
		BackDevice:  cfg.BackDevice,
		Width:       cfg.FrameWidth,
		Height:      cfg.FrameHeight,
	})
	source.SetFPS(cfg.TargetFPS)

	controller := control.NewController(source, control.MirrorPolicy{
		Front: cfg.MirrorFront,
		Back:  cfg.MirrorBack,
	}, facing)

	detector := newDetector(cfg)
	defer detector.Close()

	surface := overlay.NewMatSurface(cfg.FrameWidth, cfg.FrameHeight)
	defer surface.Close()

	feed := view.NewFeed()

	var gate *capture.MotionGate
	if cfg.Adaptive {
		gate = capture.NewMotionGate(cfg.MotionThreshold)
		defer gate.Close()
	}

	loop := view.New(view.Config{
		Camera:    controller,
		Detector:  detector,
		Renderer:  overlay.NewRenderer(),
		Surface:   surface,
		Feed:      feed,
		Metrics:   m,
		TargetFPS: cfg.TargetFPS,
		Snapshot:  surface.EncodeJPEG,
		Gate:      gate,
	})

	// A failed acquisition is fatal to camera function but not to the
	// process: the loop keeps rescheduling and the user retries a switch.
	if err := controller.Start(); err != nil {
		log.Printf("Camera unavailable: %v", err)
	}
	defer controller.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = findWebDir()
	}
	if staticDir != "" {
		fmt.Printf("Serving static files from: %s\n", staticDir)
	}

	srv := server.New(server.Config{
		StaticDir:  staticDir,
		Controller: controller,
		Feed:       feed,
		Metrics:    m,
	})

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.Addr)
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	t := tray.New(controller.Mirror())
	t.OnSwitch(func() {
		if err := controller.Switch(); err != nil {
			log.Printf("Camera switch failed: %v", err)
			return
		}
		m.CameraSwitches.Inc()
		t.SetMirrored(controller.Mirror())
		if gate != nil {
			gate.Reset()
		}
	})
	t.OnMirror(func(mirrored bool) {
		controller.SetMirror(controller.Facing(), mirrored)
	})
	t.OnQuit(cancel)

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.SetFPS(feed.FPS())
			}
		}
	}()

	// Blocks until the quit menu item is clicked.
	t.Run()
}

// newDetector builds the configured landmark detector, falling back to
// the mock when the model service is unavailable.
func newDetector(cfg *config.Config) landmark.Detector {
	var (
		d   landmark.Detector
		err error
	)

	switch cfg.Detector {
	case "holistic":
		d, err = landmark.NewHolisticDetector(landmark.DefaultConfig())
	case "mock":
		return landmark.NewMockDetector()
	default:
		d, err = landmark.NewPoseDetector(landmark.DefaultConfig())
	}

	if err != nil {
		log.Printf("Landmark service not available (%v), using mock detector", err)
		return landmark.NewMockDetector()
	}

	log.Printf("Using %s landmark detection", cfg.Detector)
	return d
}

// findWebDir searches for the web directory in common locations.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".poseview", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	c := New()

	if c.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", c.Addr)
	}
	if c.Detector != "pose" {
		t.Errorf("Detector = %q, want pose", c.Detector)
	}
	if c.TargetFPS != 30 {
		t.Errorf("TargetFPS = %d, want 30", c.TargetFPS)
	}
	if !c.MirrorFront {
		t.Error("front should be mirrored by default")
	}
	if c.MirrorBack {
		t.Error("back should not be mirrored by default")
	}
	if c.Adaptive {
		t.Error("adaptive pacing should be off by default")
	}
}

func TestLoad_DefaultsOnly(t *testing.T) {
	t.Setenv("POSEVIEW_CONFIG", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Addr != ":8080" || c.Facing != "front" {
		t.Errorf("Load() without overrides = %+v, want defaults", c)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POSEVIEW_CONFIG", "")
	t.Setenv("POSEVIEW_ADDR", ":9090")
	t.Setenv("POSEVIEW_DETECTOR", "holistic")
	t.Setenv("POSEVIEW_FACING", "back")
	t.Setenv("POSEVIEW_TARGET_FPS", "15")
	t.Setenv("POSEVIEW_MIRROR_BACK", "true")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", c.Addr)
	}
	if c.Detector != "holistic" {
		t.Errorf("Detector = %q, want holistic", c.Detector)
	}
	if c.Facing != "back" {
		t.Errorf("Facing = %q, want back", c.Facing)
	}
	if c.TargetFPS != 15 {
		t.Errorf("TargetFPS = %d, want 15", c.TargetFPS)
	}
	if !c.MirrorBack {
		t.Error("MirrorBack should be overridden to true")
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poseview.yaml")
	body := "addr: \":7000\"\ndetector: mock\ntarget_fps: 10\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("POSEVIEW_CONFIG", path)
	t.Setenv("POSEVIEW_ADDR", ":7001") // env wins over file

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Addr != ":7001" {
		t.Errorf("Addr = %q, want :7001 (env over file)", c.Addr)
	}
	if c.Detector != "mock" {
		t.Errorf("Detector = %q, want mock (from file)", c.Detector)
	}
	if c.TargetFPS != 10 {
		t.Errorf("TargetFPS = %d, want 10 (from file)", c.TargetFPS)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad detector", "POSEVIEW_DETECTOR", "yolo"},
		{"bad facing", "POSEVIEW_FACING", "sideways"},
		{"zero fps", "POSEVIEW_TARGET_FPS", "0"},
		{"negative motion threshold", "POSEVIEW_MOTION_THRESHOLD", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("POSEVIEW_CONFIG", "")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s should fail", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("POSEVIEW_CONFIG", "/nonexistent/poseview.yaml")

	if _, err := Load(); err == nil {
		t.Error("Load() with a missing config file should fail")
	}
}

package main

import (
	"bytes"
	"context"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"random scene", "random", false},
		{"checker scene", "checker", false},
		{"light scene", "light", false},
		{"smoke scene", "smoke", false},
		{"spheregrid scene", "spheregrid", false},

		{"unknown scene", "nonexistent", true},
		{"removed scene", "cornell", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, 42)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.CameraConfig.Width <= 0 {
				t.Errorf("Scene camera width should be positive, got %d", scene.CameraConfig.Width)
			}
			if scene.SamplingConfig.SamplesPerPixel <= 0 || scene.SamplingConfig.MaxDepth <= 0 {
				t.Errorf("Scene sampling config should be positive, got %+v", scene.SamplingConfig)
			}
			if scene.GetPrimitiveCount() == 0 {
				t.Error("Scene should contain objects")
			}
		})
	}
}

func TestNewRaytracer_Overrides(t *testing.T) {
	sceneObj, err := createScene("default", 42)
	if err != nil {
		t.Fatal(err)
	}

	_, width, height := newRaytracer(sceneObj, renderOptions{Width: 32}, nil)
	if width != 32 || height != 18 {
		t.Errorf("Expected 32x18, got %dx%d", width, height)
	}

	_, width, height = newRaytracer(sceneObj, renderOptions{}, nil)
	if width != 400 || height != 225 {
		t.Errorf("Expected scene default 400x225, got %dx%d", width, height)
	}
}

func TestRun_WritesRenderAndThumbnail(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer

	opts := renderOptions{
		Scene:     "checker",
		Samples:   1,
		Depth:     2,
		Width:     32,
		Seed:      1,
		OutputDir: dir,
		Thumbnail: 8,
	}
	if err := run(context.Background(), opts, log.New(&logs, "", 0)); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	renders, err := filepath.Glob(filepath.Join(dir, "checker", "render_*.png"))
	if err != nil {
		t.Fatal(err)
	}
	var mainRender, thumb string
	for _, r := range renders {
		if strings.HasSuffix(r, "_thumb.png") {
			thumb = r
		} else {
			mainRender = r
		}
	}
	if mainRender == "" || thumb == "" {
		t.Fatalf("Expected a render and a thumbnail, found %v", renders)
	}

	img, err := imaging.Open(mainRender)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 18 {
		t.Errorf("Expected 32x18 render, got %dx%d", b.Dx(), b.Dy())
	}

	small, err := imaging.Open(thumb)
	if err != nil {
		t.Fatal(err)
	}
	if b := small.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("Expected 8x4 thumbnail, got %dx%d", b.Dx(), b.Dy())
	}

	if !strings.Contains(logs.String(), "Render saved as") {
		t.Errorf("Expected save message in logs, got:\n%s", logs.String())
	}
}

func TestRun_Errors(t *testing.T) {
	logger := log.New(&bytes.Buffer{}, "", 0)

	if err := run(context.Background(), renderOptions{Scene: "nope", OutputDir: t.TempDir()}, logger); err == nil {
		t.Error("Expected an error for an unknown scene")
	}

	t.Setenv("S3_BUCKET", "")
	opts := renderOptions{Scene: "default", Width: 16, Samples: 1, OutputDir: t.TempDir(), Upload: true}
	if err := run(context.Background(), opts, logger); err == nil {
		t.Error("Expected an error when upload is requested without a bucket")
	}
}

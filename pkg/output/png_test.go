package output

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func testImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func TestSavePNG_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "default", "render.png")

	if err := SavePNG(path, testImage(8, 4)); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	loaded, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen saved image: %v", err)
	}
	if b := loaded.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("Expected 8x4 image, got %dx%d", b.Dx(), b.Dy())
	}

	r, g, b, _ := loaded.At(3, 2).RGBA()
	if r>>8 != 3 || g>>8 != 2 || b>>8 != 128 {
		t.Errorf("Pixel (3,2) not preserved: got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(testImage(2, 2))
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	signature := "\x89PNG\r\n\x1a\n"
	if len(data) < len(signature) || string(data[:len(signature)]) != signature {
		t.Error("Encoded data does not start with the PNG signature")
	}
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		maxSize        int
		expectedWidth  int
		expectedHeight int
	}{
		{"landscape", 400, 225, 100, 100, 56},
		{"portrait", 50, 200, 100, 25, 100},
		{"already small", 64, 36, 100, 64, 36},
		{"disabled", 400, 225, 0, 400, 225},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thumb := Thumbnail(testImage(tt.width, tt.height), tt.maxSize)
			b := thumb.Bounds()
			if b.Dx() != tt.expectedWidth || b.Dy() != tt.expectedHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight, b.Dx(), b.Dy())
			}
		})
	}
}

func TestRenderPaths(t *testing.T) {
	path := RenderPath("output", "smoke", "20240101_120000")
	expected := filepath.Join("output", "smoke", "render_20240101_120000.png")
	if path != expected {
		t.Errorf("Expected %s, got %s", expected, path)
	}

	thumb := ThumbnailPath(path)
	expectedThumb := filepath.Join("output", "smoke", "render_20240101_120000_thumb.png")
	if thumb != expectedThumb {
		t.Errorf("Expected %s, got %s", expectedThumb, thumb)
	}
}

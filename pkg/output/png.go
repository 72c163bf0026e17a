package output

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// SavePNG writes img to path, creating parent directories as needed
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// EncodePNG returns img encoded as PNG bytes
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// Thumbnail scales img down so neither side exceeds maxSize, keeping the
// aspect ratio. Images already within bounds are returned unchanged.
func Thumbnail(img image.Image, maxSize int) image.Image {
	if maxSize <= 0 {
		return img
	}
	return resize.Thumbnail(uint(maxSize), uint(maxSize), img, resize.Lanczos3)
}

// RenderPath returns the timestamped file path for a render of the named scene
func RenderPath(dir, sceneName, timestamp string) string {
	return filepath.Join(dir, sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// ThumbnailPath returns the path used for the thumbnail next to a render
func ThumbnailPath(renderPath string) string {
	ext := filepath.Ext(renderPath)
	return renderPath[:len(renderPath)-len(ext)] + "_thumb" + ext
}

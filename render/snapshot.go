package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/hajimehoshi/ebiten/v2"
)

// CaptureFrame copies the pixels of a rendered frame.
func CaptureFrame(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	return img
}

// WriteSnapshot encodes img as lossless WebP at path, creating parent
// directories as needed.
func WriteSnapshot(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: snapshot dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create snapshot %s: %w", path, err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: encode snapshot %s: %w", path, err)
	}
	return f.Close()
}

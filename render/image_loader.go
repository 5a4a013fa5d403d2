package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "github.com/ftrvxmtrx/tga"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// MaxTextureSide bounds the longer side of a decoded slide. Larger sources
// are scaled down before they reach the GPU.
const MaxTextureSide = 2560

// LoadImage loads an image from disk and caches it by key.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	src, err := DecodeFile(key)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	RegisterImage(key, img)
	return img, nil
}

// DecodeFile reads and decodes an image, trying the path as given, under
// assets/, and by base name. The result is prescaled to MaxTextureSide.
func DecodeFile(path string) (image.Image, error) {
	tried := []string{path, filepath.Join("assets", path), filepath.Base(path)}
	var lastErr error
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err != nil {
			lastErr = err
			continue
		}
		src, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("render: decode %s: %w", p, err)
		}
		return Prescale(src, MaxTextureSide), nil
	}
	return nil, fmt.Errorf("render: load %s: %w", path, lastErr)
}

// Prescale shrinks src so its longer side is at most maxSide, keeping the
// aspect ratio. Smaller images are returned unchanged.
func Prescale(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return src
	}
	scale := float64(maxSide) / float64(max(w, h))
	dw := max(1, int(float64(w)*scale+0.5))
	dh := max(1, int(float64(h)*scale+0.5))
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Preload decodes every uncached ref in parallel and registers the results.
// Refs that fail to load are returned in failed; they are not fatal.
func Preload(ctx context.Context, refs []string, workers int) (failed map[string]error, err error) {
	return preload(ctx, refs, workers, false)
}

// Reload is Preload that also decodes refs already cached, replacing them.
// Replaced images are left to the garbage collector since a frame in flight
// may still draw them.
func Reload(ctx context.Context, refs []string, workers int) (failed map[string]error, err error) {
	return preload(ctx, refs, workers, true)
}

func preload(ctx context.Context, refs []string, workers int, fresh bool) (failed map[string]error, err error) {
	if workers <= 0 {
		workers = 4
	}
	decoded := make([]image.Image, len(refs))
	errs := make([]error, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, ref := range refs {
		if ref == "" || (!fresh && GetImage(ref) != nil) {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			decoded[i], errs[i] = DecodeFile(ref)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed = make(map[string]error)
	for i, ref := range refs {
		if errs[i] != nil {
			failed[ref] = errs[i]
			continue
		}
		if decoded[i] != nil {
			RegisterImage(ref, ebiten.NewImageFromImage(decoded[i]))
		}
	}
	return failed, nil
}

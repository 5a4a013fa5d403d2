package render

import (
	"hash/fnv"
	"image"
	"image/color"

	"github.com/milk9111/herocarousel/common"
)

// Placement is where a cover-fitted image lands in its destination.
type Placement struct {
	Scale float64
	X, Y  float64
}

// Cover scales a src-sized image to fill dst entirely, then slides it along
// the overflowing axis according to the anchor.
func Cover(srcW, srcH, dstW, dstH float64, a Anchor) Placement {
	if srcW <= 0 || srcH <= 0 {
		return Placement{Scale: 1}
	}
	scale := max(dstW/srcW, dstH/srcH)
	return Placement{
		Scale: scale,
		X:     (dstW - srcW*scale) * a.X,
		Y:     (dstH - srcH*scale) * a.Y,
	}
}

// Placeholder returns a vertical gradient seeded by ref, shown in place of a
// slide image that could not be loaded.
func Placeholder(ref string, w, h int) image.Image {
	hs := fnv.New32a()
	_, _ = hs.Write([]byte(ref))
	sum := hs.Sum32()
	top := color.RGBA{R: uint8(sum), G: uint8(sum >> 8), B: uint8(sum >> 16), A: 0xff}
	bottom := color.RGBA{R: top.R / 4, G: top.G / 4, B: top.B / 4, A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		c := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 0xff,
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(common.Lerp(float64(a), float64(b), t) + 0.5)
}

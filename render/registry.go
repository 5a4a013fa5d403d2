package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	imagesMu sync.RWMutex
	images   = map[string]*ebiten.Image{}
)

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	imagesMu.Lock()
	images[key] = img
	imagesMu.Unlock()
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	imagesMu.RLock()
	defer imagesMu.RUnlock()
	return images[key]
}

// Retain deallocates every cached image whose key is not in keep. It must run
// on the frame loop once nothing draws the dropped images.
func Retain(keep ...string) {
	wanted := make(map[string]bool, len(keep))
	for _, k := range keep {
		wanted[k] = true
	}
	imagesMu.Lock()
	for k, img := range images {
		if wanted[k] {
			continue
		}
		img.Deallocate()
		delete(images, k)
	}
	imagesMu.Unlock()
}

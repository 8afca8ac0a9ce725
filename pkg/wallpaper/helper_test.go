package wallpaper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
)

// pngBytes returns a small valid PNG image.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// recordingSetter remembers every path it was asked to apply.
type recordingSetter struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (r *recordingSetter) SetWallpaper(imagePath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, imagePath)
	return r.err
}

func (r *recordingSetter) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

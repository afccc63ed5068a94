package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/automoto/ldtkworld/importer"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestImageLoaderDecodesRelativeToRoot(t *testing.T) {
	fsys := fstest.MapFS{
		"world/tilesets/terrain.png": {Data: pngBytes(t, 32, 16)},
	}
	l := NewImageLoader(fsys, "world")

	tex, err := l.LoadTexture("tilesets/terrain.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tex.Bounds(); got != image.Rect(0, 0, 32, 16) {
		t.Fatalf("expected 32x16 bounds, got %v", got)
	}
}

func TestImageLoaderErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.png": {Data: []byte("not an image")},
	}
	l := NewImageLoader(fsys, ".")

	if _, err := l.LoadTexture("missing.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
	if _, err := l.LoadTexture("broken.png"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestImageLoaderWithResolver(t *testing.T) {
	fsys := fstest.MapFS{"a.png": {Data: pngBytes(t, 8, 8)}}
	r := importer.NewTilesetResolver(NewImageLoader(fsys, "."))

	_, err := r.Resolve("b.png")
	var rle *importer.ResourceLoadError
	if !errors.As(err, &rle) || rle.Path != "b.png" {
		t.Fatalf("expected ResourceLoadError for b.png, got %v", err)
	}
	if _, err := r.Resolve("a.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Package texture decodes tileset images from an fs.FS without touching
// the GPU, so headless tools can import projects.
package texture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/automoto/ldtkworld/importer"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageLoader decodes tileset images found under Root in FS. Paths handed
// to LoadTexture are project-relative, as written in the project file.
type ImageLoader struct {
	FS   fs.FS
	Root string
}

func NewImageLoader(fsys fs.FS, root string) *ImageLoader {
	return &ImageLoader{FS: fsys, Root: root}
}

// Decode reads and decodes one image.
func (l *ImageLoader) Decode(relPath string) (image.Image, error) {
	full := path.Join(l.Root, relPath)
	f, err := l.FS.Open(full)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", full, err)
	}
	return img, nil
}

func (l *ImageLoader) LoadTexture(relPath string) (importer.Texture, error) {
	img, err := l.Decode(relPath)
	if err != nil {
		return nil, err
	}
	return img, nil
}

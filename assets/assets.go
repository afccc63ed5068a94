package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/ldtkworld/assets/sample"
	"github.com/automoto/ldtkworld/importer"
	"github.com/automoto/ldtkworld/shared/leveldata"
	"github.com/automoto/ldtkworld/shared/texture"
	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenLoader uploads decoded tileset images to the GPU.
type EbitenLoader struct {
	images *texture.ImageLoader
}

func NewEbitenLoader(fsys fs.FS, root string) *EbitenLoader {
	return &EbitenLoader{images: texture.NewImageLoader(fsys, root)}
}

// LoadTexture returns an *ebiten.Image. Callers cache through the
// importer's tileset resolver, so each path is uploaded once per session.
func (l *EbitenLoader) LoadTexture(relPath string) (importer.Texture, error) {
	img, err := l.images.Decode(relPath)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// Source is a project the preview can (re)import: a file system, the
// project path inside it and, for on-disk projects, the directory to watch.
type Source struct {
	FS       fs.FS
	Project  string
	WatchDir string
}

// SampleSource is the embedded two-room project.
func SampleSource() Source {
	return Source{FS: sample.FS, Project: sample.Project}
}

// DiskSource opens a project file, a .tmx map, or a directory of .tmx maps.
func DiskSource(p string) (Source, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return Source{}, fmt.Errorf("resolve %s: %w", p, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Source{}, err
	}
	if info.IsDir() {
		return Source{FS: os.DirFS(abs), Project: ".", WatchDir: abs}, nil
	}
	dir := filepath.Dir(abs)
	return Source{FS: os.DirFS(dir), Project: filepath.Base(abs), WatchDir: dir}, nil
}

// Load decodes the project and returns a loader rooted next to it, since
// tileset paths are relative to the project file.
func (s Source) Load() (*leveldata.Project, *EbitenLoader, error) {
	doc, err := leveldata.Load(s.FS, s.Project)
	if err != nil {
		return nil, nil, err
	}
	return doc, NewEbitenLoader(s.FS, leveldata.AssetRoot(s.Project)), nil
}

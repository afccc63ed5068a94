package importer

import (
	"image"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Texture is an opaque loaded tileset image. Both image.Image and
// *ebiten.Image satisfy it.
type Texture interface {
	Bounds() image.Rectangle
}

// Loader loads a tileset texture by path.
type Loader interface {
	LoadTexture(path string) (Texture, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (Texture, error)

func (f LoaderFunc) LoadTexture(path string) (Texture, error) { return f(path) }

// TilesetResolver loads each tileset path at most once and hands out the
// cached texture afterwards. It is safe for concurrent use; concurrent first
// resolutions of one path share a single load.
type TilesetResolver struct {
	loader Loader

	mu    sync.RWMutex
	cache map[string]Texture

	inflight singleflight.Group
}

func NewTilesetResolver(loader Loader) *TilesetResolver {
	return &TilesetResolver{
		loader: loader,
		cache:  make(map[string]Texture),
	}
}

// Resolve returns the texture for path, loading it on first use. Load
// failures are returned as *ResourceLoadError and are not cached.
func (r *TilesetResolver) Resolve(path string) (Texture, error) {
	if tex, ok := r.Lookup(path); ok {
		return tex, nil
	}

	v, err, _ := r.inflight.Do(path, func() (any, error) {
		if tex, ok := r.Lookup(path); ok {
			return tex, nil
		}
		tex, err := r.loader.LoadTexture(path)
		if err != nil {
			return nil, &ResourceLoadError{Path: path, Err: err}
		}
		r.mu.Lock()
		r.cache[path] = tex
		r.mu.Unlock()
		return tex, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Texture), nil
}

// ResolveAll resolves every path, using up to workers loads in parallel.
// The first failure in path order is returned.
func (r *TilesetResolver) ResolveAll(paths []string, workers int) error {
	if workers <= 1 {
		for _, p := range paths {
			if _, err := r.Resolve(p); err != nil {
				return err
			}
		}
		return nil
	}

	errs := make([]error, len(paths))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, p := range paths {
		g.Go(func() error {
			_, errs[i] = r.Resolve(p)
			return nil
		})
	}
	_ = g.Wait()
	return firstError(errs)
}

// Lookup returns an already loaded texture without loading.
func (r *TilesetResolver) Lookup(path string) (Texture, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tex, ok := r.cache[path]
	return tex, ok
}

// Declared narrows the resolver to the tileset paths one project declares.
// The cache stays shared; only what counts as present changes.
func (r *TilesetResolver) Declared(paths []string) *Tilesets {
	declared := make(map[string]bool, len(paths))
	for _, p := range paths {
		declared[p] = true
	}
	return &Tilesets{resolver: r, declared: declared}
}

// Tilesets is the set of tilesets a single project declares, backed by a
// resolver's cache.
type Tilesets struct {
	resolver *TilesetResolver
	declared map[string]bool
}

// Declares reports whether the project lists path in its tileset
// definitions.
func (t *Tilesets) Declares(path string) bool { return t.declared[path] }

// Lookup returns the cached texture of a declared path. Undeclared paths
// are absent even when another project loaded them into the same cache.
func (t *Tilesets) Lookup(path string) (Texture, bool) {
	if !t.declared[path] {
		return nil, false
	}
	return t.resolver.Lookup(path)
}

// Len is the number of loaded textures.
func (r *TilesetResolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

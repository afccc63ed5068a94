// Package importer turns a parsed level-editor project into a World of
// areas ready for the tile renderer and entity spawner.
//
// An import is all-or-nothing: Build either returns a complete World or
// the first error, never a partial result.
package importer

import (
	"log"

	"github.com/automoto/ldtkworld/shared/leveldata"
	"github.com/yohamta/donburi/features/math"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultTileSize    = 16
	DefaultTileLayer   = "tiles"
	DefaultEntityLayer = "entities"
)

// Importer holds the configuration of an import session and its tileset
// cache.
type Importer struct {
	tileSize int
	layers   LayerNames
	spawnTag string
	scheme   Scheme
	workers  int
	tilesets *TilesetResolver
	onArea   func(*Area)
}

type Option func(*Importer)

// WithTileSize sets the pixels per tile applied to every layer.
func WithTileSize(size int) Option {
	return func(im *Importer) { im.tileSize = size }
}

// WithLayers names the tile layer and the entity layer. They may be the
// same layer.
func WithLayers(tile, entity string) Option {
	return func(im *Importer) { im.layers = LayerNames{Tile: tile, Entity: entity} }
}

// WithSpawnTag enables spawn resolution for TOC markers with the given
// identifier.
func WithSpawnTag(tag string) Option {
	return func(im *Importer) { im.spawnTag = tag }
}

func WithScheme(s Scheme) Option {
	return func(im *Importer) { im.scheme = s }
}

// WithWorkers bounds parallel tileset loads and level assembly. 1 or less
// runs everything on the calling goroutine.
func WithWorkers(n int) Option {
	return func(im *Importer) { im.workers = n }
}

// WithResolver shares a tileset cache across import sessions.
func WithResolver(r *TilesetResolver) Option {
	return func(im *Importer) { im.tilesets = r }
}

// WithAreaImported registers a callback fired once per area, in level
// order. Callbacks only run once every level has assembled, so a failed
// Build announces no areas at all.
func WithAreaImported(fn func(*Area)) Option {
	return func(im *Importer) { im.onArea = fn }
}

func New(loader Loader, opts ...Option) *Importer {
	im := &Importer{
		tileSize: DefaultTileSize,
		layers:   LayerNames{Tile: DefaultTileLayer, Entity: DefaultEntityLayer},
		workers:  1,
	}
	for _, o := range opts {
		o(im)
	}
	if im.tilesets == nil {
		im.tilesets = NewTilesetResolver(loader)
	}
	return im
}

// Tilesets exposes the session's tileset cache.
func (im *Importer) Tilesets() *TilesetResolver { return im.tilesets }

// Build loads every declared tileset, assembles one Area per level and
// indexes them into a World.
func (im *Importer) Build(doc *leveldata.Project) (*World, error) {
	paths := doc.TilesetPaths()
	if err := im.tilesets.ResolveAll(paths, im.workers); err != nil {
		return nil, err
	}
	tilesets := im.tilesets.Declared(paths)

	areas := make([]*Area, len(doc.Levels))
	errs := make([]error, len(doc.Levels))
	assemble := func(i int) {
		areas[i], errs[i] = AssembleArea(&doc.Levels[i], im.layers, tilesets, im.tileSize, im.scheme)
	}

	if im.workers <= 1 {
		for i := range doc.Levels {
			assemble(i)
			if errs[i] != nil {
				return nil, errs[i]
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(im.workers)
		for i := range doc.Levels {
			g.Go(func() error {
				assemble(i)
				return nil
			})
		}
		_ = g.Wait()
		if err := firstError(errs); err != nil {
			return nil, err
		}
	}

	w := newWorld(im.tileSize, areas)
	w.spawn = im.findSpawn(doc, w)

	if im.onArea != nil {
		for _, a := range areas {
			im.onArea(a)
		}
	}

	log.Printf("[importer] built world: %d areas, %d tilesets, scheme=%s", w.Len(), im.tilesets.Len(), im.scheme)
	return w, nil
}

// DecorationLayer builds tile-only areas for an additional named layer of
// every level, reusing the session's tileset cache.
func (im *Importer) DecorationLayer(doc *leveldata.Project, layerName string) ([]*TiledArea, error) {
	paths := doc.TilesetPaths()
	if err := im.tilesets.ResolveAll(paths, im.workers); err != nil {
		return nil, err
	}
	tilesets := im.tilesets.Declared(paths)
	out := make([]*TiledArea, 0, len(doc.Levels))
	for i := range doc.Levels {
		area, err := assembleTiledArea(&doc.Levels[i], layerName, tilesets, im.tileSize)
		if err != nil {
			return nil, err
		}
		out = append(out, area)
	}
	return out, nil
}

func (im *Importer) findSpawn(doc *leveldata.Project, w *World) *Spawn {
	if im.spawnTag == "" {
		return nil
	}
	for _, entry := range doc.TOC {
		if entry.Identifier != im.spawnTag || len(entry.InstancesData) == 0 {
			continue
		}
		inst := entry.InstancesData[0]
		for _, a := range w.areas {
			if a.IID == inst.IIDs.LevelIID {
				return &Spawn{
					Area:      a,
					Position:  math.Vec2{X: inst.WorldX, Y: inst.WorldY},
					EntityIID: inst.IIDs.EntityIID,
				}
			}
		}
		log.Printf("[importer] spawn marker %q points at unknown level %s", im.spawnTag, inst.IIDs.LevelIID)
		return nil
	}
	return nil
}

package scenes

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/automoto/ldtkworld/archetypes"
	"github.com/automoto/ldtkworld/assets"
	"github.com/automoto/ldtkworld/components"
	"github.com/automoto/ldtkworld/config"
	"github.com/automoto/ldtkworld/importer"
	"github.com/automoto/ldtkworld/shared/watch"
	"github.com/automoto/ldtkworld/systems"
	"github.com/automoto/ldtkworld/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PreviewScene shows an imported world and re-imports it when the project
// changes on disk or a reload is requested.
type PreviewScene struct {
	ecs      *ecs.ECS
	source   assets.Source
	watcher  *watch.Watcher
	tilesets *importer.TilesetResolver
	session  systems.SavedSession
	once     sync.Once
}

// NewPreviewScene creates a scene for source. A saved session for the same
// project restores the focused area and overlays.
func NewPreviewScene(source assets.Source, saved *systems.SavedSession) *PreviewScene {
	ps := &PreviewScene{
		source: source,
		session: systems.SavedSession{
			Project:     filepath.Join(source.WatchDir, source.Project),
			Focus:       -1,
			ShowMarkers: true,
		},
	}
	if saved != nil && saved.Project == ps.session.Project {
		ps.session = *saved
	}
	return ps
}

func (ps *PreviewScene) Update() {
	ps.once.Do(ps.configure)

	if ps.watcher != nil {
		if changed := ps.watcher.Drain(); len(changed) > 0 {
			log.Printf("[preview] %d project files changed, re-importing", len(changed))
			ps.reload(touchesImages(changed))
		}
	}

	ps.ecs.Update()

	if preview := ps.preview(); preview != nil && preview.Reload {
		preview.Reload = false
		ps.reload(true)
	}
}

func (ps *PreviewScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Close stops watching and stores the session.
func (ps *PreviewScene) Close() error {
	ps.snapshot()
	if err := systems.SaveSession(&ps.session); err != nil {
		log.Printf("[preview] could not save session: %v", err)
	}
	if ps.watcher != nil {
		return ps.watcher.Close()
	}
	return nil
}

func (ps *PreviewScene) configure() {
	if ps.source.WatchDir != "" && config.C.Preview.Watch {
		w, err := watch.New(ps.source.WatchDir)
		if err != nil {
			log.Printf("[preview] not watching %s: %v", ps.source.WatchDir, err)
		} else {
			ps.watcher = w
		}
	}
	ps.reload(true)
}

func (ps *PreviewScene) newECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(archetypes.LayerWorld, systems.DrawAreas)
	e.AddRenderer(archetypes.LayerWorld, systems.DrawCollision)
	e.AddRenderer(archetypes.LayerWorld, systems.DrawMarkers)
	e.AddRenderer(archetypes.LayerHUD, systems.DrawHUD)

	return e
}

// reload imports the project again. On failure the previous world stays on
// screen with the error in the HUD. freshTextures drops the tileset cache.
func (ps *PreviewScene) reload(freshTextures bool) {
	ps.snapshot()

	w, decorations, err := ps.importWorld(freshTextures)
	if err != nil {
		log.Printf("[preview] import failed: %v", err)
		if ps.ecs == nil {
			ps.ecs = ps.newECS()
			factory.CreatePreview(ps.ecs, components.PreviewData{})
		}
		preview := ps.preview()
		preview.Status = err.Error()
		preview.Failed = true
		return
	}

	ps.ecs = ps.newECS()
	factory.CreatePreview(ps.ecs, components.PreviewData{
		ShowGrid:    ps.session.ShowGrid,
		ShowMarkers: ps.session.ShowMarkers,
		Status:      fmt.Sprintf("%d areas, %d tilesets", w.Len(), ps.tilesets.Len()),
	})
	factory.SpawnWorld(ps.ecs, w, decorations, config.C.Collision, ps.session.Focus)
}

func (ps *PreviewScene) importWorld(freshTextures bool) (*importer.World, [][]*importer.TiledArea, error) {
	doc, loader, err := ps.source.Load()
	if err != nil {
		return nil, nil, err
	}

	opts, err := config.C.Import.Options()
	if err != nil {
		return nil, nil, err
	}
	if freshTextures || ps.tilesets == nil {
		ps.tilesets = importer.NewTilesetResolver(loader)
	}
	opts = append(opts,
		importer.WithResolver(ps.tilesets),
		importer.WithAreaImported(func(a *importer.Area) {
			log.Printf("[preview] area %s: %d tiles, %d entities", a.ID, len(a.Tiles), len(a.Entities))
		}),
	)

	im := importer.New(loader, opts...)
	w, err := im.Build(doc)
	if err != nil {
		return nil, nil, err
	}

	decorations := make([][]*importer.TiledArea, w.Len())
	for _, name := range config.C.Import.DecorationLayers {
		layer, err := im.DecorationLayer(doc, name)
		if err != nil {
			return nil, nil, err
		}
		for i, a := range layer {
			decorations[i] = append(decorations[i], a)
		}
	}
	return w, decorations, nil
}

func (ps *PreviewScene) preview() *components.PreviewData {
	if ps.ecs == nil {
		return nil
	}
	entry, ok := components.Preview.First(ps.ecs.World)
	if !ok {
		return nil
	}
	return components.Preview.Get(entry)
}

// snapshot copies the live viewer state into the session.
func (ps *PreviewScene) snapshot() {
	if ps.ecs == nil {
		return
	}
	if preview := ps.preview(); preview != nil {
		ps.session.ShowGrid = preview.ShowGrid
		ps.session.ShowMarkers = preview.ShowMarkers
	}
	if entry, ok := components.Camera.First(ps.ecs.World); ok {
		ps.session.Focus = components.Camera.Get(entry).Focus
	}
}

func touchesImages(paths []string) bool {
	for _, p := range paths {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".png", ".gif", ".jpg", ".jpeg", ".bmp", ".webp", ".tsx":
			return true
		}
	}
	return false
}

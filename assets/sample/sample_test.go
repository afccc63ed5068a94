package sample

import (
	"testing"

	"github.com/automoto/ldtkworld/importer"
	"github.com/automoto/ldtkworld/shared/leveldata"
	"github.com/automoto/ldtkworld/shared/texture"
)

func TestSampleImports(t *testing.T) {
	doc, err := leveldata.Load(FS, Project)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	im := importer.New(texture.NewImageLoader(FS, "."), importer.WithWorkers(2), importer.WithSpawnTag("spawn"))
	w, err := im.Build(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Len() != 2 {
		t.Fatalf("expected 2 areas, got %d", w.Len())
	}

	spawn, ok := w.Spawn()
	if !ok || spawn.Area.Name != "Hub" {
		t.Fatalf("expected spawn in Hub, got %+v (%v)", spawn, ok)
	}

	cave := w.Areas()[1]
	if cave.Position.X != 96 || cave.WidthInTiles != 6 {
		t.Fatalf("unexpected cave placement: %+v", cave.TiledArea.Bounds())
	}
	chests := cave.EntitiesNamed("Chest")
	if len(chests) != 1 {
		t.Fatalf("expected 1 chest, got %d", len(chests))
	}
	loot, _ := chests[0].Field("loot")
	items, err := loot.Value.Array()
	if err != nil || len(items) != 2 {
		t.Fatalf("expected 2 loot items, got %v (%v)", items, err)
	}
	door := cave.EntitiesNamed("Door")[0]
	target, _ := door.Field("target")
	ref, err := target.Value.Ref()
	if err != nil || ref.LevelIID != w.Areas()[0].IID {
		t.Fatalf("expected cave door to point back at the hub, got %+v (%v)", ref, err)
	}
}

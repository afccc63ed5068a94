package importer

import (
	"github.com/automoto/ldtkworld/shared/leveldata"
	"github.com/yohamta/donburi/features/math"
)

// Entity is a placed entity marker. It is complete once DecodeEntity
// returns and is not modified afterwards.
type Entity struct {
	Identifier string
	IID        string
	// Position is in world pixels.
	Position math.Vec2
	Width    int
	Height   int
	Fields   FieldSet
}

// DecodeEntity decodes an entity placement and all of its fields.
func DecodeEntity(ei leveldata.EntityInstance) *Entity {
	return &Entity{
		Identifier: ei.Identifier,
		IID:        ei.IID,
		Position:   math.Vec2{X: ei.WorldX, Y: ei.WorldY},
		Width:      ei.Width,
		Height:     ei.Height,
		Fields:     NewFieldSet(DecodeFields(ei.FieldInstances)),
	}
}

// Field is shorthand for e.Fields.Get.
func (e *Entity) Field(name string) (Field, bool) {
	return e.Fields.Get(name)
}

func decodeEntities(records []leveldata.EntityInstance) []*Entity {
	entities := make([]*Entity, len(records))
	for i, ei := range records {
		entities[i] = DecodeEntity(ei)
	}
	return entities
}

package importer

import "github.com/automoto/ldtkworld/shared/leveldata"

// Field is a named custom value attached to a level or an entity.
type Field struct {
	Name string
	// Type is the declared type tag as authored, e.g. "Int" or "Array<LocalEnum.Item>".
	Type  string
	Value Value
}

// DecodeField converts one field record. The raw value is carried through
// untouched; interpretation happens in the Value accessors.
func DecodeField(fi leveldata.FieldInstance) Field {
	v := NewValue(fi.Type, fi.Value)
	v.field = fi.Identifier
	return Field{Name: fi.Identifier, Type: fi.Type, Value: v}
}

// DecodeFields decodes records in order.
func DecodeFields(records []leveldata.FieldInstance) []Field {
	fields := make([]Field, len(records))
	for i, fi := range records {
		fields[i] = DecodeField(fi)
	}
	return fields
}

// FieldSet is an ordered field list with a by-name index. Fields sharing a
// name are grouped, never overwritten.
type FieldSet struct {
	list   []Field
	byName map[string][]int
}

func NewFieldSet(fields []Field) FieldSet {
	fs := FieldSet{list: fields, byName: make(map[string][]int, len(fields))}
	for i, f := range fields {
		fs.byName[f.Name] = append(fs.byName[f.Name], i)
	}
	return fs
}

// All returns the fields in document order.
func (fs FieldSet) All() []Field { return fs.list }

func (fs FieldSet) Len() int { return len(fs.list) }

// Get returns the first field with the given name.
func (fs FieldSet) Get(name string) (Field, bool) {
	idx, ok := fs.byName[name]
	if !ok {
		return Field{}, false
	}
	return fs.list[idx[0]], true
}

// Named returns every field with the given name in document order.
func (fs FieldSet) Named(name string) []Field {
	idx := fs.byName[name]
	out := make([]Field, len(idx))
	for i, j := range idx {
		out[i] = fs.list[j]
	}
	return out
}

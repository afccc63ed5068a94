package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/automoto/ldtkworld/shared/leveldata"
)

// Kind is the closed vocabulary of custom field types.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindPoint
	KindEnum
	KindArray
	KindEntityRef
	// KindRaw covers declared types outside the vocabulary (e.g. "Tile").
	KindRaw
)

var kindNames = [...]string{
	KindNull:      "null",
	KindInt:       "int",
	KindFloat:     "float",
	KindBool:      "bool",
	KindString:    "string",
	KindPoint:     "point",
	KindEnum:      "enum",
	KindArray:     "array",
	KindEntityRef: "entity-ref",
	KindRaw:       "raw",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindOf maps a declared field type tag to its kind. Array tags return
// KindArray and the element kind.
func KindOf(declared string) (kind, elem Kind) {
	if inner, ok := strings.CutPrefix(declared, "Array<"); ok {
		e, _ := KindOf(strings.TrimSuffix(inner, ">"))
		return KindArray, e
	}
	switch {
	case declared == "Int":
		return KindInt, KindNull
	case declared == "Float":
		return KindFloat, KindNull
	case declared == "Bool":
		return KindBool, KindNull
	case declared == "String", declared == "Multilines", declared == "Color", declared == "FilePath":
		return KindString, KindNull
	case declared == "Point":
		return KindPoint, KindNull
	case declared == "EntityRef":
		return KindEntityRef, KindNull
	case strings.HasPrefix(declared, "LocalEnum."), strings.HasPrefix(declared, "ExternEnum."):
		return KindEnum, KindNull
	}
	return KindRaw, KindNull
}

// Point is a grid coordinate stored by Point fields.
type Point struct {
	CX, CY int
}

// Value is a custom field payload tagged with its declared kind. The payload
// is kept as the document supplied it; accessors convert on demand and fail
// with *TypeMismatchError instead of guessing.
type Value struct {
	field string
	kind  Kind
	elem  Kind
	raw   any
}

// NewValue tags raw with the kind derived from the declared type.
func NewValue(declared string, raw any) Value {
	kind, elem := KindOf(declared)
	return Value{kind: kind, elem: elem, raw: raw}
}

func (v Value) Kind() Kind { return v.kind }

// Elem is the element kind of an array value.
func (v Value) Elem() Kind { return v.elem }

// IsNull reports an unset field.
func (v Value) IsNull() bool { return v.raw == nil }

// Raw returns the payload exactly as decoded from the document.
func (v Value) Raw() any { return v.raw }

func (v Value) String() string {
	if v.raw == nil {
		return "null"
	}
	return fmt.Sprint(v.raw)
}

func (v Value) mismatch(want Kind) error {
	got := v.kind
	if v.raw == nil {
		got = KindNull
	}
	return &TypeMismatchError{Field: v.field, Want: want, Got: got, Raw: v.raw}
}

func (v Value) check(want Kind) error {
	if v.kind != want || v.raw == nil {
		return v.mismatch(want)
	}
	return nil
}

func (v Value) Int() (int, error) {
	if err := v.check(KindInt); err != nil {
		return 0, err
	}
	f, ok := number(v.raw)
	if !ok || f != math.Trunc(f) {
		return 0, v.mismatch(KindInt)
	}
	return int(f), nil
}

// Float also accepts Int values.
func (v Value) Float() (float64, error) {
	if v.kind == KindInt && v.raw != nil {
		n, err := v.Int()
		return float64(n), err
	}
	if err := v.check(KindFloat); err != nil {
		return 0, err
	}
	f, ok := number(v.raw)
	if !ok {
		return 0, v.mismatch(KindFloat)
	}
	return f, nil
}

func (v Value) Bool() (bool, error) {
	if err := v.check(KindBool); err != nil {
		return false, err
	}
	b, ok := v.raw.(bool)
	if !ok {
		return false, v.mismatch(KindBool)
	}
	return b, nil
}

// Text returns String, Multilines, Color and FilePath payloads.
func (v Value) Text() (string, error) {
	if err := v.check(KindString); err != nil {
		return "", err
	}
	s, ok := v.raw.(string)
	if !ok {
		return "", v.mismatch(KindString)
	}
	return s, nil
}

func (v Value) Enum() (string, error) {
	if err := v.check(KindEnum); err != nil {
		return "", err
	}
	s, ok := v.raw.(string)
	if !ok {
		return "", v.mismatch(KindEnum)
	}
	return s, nil
}

func (v Value) Point() (Point, error) {
	if err := v.check(KindPoint); err != nil {
		return Point{}, err
	}
	switch p := v.raw.(type) {
	case Point:
		return p, nil
	case map[string]any:
		cx, okX := number(p["cx"])
		cy, okY := number(p["cy"])
		if okX && okY {
			return Point{CX: int(cx), CY: int(cy)}, nil
		}
	}
	return Point{}, v.mismatch(KindPoint)
}

func (v Value) Ref() (leveldata.ReferenceInfos, error) {
	if err := v.check(KindEntityRef); err != nil {
		return leveldata.ReferenceInfos{}, err
	}
	switch r := v.raw.(type) {
	case leveldata.ReferenceInfos:
		return r, nil
	case map[string]any:
		ref := leveldata.ReferenceInfos{}
		ref.EntityIID, _ = r["entityIid"].(string)
		ref.LayerIID, _ = r["layerIid"].(string)
		ref.LevelIID, _ = r["levelIid"].(string)
		ref.WorldIID, _ = r["worldIid"].(string)
		if ref.EntityIID != "" {
			return ref, nil
		}
	}
	return leveldata.ReferenceInfos{}, v.mismatch(KindEntityRef)
}

// Array returns the elements tagged with the array's element kind.
func (v Value) Array() ([]Value, error) {
	if err := v.check(KindArray); err != nil {
		return nil, err
	}
	items, ok := v.raw.([]any)
	if !ok {
		return nil, v.mismatch(KindArray)
	}
	out := make([]Value, len(items))
	for i, item := range items {
		out[i] = Value{field: v.field, kind: v.elem, raw: item}
	}
	return out, nil
}

func number(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

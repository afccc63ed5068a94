package importer

import (
	"errors"
	"testing"

	"github.com/automoto/ldtkworld/shared/leveldata"
	"github.com/google/go-cmp/cmp"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		declared string
		kind     Kind
		elem     Kind
	}{
		{"Int", KindInt, KindNull},
		{"Float", KindFloat, KindNull},
		{"Bool", KindBool, KindNull},
		{"String", KindString, KindNull},
		{"Multilines", KindString, KindNull},
		{"Color", KindString, KindNull},
		{"FilePath", KindString, KindNull},
		{"Point", KindPoint, KindNull},
		{"LocalEnum.Item", KindEnum, KindNull},
		{"ExternEnum.Biome", KindEnum, KindNull},
		{"EntityRef", KindEntityRef, KindNull},
		{"Array<Int>", KindArray, KindInt},
		{"Array<LocalEnum.Item>", KindArray, KindEnum},
		{"Tile", KindRaw, KindNull},
	}

	for _, c := range cases {
		t.Run(c.declared, func(t *testing.T) {
			kind, elem := KindOf(c.declared)
			if kind != c.kind || elem != c.elem {
				t.Fatalf("expected (%s,%s), got (%s,%s)", c.kind, c.elem, kind, elem)
			}
		})
	}
}

func TestDecodeFieldCarriesRawValue(t *testing.T) {
	raw := map[string]any{"unexpected": true}
	f := DecodeField(leveldata.FieldInstance{Identifier: "hp", Type: "Int", Value: raw})

	if f.Name != "hp" || f.Type != "Int" {
		t.Fatalf("expected hp/Int, got %s/%s", f.Name, f.Type)
	}
	if diff := cmp.Diff(raw, f.Value.Raw()); diff != "" {
		t.Fatalf("raw value changed (-want +got):\n%s", diff)
	}

	_, err := f.Value.Int()
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	if tm.Field != "hp" || tm.Want != KindInt {
		t.Fatalf("unexpected error detail: %+v", tm)
	}
}

func TestValueAccessors(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		n, err := NewValue("Int", float64(42)).Int()
		if err != nil || n != 42 {
			t.Fatalf("expected 42, got %d (%v)", n, err)
		}
		if _, err := NewValue("Int", 4.5).Int(); err == nil {
			t.Fatalf("expected fractional int to fail")
		}
	})

	t.Run("float_accepts_int", func(t *testing.T) {
		f, err := NewValue("Int", 3).Float()
		if err != nil || f != 3 {
			t.Fatalf("expected 3, got %v (%v)", f, err)
		}
	})

	t.Run("bool", func(t *testing.T) {
		b, err := NewValue("Bool", true).Bool()
		if err != nil || !b {
			t.Fatalf("expected true, got %v (%v)", b, err)
		}
	})

	t.Run("text", func(t *testing.T) {
		s, err := NewValue("Color", "#ff0000").Text()
		if err != nil || s != "#ff0000" {
			t.Fatalf("expected #ff0000, got %q (%v)", s, err)
		}
	})

	t.Run("enum", func(t *testing.T) {
		s, err := NewValue("LocalEnum.Item", "Sword").Enum()
		if err != nil || s != "Sword" {
			t.Fatalf("expected Sword, got %q (%v)", s, err)
		}
		if _, err := NewValue("LocalEnum.Item", "Sword").Text(); err == nil {
			t.Fatalf("expected enum to refuse Text")
		}
	})

	t.Run("point", func(t *testing.T) {
		p, err := NewValue("Point", map[string]any{"cx": float64(3), "cy": float64(7)}).Point()
		if err != nil || p != (Point{CX: 3, CY: 7}) {
			t.Fatalf("expected (3,7), got %v (%v)", p, err)
		}
	})

	t.Run("entity_ref", func(t *testing.T) {
		ref, err := NewValue("EntityRef", map[string]any{
			"entityIid": "e1", "layerIid": "la", "levelIid": "lv", "worldIid": "w",
		}).Ref()
		want := leveldata.ReferenceInfos{EntityIID: "e1", LayerIID: "la", LevelIID: "lv", WorldIID: "w"}
		if err != nil || ref != want {
			t.Fatalf("expected %+v, got %+v (%v)", want, ref, err)
		}
	})

	t.Run("array", func(t *testing.T) {
		items, err := NewValue("Array<Int>", []any{float64(1), float64(2)}).Array()
		if err != nil || len(items) != 2 {
			t.Fatalf("expected 2 items, got %d (%v)", len(items), err)
		}
		for i, item := range items {
			n, err := item.Int()
			if err != nil || n != i+1 {
				t.Fatalf("item %d: expected %d, got %d (%v)", i, i+1, n, err)
			}
		}
	})

	t.Run("null", func(t *testing.T) {
		v := NewValue("Int", nil)
		if !v.IsNull() {
			t.Fatalf("expected null value")
		}
		_, err := v.Int()
		var tm *TypeMismatchError
		if !errors.As(err, &tm) || tm.Got != KindNull {
			t.Fatalf("expected mismatch against null, got %v", err)
		}
	})

	t.Run("wrong_kind", func(t *testing.T) {
		_, err := NewValue("Bool", true).Int()
		var tm *TypeMismatchError
		if !errors.As(err, &tm) || tm.Want != KindInt || tm.Got != KindBool {
			t.Fatalf("expected int/bool mismatch, got %v", err)
		}
	})
}

func TestFieldSetGroupsDuplicates(t *testing.T) {
	fs := NewFieldSet(DecodeFields([]leveldata.FieldInstance{
		{Identifier: "tag", Type: "String", Value: "a"},
		{Identifier: "hp", Type: "Int", Value: float64(3)},
		{Identifier: "tag", Type: "String", Value: "b"},
	}))

	if fs.Len() != 3 {
		t.Fatalf("expected 3 fields, got %d", fs.Len())
	}
	if fs.All()[1].Name != "hp" {
		t.Fatalf("expected document order to be kept")
	}

	tags := fs.Named("tag")
	if len(tags) != 2 {
		t.Fatalf("expected 2 tag fields, got %d", len(tags))
	}
	first, _ := tags[0].Value.Text()
	second, _ := tags[1].Value.Text()
	if first != "a" || second != "b" {
		t.Fatalf("expected a,b got %s,%s", first, second)
	}

	got, ok := fs.Get("tag")
	if !ok {
		t.Fatalf("expected tag to be found")
	}
	if s, _ := got.Value.Text(); s != "a" {
		t.Fatalf("Get should return the first field, got %s", s)
	}
	if _, ok := fs.Get("missing"); ok {
		t.Fatalf("expected missing field to be absent")
	}
}

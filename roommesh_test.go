package roommesh

import (
	"testing"
)

func TestEntitiesByTag(t *testing.T) {
	root := Root{
		Entities: []Entity{
			&Light{Range: 1},
			&Waypoint{},
			&Light{Range: 2},
		},
	}
	lights := root.EntitiesByTag("light")
	if len(lights) != 2 {
		t.Fatalf("got %d lights; expected 2", len(lights))
	}
	for _, ent := range lights {
		if _, ok := ent.(*Light); !ok {
			t.Errorf("unexpected entity type %T", ent)
		}
	}
	if ents := root.EntitiesByTag("screen"); len(ents) != 0 {
		t.Errorf("got %d screens; expected none", len(ents))
	}
}

func TestBlendTypeString(t *testing.T) {
	cases := map[BlendType]string{
		BlendNone:        "None",
		BlendVisible:     "Visible",
		BlendLightmap:    "Lightmap",
		BlendTransparent: "Transparent",
		BlendType(9):     "BlendType(9)",
	}
	for b, expected := range cases {
		if s := b.String(); s != expected {
			t.Errorf("BlendType(%d).String() = %q; expected %q", uint8(b), s, expected)
		}
	}
}

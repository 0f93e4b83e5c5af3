package rmesh

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/anaminus/parse"
	"github.com/scpcb/roommesh"
)

// wire builds expected file content field by field, independently of
// the encoder under test.
type wire struct {
	buf bytes.Buffer
}

func (w *wire) u8(v uint8)   { w.buf.WriteByte(v) }
func (w *wire) u32(v uint32) { binary.Write(&w.buf, binary.LittleEndian, v) }
func (w *wire) f32(v float32) {
	binary.Write(&w.buf, binary.LittleEndian, v)
}

func (w *wire) str(s string) {
	w.u32(uint32(len(s)))
	w.buf.WriteString(s)
}

func (w *wire) raw(b []byte) {
	w.buf.Write(b)
}

func (w *wire) triple(a, b, c uint8) {
	w.str(fmt.Sprintf("%d %d %d", a, b, c))
}

func (w *wire) vec3(x, y, z float32) {
	w.f32(x)
	w.f32(y)
	w.f32(z)
}

func (w *wire) bytes() []byte {
	return w.buf.Bytes()
}

// goldenRoot is a document exercising every section and every entity
// variant.
func goldenRoot() *roommesh.Root {
	return &roommesh.Root{
		Meshes: []roommesh.ComplexMesh{
			{
				Textures: [2]roommesh.Texture{
					{BlendType: roommesh.BlendNone},
					{BlendType: roommesh.BlendLightmap, Path: "room_lm.png"},
				},
				Vertices: []roommesh.Vertex{
					{
						Position:  [3]float32{0, 0, 0},
						TexCoords: [2][2]float32{{0, 0}, {0, 1}},
						Color:     [3]uint8{255, 255, 255},
					},
					{
						Position:  [3]float32{1, 0, 0},
						TexCoords: [2][2]float32{{1, 0}, {1, 1}},
						Color:     [3]uint8{128, 64, 32},
					},
					{
						Position:  [3]float32{0, 1, 0},
						TexCoords: [2][2]float32{{0.5, 0.5}, {0.25, 0.75}},
						Color:     [3]uint8{0, 0, 0},
					},
				},
				Triangles: []roommesh.Triangle{{0, 1, 2}},
			},
		},
		Colliders: []roommesh.SimpleMesh{
			{
				Vertices:  [][3]float32{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}},
				Triangles: []roommesh.Triangle{{0, 1, 2}},
			},
		},
		TriggerBoxes: []roommesh.TriggerBox{
			{
				Name: "trigger_exit",
				Meshes: []roommesh.SimpleMesh{
					{
						Vertices:  [][3]float32{{0, 0, 0}, {1, 1, 1}, {0, 1, 0}},
						Triangles: []roommesh.Triangle{{0, 1, 2}},
					},
				},
			},
		},
		Entities: []roommesh.Entity{
			&roommesh.Screen{Position: [3]float32{1, 2, 3}, Name: "monitor"},
			&roommesh.Waypoint{Position: [3]float32{4, 5, 6}},
			&roommesh.Light{
				Position:  [3]float32{7, 8, 9},
				Range:     100,
				Color:     [3]uint8{255, 128, 0},
				Intensity: 1.5,
			},
			&roommesh.Spotlight{
				Position:       [3]float32{1, 0, 1},
				Range:          50,
				Color:          [3]uint8{0, 255, 0},
				Intensity:      2,
				Angles:         [3]uint8{0, 90, 0},
				InnerConeAngle: 10,
				OuterConeAngle: 45,
			},
			&roommesh.SoundEmitter{
				Position:  [3]float32{3, 3, 3},
				Reserved0: 7,
				Reserved1: 0.5,
			},
			&roommesh.PlayerStart{Position: [3]float32{0, 0, 0}, Angles: "0 180 0"},
			&roommesh.Model{
				Name:     "door.x",
				Position: [3]float32{5, 5, 5},
				Rotation: [3]float32{0, 1.5, 0},
				Scale:    [3]float32{1, 1, 1},
			},
		},
	}
}

// goldenBytes is the exact wire form of goldenRoot.
func goldenBytes() []byte {
	w := &wire{}
	w.str(TagTriggerBox)

	// Meshes.
	w.u32(1)
	w.u8(0) // texture slot 0: blend None, no path
	w.u8(2) // texture slot 1: blend Lightmap
	w.str("room_lm.png")
	w.u32(3)
	w.vec3(0, 0, 0)
	w.f32(0)
	w.f32(0)
	w.f32(0)
	w.f32(1)
	w.raw([]byte{255, 255, 255})
	w.vec3(1, 0, 0)
	w.f32(1)
	w.f32(0)
	w.f32(1)
	w.f32(1)
	w.raw([]byte{128, 64, 32})
	w.vec3(0, 1, 0)
	w.f32(0.5)
	w.f32(0.5)
	w.f32(0.25)
	w.f32(0.75)
	w.raw([]byte{0, 0, 0})
	w.u32(1)
	w.u32(0)
	w.u32(1)
	w.u32(2)

	// Colliders.
	w.u32(1)
	w.u32(3)
	w.vec3(0, 0, 0)
	w.vec3(2, 0, 0)
	w.vec3(0, 2, 0)
	w.u32(1)
	w.u32(0)
	w.u32(1)
	w.u32(2)

	// Trigger boxes: meshes precede the name.
	w.u32(1)
	w.u32(1)
	w.u32(3)
	w.vec3(0, 0, 0)
	w.vec3(1, 1, 1)
	w.vec3(0, 1, 0)
	w.u32(1)
	w.u32(0)
	w.u32(1)
	w.u32(2)
	w.str("trigger_exit")

	// Entities.
	w.u32(7)
	w.str("screen")
	w.vec3(1, 2, 3)
	w.str("monitor")
	w.str("waypoint")
	w.vec3(4, 5, 6)
	w.str("light")
	w.vec3(7, 8, 9)
	w.f32(100)
	w.triple(255, 128, 0)
	w.f32(1.5)
	w.str("spotlight")
	w.vec3(1, 0, 1)
	w.f32(50)
	w.triple(0, 255, 0)
	w.f32(2)
	w.triple(0, 90, 0)
	w.f32(10)
	w.f32(45)
	w.str("soundemitter")
	w.vec3(3, 3, 3)
	w.u32(7)
	w.f32(0.5)
	w.str("playerstart")
	w.vec3(0, 0, 0)
	w.str("0 180 0")
	w.str("model")
	w.str("door.x")
	w.vec3(5, 5, 5)
	w.vec3(0, 1.5, 0)
	w.vec3(1, 1, 1)

	return w.bytes()
}

func TestDecodeGolden(t *testing.T) {
	root, warn, err := Decoder{}.Decode(bytes.NewReader(goldenBytes()))
	if warn != nil {
		t.Errorf("unexpected warning: %s", warn)
	}
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !reflect.DeepEqual(root, goldenRoot()) {
		t.Errorf("decoded root does not match:\ngot      %#v\nexpected %#v", root, goldenRoot())
	}
}

func TestEncodeGolden(t *testing.T) {
	var buf bytes.Buffer
	warn, err := Encoder{}.Encode(&buf, goldenRoot())
	if warn != nil {
		t.Errorf("unexpected warning: %s", warn)
	}
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(buf.Bytes(), goldenBytes()) {
		t.Errorf("encoded bytes do not match:\ngot      %x\nexpected %x", buf.Bytes(), goldenBytes())
	}
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if _, err := (Encoder{}).Encode(&buf, goldenRoot()); err != nil {
		t.Fatalf("encode: %s", err)
	}
	root, _, err := Decoder{}.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if !reflect.DeepEqual(root, goldenRoot()) {
		t.Error("round-tripped root does not match the original")
	}
}

func TestTagDerivation(t *testing.T) {
	simple := &roommesh.Root{
		Entities: []roommesh.Entity{&roommesh.Waypoint{}},
	}
	var buf bytes.Buffer
	if _, err := (Encoder{}).Encode(&buf, simple); err != nil {
		t.Fatalf("encode: %s", err)
	}
	expected := &wire{}
	expected.str(TagSimple)
	if !bytes.HasPrefix(buf.Bytes(), expected.bytes()) {
		t.Errorf("encoded header = %x; expected prefix %x", buf.Bytes(), expected.bytes())
	}

	boxed := &roommesh.Root{
		TriggerBoxes: []roommesh.TriggerBox{{Name: "t"}},
	}
	buf.Reset()
	if _, err := (Encoder{}).Encode(&buf, boxed); err != nil {
		t.Fatalf("encode: %s", err)
	}
	expected = &wire{}
	expected.str(TagTriggerBox)
	if !bytes.HasPrefix(buf.Bytes(), expected.bytes()) {
		t.Errorf("encoded header = %x; expected prefix %x", buf.Bytes(), expected.bytes())
	}
}

func TestTruncation(t *testing.T) {
	golden := goldenBytes()
	for i := 0; i < len(golden); i++ {
		root, _, err := Decoder{}.Decode(bytes.NewReader(golden[:i]))
		if err == nil {
			t.Fatalf("decode of %d/%d bytes succeeded", i, len(golden))
		}
		if root != nil {
			t.Fatalf("decode of %d/%d bytes returned a root", i, len(golden))
		}
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("decode of %d/%d bytes: %s; expected truncation", i, len(golden), err)
		}
		var cerr CodecError
		if !errors.As(err, &cerr) {
			t.Fatalf("decode of %d/%d bytes: error carries no offset", i, len(golden))
		}
		if cerr.Offset != int64(i) {
			t.Fatalf("decode of %d/%d bytes: offset = %d; expected %d", i, len(golden), cerr.Offset, i)
		}
	}
}

func TestTripleFidelity(t *testing.T) {
	var buf bytes.Buffer
	fw := parse.NewBinaryWriter(&buf)
	if writeTriple(fw, [3]uint8{255, 0, 128}) {
		t.Fatal("writeTriple failed")
	}
	if _, err := fw.End(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := &wire{}
	expected.str("255 0 128")
	if !bytes.Equal(buf.Bytes(), expected.bytes()) {
		t.Errorf("encoded triple = %x; expected %x", buf.Bytes(), expected.bytes())
	}

	fr := parse.NewBinaryReader(bytes.NewReader(buf.Bytes()))
	var data [3]uint8
	if readTriple(fr, &data) {
		t.Fatal("readTriple failed")
	}
	if data != ([3]uint8{255, 0, 128}) {
		t.Errorf("decoded triple = %v; expected [255 0 128]", data)
	}
}

func TestUnknownEntityTag(t *testing.T) {
	w := &wire{}
	w.str(TagSimple)
	w.u32(0) // meshes
	w.u32(0) // colliders
	w.u32(1) // entities
	w.str("teleporter")

	root, _, err := Decoder{}.Decode(bytes.NewReader(w.bytes()))
	if err == nil {
		t.Fatal("expected error")
	}
	if root != nil {
		t.Error("expected nil root")
	}
	var terr EntityTagError
	if !errors.As(err, &terr) {
		t.Fatalf("unexpected error: %s", err)
	}
	if terr.Tag != "teleporter" {
		t.Errorf("tag = %q; expected %q", terr.Tag, "teleporter")
	}
}

func TestInvalidFormatTag(t *testing.T) {
	w := &wire{}
	w.str("RoomMesh2")
	w.u32(0)

	root, _, err := Decoder{}.Decode(bytes.NewReader(w.bytes()))
	if err == nil {
		t.Fatal("expected error")
	}
	if root != nil {
		t.Error("expected nil root")
	}
	var ferr FormatTagError
	if !errors.As(err, &ferr) {
		t.Fatalf("unexpected error: %s", err)
	}
	if ferr.Tag != "RoomMesh2" {
		t.Errorf("tag = %q; expected %q", ferr.Tag, "RoomMesh2")
	}
}

func TestInvalidText(t *testing.T) {
	w := &wire{}
	w.u32(2)
	w.raw([]byte{0xff, 0xfe})

	root, _, err := Decoder{}.Decode(bytes.NewReader(w.bytes()))
	if err == nil {
		t.Fatal("expected error")
	}
	if root != nil {
		t.Error("expected nil root")
	}
	var terr TextError
	if !errors.As(err, &terr) {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestInvalidTriple(t *testing.T) {
	w := &wire{}
	w.str(TagSimple)
	w.u32(0) // meshes
	w.u32(0) // colliders
	w.u32(1) // entities
	w.str("light")
	w.vec3(0, 0, 0)
	w.f32(1)
	w.str("255 0") // two values instead of three

	root, _, err := Decoder{}.Decode(bytes.NewReader(w.bytes()))
	if err == nil {
		t.Fatal("expected error")
	}
	if root != nil {
		t.Error("expected nil root")
	}
	var terr TripleError
	if !errors.As(err, &terr) {
		t.Fatalf("unexpected error: %s", err)
	}
	if terr.Text != "255 0" {
		t.Errorf("text = %q; expected %q", terr.Text, "255 0")
	}
}

func TestTriangleIndexWarning(t *testing.T) {
	w := &wire{}
	w.str(TagSimple)
	w.u32(1) // meshes
	w.u8(0)
	w.u8(0)
	w.u32(1) // one vertex
	w.vec3(0, 0, 0)
	w.f32(0)
	w.f32(0)
	w.f32(0)
	w.f32(0)
	w.raw([]byte{0, 0, 0})
	w.u32(1) // one triangle, out of range
	w.u32(0)
	w.u32(5)
	w.u32(0)
	w.u32(0) // colliders
	w.u32(0) // entities

	root, warn, err := Decoder{}.Decode(bytes.NewReader(w.bytes()))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if root == nil {
		t.Fatal("expected a root")
	}
	if len(root.Meshes) != 1 || len(root.Meshes[0].Triangles) != 1 {
		t.Fatal("mesh was not decoded in full")
	}
	if warn == nil {
		t.Fatal("expected a warning")
	}
	var terr TriangleIndexError
	if !errors.As(warn, &terr) {
		t.Fatalf("unexpected warning: %s", warn)
	}
	if terr.Index != 5 || terr.Vertices != 1 {
		t.Errorf("warning = %+v; expected index 5 of 1 vertex", terr)
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	warn, err := Decoder{}.Dump(&buf, bytes.NewReader(goldenBytes()))
	if warn != nil {
		t.Errorf("unexpected warning: %s", warn)
	}
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Meshes: 1",
		"Colliders: 1",
		`"trigger_exit"`,
		"Entities: 7",
		"playerstart",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output is missing %q", want)
		}
	}
}

func TestDecodeNilReader(t *testing.T) {
	if _, _, err := (Decoder{}).Decode(nil); err == nil {
		t.Error("expected error")
	}
}

func TestEncodeNilWriter(t *testing.T) {
	if _, err := (Encoder{}).Encode(nil, goldenRoot()); err == nil {
		t.Error("expected error")
	}
}

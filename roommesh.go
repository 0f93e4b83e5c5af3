// The roommesh package handles the decoding, encoding, and manipulation
// of room-mesh data structures.
//
// A room mesh describes one room of a game world: its visible geometry,
// collision geometry, trigger volumes, and placed entities (lights,
// spawn points, sound emitters, screens, decorative models). Decoded
// data begins with a Root struct, which owns every record by value;
// there is no sharing between records and no cycles.
//
// Root structures are decoded from and encoded to the .rmesh binary
// format by the "rmesh" sub-package. Consumers such as asset importers
// and inspectors read a Root without modifying it; any coordinate
// conventions (axis flips, world scaling, UV flips) are theirs to
// apply, not this package's.
package roommesh

import (
	"strconv"
)

// RoomScale is the factor the game applies to room coordinates when
// placing geometry in world space. It is exported for consumers; the
// codec never applies it.
const RoomScale float32 = 8.0 / 2048.0

// Root represents the content of one room-mesh file.
type Root struct {
	// Meshes contains the room's visible geometry.
	Meshes []ComplexMesh

	// Colliders contains the room's collision geometry.
	Colliders []SimpleMesh

	// TriggerBoxes contains named trigger volumes. Whether the
	// trigger-box section appears on the wire is derived from this
	// list being non-empty; there is no separate flag to set.
	TriggerBoxes []TriggerBox

	// Entities contains the point-placed objects of the room.
	Entities []Entity
}

// Triangle indexes three vertices of the mesh that contains it. The
// codec does not verify that indices are in range; consumers must.
type Triangle [3]uint32

// ComplexMesh is a renderable section of the room, with per-vertex
// texture coordinates and color.
type ComplexMesh struct {
	// Textures holds the mesh's two texture slots. By convention of
	// the game, slot 0 is the primary texture and slot 1 is the
	// lightmap; the codec treats both slots uniformly.
	Textures [2]Texture

	Vertices  []Vertex
	Triangles []Triangle
}

// Vertex is a single vertex of a ComplexMesh.
type Vertex struct {
	// Position is the vertex's location in room space.
	Position [3]float32

	// TexCoords holds one UV pair per texture slot: slot 0 for the
	// diffuse texture, slot 1 for the lightmap.
	TexCoords [2][2]float32

	// Color is a legacy per-vertex tint. Most consumers ignore it.
	Color [3]uint8
}

// Texture is a reference to a texture file used by a mesh.
type Texture struct {
	BlendType BlendType

	// Path locates the texture file. It is meaningful only when
	// BlendType is not BlendNone; a slot with BlendNone carries no
	// path on the wire.
	Path string
}

// BlendType describes how a texture slot is applied.
type BlendType uint8

const (
	BlendNone BlendType = iota
	BlendVisible
	BlendLightmap
	BlendTransparent
)

// String returns a readable name for the blend type. Bytes outside the
// known range appear in some files and are preserved by the codec;
// they are rendered numerically.
func (b BlendType) String() string {
	switch b {
	case BlendNone:
		return "None"
	case BlendVisible:
		return "Visible"
	case BlendLightmap:
		return "Lightmap"
	case BlendTransparent:
		return "Transparent"
	}
	return "BlendType(" + strconv.Itoa(int(b)) + ")"
}

// SimpleMesh is position-only geometry, used for colliders and for the
// sub-meshes of trigger boxes.
type SimpleMesh struct {
	Vertices  [][3]float32
	Triangles []Triangle
}

// TriggerBox is a named group of meshes marking a gameplay trigger
// volume.
type TriggerBox struct {
	Name   string
	Meshes []SimpleMesh
}

package rmesh

import (
	"bufio"
	"fmt"
	"io"

	"github.com/scpcb/roommesh"
)

// Dump writes to w a readable representation of the file decoded from
// r.
func (d Decoder) Dump(w io.Writer, r io.Reader) (warn, err error) {
	root, warn, err := d.Decode(r)
	if err != nil {
		return warn, err
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Meshes: %d {", len(root.Meshes))
	for i := range root.Meshes {
		dumpComplexMesh(bw, i, &root.Meshes[i])
	}
	fmt.Fprint(bw, "\n}")

	fmt.Fprintf(bw, "\nColliders: %d {", len(root.Colliders))
	for i := range root.Colliders {
		mesh := &root.Colliders[i]
		fmt.Fprintf(bw, "\n\t#%d: vertices:%d triangles:%d", i, len(mesh.Vertices), len(mesh.Triangles))
	}
	fmt.Fprint(bw, "\n}")

	fmt.Fprintf(bw, "\nTriggerBoxes: %d {", len(root.TriggerBoxes))
	for i, box := range root.TriggerBoxes {
		fmt.Fprintf(bw, "\n\t#%d: %q meshes:%d", i, box.Name, len(box.Meshes))
	}
	fmt.Fprint(bw, "\n}")

	fmt.Fprintf(bw, "\nEntities: %d {", len(root.Entities))
	for i, ent := range root.Entities {
		dumpEntity(bw, i, ent)
	}
	fmt.Fprint(bw, "\n}\n")

	return warn, bw.Flush()
}

func dumpComplexMesh(w *bufio.Writer, i int, mesh *roommesh.ComplexMesh) {
	fmt.Fprintf(w, "\n\t#%d: {", i)
	for slot, tex := range mesh.Textures {
		if tex.BlendType == roommesh.BlendNone {
			fmt.Fprintf(w, "\n\t\tTexture %d: %s", slot, tex.BlendType)
		} else {
			fmt.Fprintf(w, "\n\t\tTexture %d: %s %q", slot, tex.BlendType, tex.Path)
		}
	}
	fmt.Fprintf(w, "\n\t\tVertices: %d", len(mesh.Vertices))
	fmt.Fprintf(w, "\n\t\tTriangles: %d", len(mesh.Triangles))
	b := mesh.Bounds()
	if len(mesh.Vertices) > 0 {
		fmt.Fprintf(w, "\n\t\tBounds: %v .. %v", b.Min, b.Max)
	}
	fmt.Fprint(w, "\n\t}")
}

func dumpEntity(w *bufio.Writer, i int, ent roommesh.Entity) {
	fmt.Fprintf(w, "\n\t#%d: %s ", i, ent.Tag())
	switch ent := ent.(type) {
	case *roommesh.Screen:
		fmt.Fprintf(w, "%q at %v", ent.Name, ent.Position)
	case *roommesh.Waypoint:
		fmt.Fprintf(w, "at %v", ent.Position)
	case *roommesh.Light:
		fmt.Fprintf(w, "at %v range:%g color:%v intensity:%g", ent.Position, ent.Range, ent.Color, ent.Intensity)
	case *roommesh.Spotlight:
		fmt.Fprintf(w, "at %v range:%g color:%v intensity:%g angles:%v cone:%g..%g",
			ent.Position, ent.Range, ent.Color, ent.Intensity, ent.Angles, ent.InnerConeAngle, ent.OuterConeAngle)
	case *roommesh.SoundEmitter:
		fmt.Fprintf(w, "at %v reserved:%d,%g", ent.Position, ent.Reserved0, ent.Reserved1)
	case *roommesh.PlayerStart:
		fmt.Fprintf(w, "at %v angles:%q", ent.Position, ent.Angles)
	case *roommesh.Model:
		fmt.Fprintf(w, "%q at %v rotation:%v scale:%v", ent.Name, ent.Position, ent.Rotation, ent.Scale)
	default:
		fmt.Fprintf(w, "%#v", ent)
	}
}

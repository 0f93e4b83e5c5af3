package roommesh

import (
	"github.com/chewxy/math32"
)

// Bounds is an axis-aligned box enclosing a set of points.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// EmptyBounds returns the bounds of an empty point set: +Inf minimums
// and -Inf maximums. It is the identity for Union. Callers that need
// to distinguish "no geometry" must check the point count; empty
// bounds are not an error.
func EmptyBounds() Bounds {
	inf := math32.Inf(1)
	return Bounds{
		Min: [3]float32{inf, inf, inf},
		Max: [3]float32{-inf, -inf, -inf},
	}
}

// BoundsOf returns the componentwise min/max bounds of points.
func BoundsOf(points [][3]float32) Bounds {
	b := EmptyBounds()
	for _, p := range points {
		b = b.extend(p)
	}
	return b
}

// Union returns the smallest bounds enclosing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	for i := 0; i < 3; i++ {
		b.Min[i] = math32.Min(b.Min[i], o.Min[i])
		b.Max[i] = math32.Max(b.Max[i], o.Max[i])
	}
	return b
}

func (b Bounds) extend(p [3]float32) Bounds {
	for i := 0; i < 3; i++ {
		b.Min[i] = math32.Min(b.Min[i], p[i])
		b.Max[i] = math32.Max(b.Max[i], p[i])
	}
	return b
}

// Bounds returns the bounds of the mesh's vertex positions.
func (m *ComplexMesh) Bounds() Bounds {
	b := EmptyBounds()
	for _, v := range m.Vertices {
		b = b.extend(v.Position)
	}
	return b
}

// Bounds returns the bounds of the mesh's vertices.
func (m *SimpleMesh) Bounds() Bounds {
	return BoundsOf(m.Vertices)
}

// Bounds returns the bounds of the room's visible geometry. Colliders,
// trigger boxes, and entities do not contribute.
func (root *Root) Bounds() Bounds {
	b := EmptyBounds()
	for i := range root.Meshes {
		b = b.Union(root.Meshes[i].Bounds())
	}
	return b
}

// VertexNormals reconstructs smooth per-vertex normals for a triangle
// mesh. Each triangle's face normal, (v1-v0)×(v2-v0), is accumulated
// into the triangle's three vertices, and each accumulated vector is
// then normalized. A vertex referenced by no triangle keeps a zero
// normal rather than producing NaN. Triangles with out-of-range
// indices are skipped.
func VertexNormals(positions [][3]float32, triangles []Triangle) [][3]float32 {
	normals := make([][3]float32, len(positions))
	for _, tri := range triangles {
		if int(tri[0]) >= len(positions) ||
			int(tri[1]) >= len(positions) ||
			int(tri[2]) >= len(positions) {
			continue
		}
		v0 := positions[tri[0]]
		v1 := positions[tri[1]]
		v2 := positions[tri[2]]
		n := cross(sub(v1, v0), sub(v2, v0))
		for _, i := range tri {
			normals[i] = add(normals[i], n)
		}
	}
	for i, n := range normals {
		l := math32.Sqrt(dot(n, n))
		if l == 0 {
			continue
		}
		normals[i] = scale(n, 1/l)
	}
	return normals
}

// VertexNormals reconstructs smooth normals for the mesh's vertices.
func (m *ComplexMesh) VertexNormals() [][3]float32 {
	positions := make([][3]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = v.Position
	}
	return VertexNormals(positions, m.Triangles)
}

// VertexNormals reconstructs smooth normals for the mesh's vertices.
func (m *SimpleMesh) VertexNormals() [][3]float32 {
	return VertexNormals(m.Vertices, m.Triangles)
}

func add(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scale(a [3]float32, s float32) [3]float32 {
	return [3]float32{a[0] * s, a[1] * s, a[2] * s}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

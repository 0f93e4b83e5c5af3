package rmesh

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/anaminus/parse"
	"github.com/scpcb/roommesh"
	"github.com/scpcb/roommesh/errors"
)

////////////////////////////////////////////////////////////////

// readReporter counts the bytes consumed from the underlying reader,
// so that a failure can report the absolute offset at which it
// occurred.
type readReporter struct {
	r io.Reader
	n int64
}

func (r *readReporter) Read(p []byte) (n int, err error) {
	n, err = r.r.Read(p)
	r.n += int64(n)
	return n, err
}

func (r *readReporter) BytesRead() int64 {
	return r.n
}

////////////////////////////////////////////////////////////////

// readString reads a u32 byte length followed by that many bytes of
// UTF-8 text. Text that is not valid UTF-8 fails the read.
func readString(fr *parse.BinaryReader, data *string) (failed bool) {
	if fr.Err() != nil {
		return true
	}

	var length uint32
	if fr.Number(&length) {
		return true
	}

	s := make([]byte, length)
	if fr.Bytes(s) {
		return true
	}

	if !utf8.Valid(s) {
		return fr.Add(0, TextError{Raw: s})
	}

	*data = string(s)

	return false
}

// writeString writes a string as a u32 byte length followed by the
// string's bytes. The length is always derived from the string.
func writeString(fw *parse.BinaryWriter, data string) (failed bool) {
	if fw.Err() != nil {
		return true
	}

	if fw.Number(uint32(len(data))) {
		return true
	}

	return fw.Bytes([]byte(data))
}

// readTriple reads three byte values packed as a space-separated
// decimal string. The indirection through text is an artifact of the
// format and is preserved exactly.
func readTriple(fr *parse.BinaryReader, data *[3]uint8) (failed bool) {
	var s string
	if readString(fr, &s) {
		return true
	}

	fields := strings.Split(s, " ")
	if len(fields) != 3 {
		return fr.Add(0, TripleError{Text: s})
	}
	for i, field := range fields {
		n, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return fr.Add(0, TripleError{Text: s})
		}
		data[i] = uint8(n)
	}

	return false
}

func writeTriple(fw *parse.BinaryWriter, data [3]uint8) (failed bool) {
	fields := [3]string{
		strconv.FormatUint(uint64(data[0]), 10),
		strconv.FormatUint(uint64(data[1]), 10),
		strconv.FormatUint(uint64(data[2]), 10),
	}
	return writeString(fw, strings.Join(fields[:], " "))
}

func readVec3(fr *parse.BinaryReader, data *[3]float32) (failed bool) {
	for i := range data {
		if fr.Number(&data[i]) {
			return true
		}
	}
	return false
}

func writeVec3(fw *parse.BinaryWriter, data [3]float32) (failed bool) {
	for _, v := range data {
		if fw.Number(v) {
			return true
		}
	}
	return false
}

func readVec2(fr *parse.BinaryReader, data *[2]float32) (failed bool) {
	for i := range data {
		if fr.Number(&data[i]) {
			return true
		}
	}
	return false
}

func writeVec2(fw *parse.BinaryWriter, data [2]float32) (failed bool) {
	for _, v := range data {
		if fw.Number(v) {
			return true
		}
	}
	return false
}

func readTriangle(fr *parse.BinaryReader, data *roommesh.Triangle) (failed bool) {
	for i := range data {
		if fr.Number(&data[i]) {
			return true
		}
	}
	return false
}

func writeTriangle(fw *parse.BinaryWriter, data roommesh.Triangle) (failed bool) {
	for _, v := range data {
		if fw.Number(v) {
			return true
		}
	}
	return false
}

// checkTriangles reports, as warnings, triangles whose indices fall
// outside the vertex list they index into. Decoding keeps such
// triangles; the format itself does not forbid them.
func checkTriangles(triangles []roommesh.Triangle, vertices int, warns *errors.Errors) {
	for ti, tri := range triangles {
		for _, index := range tri {
			if int(index) >= vertices {
				*warns = warns.Append(TriangleIndexError{
					Triangle: ti,
					Index:    index,
					Vertices: vertices,
				})
				break
			}
		}
	}
}

////////////////////////////////////////////////////////////////

func readTexture(fr *parse.BinaryReader, tex *roommesh.Texture) (failed bool) {
	var blend uint8
	if fr.Number(&blend) {
		return true
	}
	tex.BlendType = roommesh.BlendType(blend)
	if tex.BlendType == roommesh.BlendNone {
		return false
	}
	return readString(fr, &tex.Path)
}

func writeTexture(fw *parse.BinaryWriter, tex roommesh.Texture) (failed bool) {
	if fw.Number(uint8(tex.BlendType)) {
		return true
	}
	if tex.BlendType == roommesh.BlendNone {
		return false
	}
	return writeString(fw, tex.Path)
}

func readComplexMesh(fr *parse.BinaryReader, mesh *roommesh.ComplexMesh, warns *errors.Errors) (failed bool) {
	for i := range mesh.Textures {
		if readTexture(fr, &mesh.Textures[i]) {
			return true
		}
	}

	var vertexCount uint32
	if fr.Number(&vertexCount) {
		return true
	}
	for i := uint32(0); i < vertexCount; i++ {
		var vertex roommesh.Vertex
		if readVec3(fr, &vertex.Position) {
			return true
		}
		for j := range vertex.TexCoords {
			if readVec2(fr, &vertex.TexCoords[j]) {
				return true
			}
		}
		if fr.Bytes(vertex.Color[:]) {
			return true
		}
		mesh.Vertices = append(mesh.Vertices, vertex)
	}

	var triangleCount uint32
	if fr.Number(&triangleCount) {
		return true
	}
	for i := uint32(0); i < triangleCount; i++ {
		var tri roommesh.Triangle
		if readTriangle(fr, &tri) {
			return true
		}
		mesh.Triangles = append(mesh.Triangles, tri)
	}

	checkTriangles(mesh.Triangles, len(mesh.Vertices), warns)
	return false
}

func writeComplexMesh(fw *parse.BinaryWriter, mesh *roommesh.ComplexMesh, warns *errors.Errors) (failed bool) {
	for _, tex := range mesh.Textures {
		if writeTexture(fw, tex) {
			return true
		}
	}

	if fw.Number(uint32(len(mesh.Vertices))) {
		return true
	}
	for _, vertex := range mesh.Vertices {
		if writeVec3(fw, vertex.Position) {
			return true
		}
		for _, uv := range vertex.TexCoords {
			if writeVec2(fw, uv) {
				return true
			}
		}
		if fw.Bytes(vertex.Color[:]) {
			return true
		}
	}

	if fw.Number(uint32(len(mesh.Triangles))) {
		return true
	}
	for _, tri := range mesh.Triangles {
		if writeTriangle(fw, tri) {
			return true
		}
	}

	checkTriangles(mesh.Triangles, len(mesh.Vertices), warns)
	return false
}

func readSimpleMesh(fr *parse.BinaryReader, mesh *roommesh.SimpleMesh, warns *errors.Errors) (failed bool) {
	var vertexCount uint32
	if fr.Number(&vertexCount) {
		return true
	}
	for i := uint32(0); i < vertexCount; i++ {
		var position [3]float32
		if readVec3(fr, &position) {
			return true
		}
		mesh.Vertices = append(mesh.Vertices, position)
	}

	var triangleCount uint32
	if fr.Number(&triangleCount) {
		return true
	}
	for i := uint32(0); i < triangleCount; i++ {
		var tri roommesh.Triangle
		if readTriangle(fr, &tri) {
			return true
		}
		mesh.Triangles = append(mesh.Triangles, tri)
	}

	checkTriangles(mesh.Triangles, len(mesh.Vertices), warns)
	return false
}

func writeSimpleMesh(fw *parse.BinaryWriter, mesh *roommesh.SimpleMesh, warns *errors.Errors) (failed bool) {
	if fw.Number(uint32(len(mesh.Vertices))) {
		return true
	}
	for _, position := range mesh.Vertices {
		if writeVec3(fw, position) {
			return true
		}
	}

	if fw.Number(uint32(len(mesh.Triangles))) {
		return true
	}
	for _, tri := range mesh.Triangles {
		if writeTriangle(fw, tri) {
			return true
		}
	}

	checkTriangles(mesh.Triangles, len(mesh.Vertices), warns)
	return false
}

// readTriggerBox reads a trigger box. On the wire the box's meshes
// precede its name.
func readTriggerBox(fr *parse.BinaryReader, box *roommesh.TriggerBox, warns *errors.Errors) (failed bool) {
	var meshCount uint32
	if fr.Number(&meshCount) {
		return true
	}
	for i := uint32(0); i < meshCount; i++ {
		var mesh roommesh.SimpleMesh
		if readSimpleMesh(fr, &mesh, warns) {
			return true
		}
		box.Meshes = append(box.Meshes, mesh)
	}
	return readString(fr, &box.Name)
}

func writeTriggerBox(fw *parse.BinaryWriter, box *roommesh.TriggerBox, warns *errors.Errors) (failed bool) {
	if fw.Number(uint32(len(box.Meshes))) {
		return true
	}
	for i := range box.Meshes {
		if writeSimpleMesh(fw, &box.Meshes[i], warns) {
			return true
		}
	}
	return writeString(fw, box.Name)
}

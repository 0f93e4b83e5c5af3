package rmesh

import (
	"io"

	"github.com/anaminus/parse"
	"github.com/scpcb/roommesh"
	"github.com/scpcb/roommesh/errors"
)

// Decoder decodes a stream of bytes into a roommesh.Root.
type Decoder struct{}

// Decode reads data from r and decodes it as a .rmesh file. Decoding
// is a single forward pass; any failure aborts the decode and returns
// a nil root, with the failure wrapped in a CodecError carrying the
// byte offset at which it occurred.
//
// Warnings report oddities that do not stop the decode, currently
// triangles whose indices fall outside their mesh's vertex list. The
// codec keeps such triangles as read; consumers must bounds-check
// before indexing.
func (d Decoder) Decode(r io.Reader) (root *roommesh.Root, warn, err error) {
	if r == nil {
		return nil, nil, errors.New("nil reader")
	}

	rr := &readReporter{r: r}
	fr := parse.NewBinaryReader(rr)

	var warns errors.Errors
	root = readRoot(fr, &warns)
	warn = warns.Return()

	if _, err := fr.End(); err != nil {
		return nil, warn, CodecError{Offset: rr.BytesRead(), Cause: truncated(err)}
	}
	return root, warn, nil
}

// truncated maps end-of-input conditions from the underlying reader to
// ErrTruncated. Every fixed-size field and every declared payload must
// be present in full; there is no valid way for the input to end early.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

// readRoot reads the full document: header tag, meshes, colliders, the
// trigger-box section when the tag announces one, then entities.
func readRoot(fr *parse.BinaryReader, warns *errors.Errors) *roommesh.Root {
	root := roommesh.Root{}

	var tag string
	if readString(fr, &tag) {
		return &root
	}
	hasTriggerBoxes := false
	switch tag {
	case TagSimple:
	case TagTriggerBox:
		hasTriggerBoxes = true
	default:
		fr.Add(0, FormatTagError{Tag: tag})
		return &root
	}

	var meshCount uint32
	if fr.Number(&meshCount) {
		return &root
	}
	for i := uint32(0); i < meshCount; i++ {
		var mesh roommesh.ComplexMesh
		if readComplexMesh(fr, &mesh, warns) {
			return &root
		}
		root.Meshes = append(root.Meshes, mesh)
	}

	var colliderCount uint32
	if fr.Number(&colliderCount) {
		return &root
	}
	for i := uint32(0); i < colliderCount; i++ {
		var mesh roommesh.SimpleMesh
		if readSimpleMesh(fr, &mesh, warns) {
			return &root
		}
		root.Colliders = append(root.Colliders, mesh)
	}

	// The trigger-box section, count included, exists on the wire only
	// under the trigger-box tag. For the simple tag it is entirely
	// absent, not zero-length.
	if hasTriggerBoxes {
		var boxCount uint32
		if fr.Number(&boxCount) {
			return &root
		}
		for i := uint32(0); i < boxCount; i++ {
			var box roommesh.TriggerBox
			if readTriggerBox(fr, &box, warns) {
				return &root
			}
			root.TriggerBoxes = append(root.TriggerBoxes, box)
		}
	}

	var entityCount uint32
	if fr.Number(&entityCount) {
		return &root
	}
	for i := uint32(0); i < entityCount; i++ {
		ent, failed := readEntity(fr)
		if failed {
			return &root
		}
		root.Entities = append(root.Entities, ent)
	}

	return &root
}

package rmesh

import (
	"io"

	"github.com/anaminus/parse"
	"github.com/scpcb/roommesh"
	"github.com/scpcb/roommesh/errors"
)

// Encoder encodes a roommesh.Root into a stream of bytes.
type Encoder struct{}

// Encode writes root to w in the .rmesh format. The header tag and
// every count field are derived from the content of root; callers
// cannot override them. The trigger-box tag is written exactly when
// root has at least one trigger box.
//
// Warnings mirror the decoder's: triangles whose indices fall outside
// their mesh's vertex list are reported but still written.
func (e Encoder) Encode(w io.Writer, root *roommesh.Root) (warn, err error) {
	if w == nil {
		return nil, errors.New("nil writer")
	}
	if root == nil {
		return nil, errors.New("nil root")
	}

	fw := parse.NewBinaryWriter(w)

	var warns errors.Errors
	writeRoot(fw, root, &warns)
	warn = warns.Return()

	_, err = fw.End()
	return warn, err
}

func writeRoot(fw *parse.BinaryWriter, root *roommesh.Root, warns *errors.Errors) (failed bool) {
	tag := TagSimple
	if len(root.TriggerBoxes) > 0 {
		tag = TagTriggerBox
	}
	if writeString(fw, tag) {
		return true
	}

	if fw.Number(uint32(len(root.Meshes))) {
		return true
	}
	for i := range root.Meshes {
		if writeComplexMesh(fw, &root.Meshes[i], warns) {
			return true
		}
	}

	if fw.Number(uint32(len(root.Colliders))) {
		return true
	}
	for i := range root.Colliders {
		if writeSimpleMesh(fw, &root.Colliders[i], warns) {
			return true
		}
	}

	if len(root.TriggerBoxes) > 0 {
		if fw.Number(uint32(len(root.TriggerBoxes))) {
			return true
		}
		for i := range root.TriggerBoxes {
			if writeTriggerBox(fw, &root.TriggerBoxes[i], warns) {
				return true
			}
		}
	}

	if fw.Number(uint32(len(root.Entities))) {
		return true
	}
	for _, ent := range root.Entities {
		if writeEntity(fw, ent) {
			return true
		}
	}

	return false
}

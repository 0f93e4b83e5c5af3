// Package rmesh implements a decoder and encoder for the .rmesh binary
// file format, which stores one room's visible geometry, collision
// geometry, trigger volumes, and placed entities.
//
// Files are decoded into and encoded from roommesh.Root structures
// specified by the roommesh package. Decoding is a single forward pass
// over the input; encoding derives every count field and the header
// tag from the content being written, so a Root cannot be written in a
// self-contradictory way.
//
// The format is little-endian throughout. It carries no checksums, no
// padding, and no version field beyond the textual header tag.
package rmesh

// Format tags recognized at the start of a file. The trigger-box tag
// announces the presence of the trigger-box section; it is written
// exactly when the document has at least one trigger box.
const (
	TagSimple     = "RoomMesh"
	TagTriggerBox = "RoomMesh.HasTriggerBox"
)

package rmesh

import (
	"errors"
	"fmt"
)

var (
	// Indicates that the data ended before the next field could be
	// read in full.
	ErrTruncated = errors.New("unexpected end of data")
)

// FormatTagError indicates a header tag not recognized by the codec.
type FormatTagError struct {
	Tag string
}

func (err FormatTagError) Error() string {
	return fmt.Sprintf("unrecognized format tag %q (expected %q or %q)", err.Tag, TagSimple, TagTriggerBox)
}

// EntityTagError indicates an entity tag not known by the codec. The
// format provides no framing around entity payloads, so decoding
// cannot resume past an unknown tag.
type EntityTagError struct {
	Tag string
}

func (err EntityTagError) Error() string {
	return fmt.Sprintf("unknown entity tag %q", err.Tag)
}

// TextError indicates a length-prefixed string whose payload is not
// valid UTF-8.
type TextError struct {
	Raw []byte
}

func (err TextError) Error() string {
	return fmt.Sprintf("string %q is not valid UTF-8", err.Raw)
}

// TripleError indicates a numeric-triple string that does not consist
// of exactly three decimal byte values separated by spaces.
type TripleError struct {
	Text string
}

func (err TripleError) Error() string {
	return fmt.Sprintf("malformed numeric triple %q", err.Text)
}

// TriangleIndexError reports a triangle that refers to a vertex
// outside its mesh's vertex list. The codec reports it as a warning
// and keeps the triangle as decoded; consumers must not index with it.
type TriangleIndexError struct {
	// Triangle is the position of the offending triangle within its
	// mesh.
	Triangle int

	// Index is the out-of-range vertex index.
	Index uint32

	// Vertices is the size of the mesh's vertex list.
	Vertices int
}

func (err TriangleIndexError) Error() string {
	return fmt.Sprintf("triangle %d refers to vertex %d of %d", err.Triangle, err.Index, err.Vertices)
}

// CodecError wraps an error that stopped a decode, with the absolute
// offset of the input byte at which it occurred.
type CodecError struct {
	Offset int64

	Cause error
}

func (err CodecError) Error() string {
	return fmt.Sprintf("offset %d: %s", err.Offset, err.Cause.Error())
}

func (err CodecError) Unwrap() error {
	return err.Cause
}

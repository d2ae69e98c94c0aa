package avi

import (
	"errors"
	"fmt"
)

// Error wraps any failure raised while opening or decoding an AVI source
// with the operation that was in progress, in the teacher's AVIError style.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("avi: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Sentinel error kinds, comparable with errors.Is.
var (
	// ErrNotAnAVI is returned when the file header is missing 'RIFF' or
	// 'AVI '.
	ErrNotAnAVI = errors.New("avi: not an AVI file")
	// ErrUnexpectedEOF is returned when a declared chunk or frame size
	// extends past the end of the source.
	ErrUnexpectedEOF = errors.New("avi: unexpected end of file")
)

// MissingRequiredChunkError reports that a required chunk was not found
// within its search range.
type MissingRequiredChunkError struct {
	FourCC FourCC
}

func (e *MissingRequiredChunkError) Error() string {
	return fmt.Sprintf("required chunk '%s' not found", e.FourCC)
}

// UnsupportedCompressionError reports a BITMAPINFO compression tag with no
// known decode plan.
type UnsupportedCompressionError struct {
	Compression FourCC
}

func (e *UnsupportedCompressionError) Error() string {
	return fmt.Sprintf("unsupported compression '%s'", e.Compression)
}

// UnsupportedBitCountError reports a bit depth not allowed for the resolved
// compression family.
type UnsupportedBitCountError struct {
	Bits        uint16
	Compression FourCC
}

func (e *UnsupportedBitCountError) Error() string {
	return fmt.Sprintf("unsupported %d bits/pixel for compression '%s'", e.Bits, e.Compression)
}

// UnsupportedMultisampleError reports a video stream with more than one
// sample (frame) per chunk, which this decoder does not support.
type UnsupportedMultisampleError struct {
	SampleSize uint32
}

func (e *UnsupportedMultisampleError) Error() string {
	return fmt.Sprintf("video stream with %d (more than 1) samples/chunk not supported", e.SampleSize)
}

// TruncatedPaletteError reports a palette that doesn't fit in the remaining
// bytes of its 'strf' chunk.
type TruncatedPaletteError struct {
	Available int64
	Needed    int64
}

func (e *TruncatedPaletteError) Error() string {
	return fmt.Sprintf("not enough data (%d) for palette of size %d", e.Available, e.Needed)
}

// TruncatedFrameError reports a movie-data chunk shorter than its decode
// plan requires.
type TruncatedFrameError struct {
	Expected int
	Got      int
}

func (e *TruncatedFrameError) Error() string {
	return fmt.Sprintf("data chunk size %d too short (%d required)", e.Got, e.Expected)
}

// IndexOutOfRangeError reports an out-of-range virtual-index access: a
// programming error, distinct from malformed source data.
type IndexOutOfRangeError struct {
	N, Size int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("argument out of range: %d (stack has %d slices)", e.N, e.Size)
}

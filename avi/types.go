// Package avi implements a reader for uncompressed and packed-YUV AVI
// (RIFF) video files: RIFF chunk traversal, BITMAPINFO interpretation, and
// pixel decoding into 8-bit indexed/gray or 32-bit RGBA buffers.
package avi

import "fmt"

// FourCC is a 32-bit chunk or compression tag, assembled little-endian from
// four ASCII bytes in on-disk order (so fourCC("RIFF") reads back as "RIFF").
type FourCC uint32

func fourCC(s string) FourCC {
	b := []byte(s)
	return FourCC(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}

func (f FourCC) String() string {
	return string([]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)})
}

// Known chunk, list and stream-type tags.
var (
	fccRIFF = fourCC("RIFF")
	fccAVI  = fourCC("AVI ")
	fccLIST = fourCC("LIST")
	fccHDRL = fourCC("hdrl")
	fccAVIH = fourCC("avih")
	fccSTRL = fourCC("strl")
	fccSTRH = fourCC("strh")
	fccSTRF = fourCC("strf")
	fccMOVI = fourCC("movi")
	fccVIDS = fourCC("vids")
)

// Compression tags recognized by the format resolver (§4.3).
var (
	compNone = FourCC(0)
	compRGB  = fourCC("RGB ")
	compRAW  = fourCC("RAW ")
	compY800 = fourCC("Y800")
	compY8   = fourCC("Y8  ")
	compGREY = fourCC("GREY")
	compY16  = fourCC("Y16 ")
	compAYUV = fourCC("AYUV")
	compUYVY = fourCC("UYVY")
	compUYNV = fourCC("UYNV")
	compCYUV = fourCC("cyuv")
	compV422 = fourCC("V422")
	compYUY2 = fourCC("YUY2")
	compYUNV = fourCC("YUNV")
	compYUYV = fourCC("YUYV")
	compYVYU = fourCC("YVYU")
)

// AviHeader holds the fields of the required 'avih' chunk, read verbatim.
// Width/Height here are informational; the BITMAPINFO in 'strf' governs
// decoding.
type AviHeader struct {
	MicrosPerFrame      uint32
	MaxBytesPerSec       uint32
	PaddingGranularity   uint32
	Flags                uint32
	TotalFrames          uint32
	InitialFrames        uint32
	Streams              uint32
	SuggestedBufferSize  uint32
	Width                uint32
	Height               uint32
	Scale                uint32
	Rate                 uint32
	Start                uint32
	Length               uint32
}

// StreamHeader holds the fields of the video stream's 'strh' chunk that the
// decoder needs. StreamKind must equal 'vids' for the stream to be selected.
type StreamHeader struct {
	StreamKind FourCC
	SampleSize uint32
}

// BitmapInfo is the 'strf' BITMAPINFOHEADER describing the video stream's
// pixel format.
type BitmapInfo struct {
	Width       int32
	Height      int32 // negative means top-down in RGB-family layouts
	BitCount    uint16
	Compression FourCC
	ColorsUsed  uint32
}

// Layout is a normalized pixel-packing family a DecodePlan resolves to.
type Layout int

const (
	LayoutRGB Layout = iota
	LayoutIndexedPalette
	LayoutGray8
	LayoutGray16
	LayoutAYUV
	LayoutUYVY
	LayoutYUY2
	LayoutYVYU
)

func (l Layout) String() string {
	switch l {
	case LayoutRGB:
		return "RGB"
	case LayoutIndexedPalette:
		return "IndexedPalette"
	case LayoutGray8:
		return "Gray8"
	case LayoutGray16:
		return "Gray16"
	case LayoutAYUV:
		return "AYUV"
	case LayoutUYVY:
		return "UYVY"
	case LayoutYUY2:
		return "YUY2"
	case LayoutYVYU:
		return "YVYU"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Palette carries a 256-entry (but possibly partially-filled) R/G/B color
// table for an IndexedPalette plan. It is attached to the produced Gray8Image
// rather than resolved to color at decode time, so a display collaborator can
// resolve RGB at render time.
type Palette struct {
	R, G, B [256]uint8
	// Used is the number of leading entries that were actually populated
	// from the file (colors_used, or 1<<bits when the file declared 0).
	Used int
}

// DecodePlan is the normalized, immutable description of how to unpack one
// frame's raw bytes into pixels, derived from a BitmapInfo by the format
// resolver (§4.3).
type DecodePlan struct {
	Bits    uint16
	Layout  Layout
	TopDown bool
	Width   int
	Height  int
	Stride  int
	Palette *Palette // non-nil iff Layout == LayoutIndexedPalette
}

// outputsGray reports whether this plan produces Gray8 pixels: always for
// sources that carry no color information (indexed, native grayscale), which
// have nothing else to output, and otherwise only when convertToGray is set.
func (p *DecodePlan) outputsGray(convertToGray bool) bool {
	switch p.Layout {
	case LayoutIndexedPalette, LayoutGray8, LayoutGray16:
		return true
	default:
		return convertToGray
	}
}

// FrameRecord locates one undecoded frame in the source for lazy decoding.
type FrameRecord struct {
	FileOffset      uint64
	ByteSize        uint32
	TimestampMicros uint64
}

// Gray8Image is an 8-bit-per-pixel output buffer, optionally carrying an
// indexed palette for display-time color resolution.
type Gray8Image struct {
	Width, Height int
	Pixels        []byte
	Palette       *Palette
}

// Rgba32Image is a 32-bit packed RGBA output buffer, one int per pixel as
// 0xAARRGGBB with alpha forced to 0xff.
type Rgba32Image struct {
	Width, Height int
	Pixels        []uint32
}

// Frame is one decoded frame: exactly one of Gray or Color is set, matching
// DecodePlan.outputsGray for the options the frame was decoded with.
type Frame struct {
	Gray            *Gray8Image
	Color           *Rgba32Image
	TimestampMicros uint64
}

// Options are the explicit, immutable decode parameters a caller supplies at
// construction time (no package-level mutable configuration, unlike the
// original Java plugin's static dialog fields).
type Options struct {
	// FirstFrameNumber is the 1-based inclusive start frame. Values < 1 are
	// treated as 1.
	FirstFrameNumber int
	// LastFrameNumber: >0 is an inclusive absolute end frame; 0 means "read
	// until EOF"; <0 means "TotalFrames + LastFrameNumber", or until EOF
	// when the 'avih' header declares TotalFrames as 0.
	LastFrameNumber int
	// IsVirtual, when true, builds a VirtualIndex instead of decoding
	// eagerly.
	IsVirtual bool
	// ConvertToGray forces grayscale output for color (RGB/YUV) sources.
	ConvertToGray bool
	// FlipVertical XORs the source's top-down orientation.
	FlipVertical bool
}

// DefaultOptions returns the Options a bare Open/Decode call should use:
// read frame 1 through EOF, eager, no gray conversion, no flip.
func DefaultOptions() Options {
	return Options{FirstFrameNumber: 1}
}

func (o Options) normalize() Options {
	if o.FirstFrameNumber < 1 {
		o.FirstFrameNumber = 1
	}
	return o
}

// Result is what Decoder.Decode returns: Frames is populated for eager
// decoding, Index for virtual (lazy) decoding — never both.
type Result struct {
	Frames []Frame
	Index  *VirtualIndex
}

package avi

import (
	"bytes"
	"encoding/binary"
)

// Fixture builders assemble minimal, valid RIFF/AVI byte streams in memory
// for the scenario and property tests below, grounded on §4 of the format
// this package decodes: one 'avih', one video 'strl', one 'movi' list of
// 'NNdb' chunks.

func leU32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func leU16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func leI32(v int32) []byte { return leU32(uint32(v)) }

// chunkBytes assembles one RIFF chunk: 4-byte FourCC, 4-byte LE size, the
// payload, and a zero pad byte if the payload length is odd.
func chunkBytes(fourcc string, payload []byte) []byte {
	if len(fourcc) != 4 {
		panic("fixture: fourcc must be 4 bytes: " + fourcc)
	}
	out := make([]byte, 0, 8+len(payload)+1)
	out = append(out, []byte(fourcc)...)
	out = append(out, leU32(uint32(len(payload)))...)
	out = append(out, payload...)
	if len(payload)%2 == 1 {
		out = append(out, 0)
	}
	return out
}

func listBytes(listType string, inner ...[]byte) []byte {
	payload := []byte(listType)
	for _, b := range inner {
		payload = append(payload, b...)
	}
	return chunkBytes("LIST", payload)
}

// avihPayload builds the 14-field, 56-byte 'avih' body.
func avihPayload(micros, totalFrames, width, height uint32) []byte {
	var p []byte
	p = append(p, leU32(micros)...)     // dwMicroSecPerFrame
	p = append(p, leU32(0)...)          // dwMaxBytesPerSec
	p = append(p, leU32(0)...)          // dwReserved1 (padding granularity)
	p = append(p, leU32(0)...)          // dwFlags
	p = append(p, leU32(totalFrames)...)
	p = append(p, leU32(0)...) // dwInitialFrames
	p = append(p, leU32(1)...) // dwStreams
	p = append(p, leU32(0)...) // dwSuggestedBufferSize
	p = append(p, leU32(width)...)
	p = append(p, leU32(height)...)
	p = append(p, leU32(0)...) // dwScale
	p = append(p, leU32(0)...) // dwRate
	p = append(p, leU32(0)...) // dwStart
	p = append(p, leU32(0)...) // dwLength
	return p
}

// strhPayload builds an 'strh' chunk body: the stream-kind FourCC plus 10
// trailing u32 fields; rcFrame is intentionally omitted since the scanner
// repositions to the chunk's declared end regardless of what the parser read.
func strhPayload(streamKind string, sampleSize uint32) []byte {
	p := []byte(streamKind)
	p = append(p, leU32(0)...) // Flags
	p = append(p, leU32(0)...) // Reserved1
	p = append(p, leU32(0)...) // InitialFrames
	p = append(p, leU32(1)...) // Scale
	p = append(p, leU32(1)...) // Rate
	p = append(p, leU32(0)...) // Start
	p = append(p, leU32(0)...) // Length
	p = append(p, leU32(0)...) // SuggestedBufferSize
	p = append(p, leU32(0)...) // Quality
	p = append(p, leU32(sampleSize)...)
	return p
}

// strfPayload builds a 40-byte BITMAPINFOHEADER body followed by an optional
// B,G,R,reserved palette.
func strfPayload(width, height int32, bitCount uint16, compression string, colorsUsed uint32, palette []byte) []byte {
	var p []byte
	p = append(p, leU32(40)...) // biSize
	p = append(p, leI32(width)...)
	p = append(p, leI32(height)...)
	p = append(p, leU16(1)...) // biPlanes
	p = append(p, leU16(bitCount)...)
	p = append(p, []byte(compression)...)
	p = append(p, leU32(0)...) // biSizeImage
	p = append(p, leU32(0)...) // biXPelsPerMeter
	p = append(p, leU32(0)...) // biYPelsPerMeter
	p = append(p, leU32(colorsUsed)...)
	p = append(p, leU32(0)...) // biClrImportant
	p = append(p, palette...)
	return p
}

// bgrPalette packs entries (each {r,g,b}) into B,G,R,reserved on-disk order.
func bgrPalette(entries ...[3]byte) []byte {
	var p []byte
	for _, e := range entries {
		r, g, b := e[0], e[1], e[2]
		p = append(p, b, g, r, 0)
	}
	return p
}

// aviFixture assembles a full RIFF/AVI byte stream with one hdrl (avih +
// strl(streamKind/strh, strf)) and one movi list of data chunks.
func aviFixture(micros, totalFrames uint32, width, height int32, bitCount uint16, compression string, colorsUsed uint32, palette []byte, streamKind string, dataChunks ...[]byte) []byte {
	avih := chunkBytes("avih", avihPayload(micros, totalFrames, uint32(width), uint32(height)))
	strh := chunkBytes("strh", strhPayload(streamKind, 0))
	strf := chunkBytes("strf", strfPayload(width, height, bitCount, compression, colorsUsed, palette))
	strl := listBytes("strl", strh, strf)
	hdrl := listBytes("hdrl", avih, strl)

	movi := listBytes("movi", dataChunks...)

	aviPayload := append([]byte("AVI "), hdrl...)
	aviPayload = append(aviPayload, movi...)
	return chunkBytes("RIFF", aviPayload)
}

// aviFixtureWithAudio is aviFixture but with a preceding non-video 'strl'
// (stream kind 'auds'), so the accepted video stream's index is 1.
func aviFixtureWithAudio(micros, totalFrames uint32, width, height int32, bitCount uint16, compression string, colorsUsed uint32, palette []byte, dataChunks ...[]byte) []byte {
	avih := chunkBytes("avih", avihPayload(micros, totalFrames, uint32(width), uint32(height)))

	audStrh := chunkBytes("strh", strhPayload("auds", 0))
	audStrf := chunkBytes("strf", nil)
	audStrl := listBytes("strl", audStrh, audStrf)

	vidStrh := chunkBytes("strh", strhPayload("vids", 0))
	vidStrf := chunkBytes("strf", strfPayload(width, height, bitCount, compression, colorsUsed, palette))
	vidStrl := listBytes("strl", vidStrh, vidStrf)

	hdrl := listBytes("hdrl", avih, audStrl, vidStrl)
	movi := listBytes("movi", dataChunks...)

	aviPayload := append([]byte("AVI "), hdrl...)
	aviPayload = append(aviPayload, movi...)
	return chunkBytes("RIFF", aviPayload)
}

// newSourceFromBytes hands a fully-assembled fixture to Open/DecodeAll as an
// io.ReadSeeker. Every fixture above is built bottom-up into one byte slice
// before decoding starts, so a plain bytes.Reader is all this package's
// tests ever need — no test fixture here seeks mid-write the way a real
// encoder's output buffer might.
func newSourceFromBytes(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

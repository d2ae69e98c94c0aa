package avi

import (
	"encoding/binary"
	"io"
)

// byteReader provides little-endian primitives over a seekable source
// (component A). It never buffers across seeks, so a short read of a
// declared size surfaces as ErrUnexpectedEOF rather than silently returning
// fewer bytes.
type byteReader struct {
	r    io.ReadSeeker
	size int64
}

func newByteReader(r io.ReadSeeker) (*byteReader, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return &byteReader{r: r, size: size}, nil
}

func (b *byteReader) length() int64 { return b.size }

func (b *byteReader) tell() (int64, error) {
	return b.r.Seek(0, io.SeekCurrent)
}

func (b *byteReader) seek(offset int64) error {
	_, err := b.r.Seek(offset, io.SeekStart)
	return err
}

func (b *byteReader) readExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(b.r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}

func (b *byteReader) readU32LE() (uint32, error) {
	buf, err := b.readExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func (b *byteReader) readU16LE() (uint16, error) {
	buf, err := b.readExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

func (b *byteReader) readI32LE() (int32, error) {
	v, err := b.readU32LE()
	return int32(v), err
}

func (b *byteReader) readI16LE() (int16, error) {
	v, err := b.readU16LE()
	return int16(v), err
}

func (b *byteReader) readFourCC() (FourCC, error) {
	v, err := b.readU32LE()
	return FourCC(v), err
}

func align2(n int64) int64 {
	return (n + 1) &^ 1
}

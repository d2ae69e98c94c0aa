package avi

import (
	"io"
)

// Decoder holds the header state parsed from one AVI source and drives
// frame decoding. Header state is populated once by Open and is immutable
// thereafter.
type Decoder struct {
	br       *byteReader
	opts     Options
	reporter Reporter

	streamNumber int // count of non-vids strl chunks seen before the accepted video stream
	header       AviHeader
	streamHeader StreamHeader
	bitmapInfo   BitmapInfo
	plan         DecodePlan
	planReady    bool

	pendingFrames  []Frame
	pendingRecords []FrameRecord
}

// Open validates the RIFF/AVI signature and parses the header list ('hdrl',
// including the first 'vids' stream's 'strh'/'strf'), leaving the source
// positioned to scan for 'movi'. The byte source is held until Decode
// finishes (eager mode) or the returned Decoder/VirtualIndex is discarded.
func Open(r io.ReadSeeker, opts Options, reporter Reporter) (*Decoder, error) {
	if reporter == nil {
		reporter = NoopReporter{}
	}
	br, err := newByteReader(r)
	if err != nil {
		return nil, &Error{Op: "open", Err: err}
	}
	d := &Decoder{br: br, opts: opts.normalize(), reporter: reporter}
	if err := d.readHeader(); err != nil {
		return nil, &Error{Op: "open", Err: err}
	}
	return d, nil
}

func (d *Decoder) readHeader() error {
	sig, err := d.br.readFourCC()
	if err != nil {
		return err
	}
	if sig != fccRIFF {
		return ErrNotAnAVI
	}
	if _, err := d.br.readU32LE(); err != nil { // overall RIFF size, unused
		return err
	}
	riffType, err := d.br.readFourCC()
	if err != nil {
		return err
	}
	if riffType != fccAVI {
		return ErrNotAnAVI
	}

	d.reporter.Log("debug", "file header: RIFF/AVI signature ok")

	length := d.br.length()
	if _, err := d.findAndRead(fccHDRL, true, length, true); err != nil {
		return err
	}
	if !d.planReady {
		return &MissingRequiredChunkError{FourCC: fccSTRF}
	}
	return nil
}

// AviHeader returns the parsed 'avih' header.
func (d *Decoder) AviHeader() AviHeader { return d.header }

// DecodePlan returns the resolved decode plan for the accepted video stream.
func (d *Decoder) DecodePlan() DecodePlan { return d.plan }

// findAndRead is the chunk scanner's primitive search (component B),
// grounded on AVI_Reader.java's findFourccAndRead: it advances through
// chunks until end, matching `target` (optionally unwrapping a LIST's inner
// FourCC first), dispatching matches to readContents, and continuing the
// search past a match whose content was rejected (e.g. a non-video strl).
func (d *Decoder) findAndRead(target FourCC, isList bool, end int64, required bool) (bool, error) {
	for {
		pos, err := d.br.tell()
		if err != nil {
			return false, err
		}
		if pos >= end {
			if required {
				return false, &MissingRequiredChunkError{FourCC: target}
			}
			return false, nil
		}

		typ, err := d.br.readFourCC()
		if err != nil {
			return false, err
		}
		size, err := d.br.readU32LE()
		if err != nil {
			return false, err
		}
		nextPos := align2(pos + 8 + int64(size))

		effective := typ
		if isList && typ == fccLIST {
			inner, err := d.br.readFourCC()
			if err != nil {
				return false, err
			}
			effective = inner
		}

		if effective == target {
			ok, err := d.readContents(target, nextPos)
			if err != nil {
				return false, err
			}
			if ok {
				if err := d.br.seek(nextPos); err != nil {
					return false, err
				}
				return true, nil
			}
		}
		if err := d.br.seek(nextPos); err != nil {
			return false, err
		}
	}
}

// readContents dispatches a matched chunk to its per-type parser, bounded by
// endPosition. It mirrors AVI_Reader.java's readContents switch: a false
// return (without error) means "content rejected, keep searching" — used to
// skip non-video strl chunks and to propagate a missing strh up through strl.
func (d *Decoder) readContents(target FourCC, endPosition int64) (bool, error) {
	switch target {
	case fccHDRL:
		if _, err := d.findAndRead(fccAVIH, false, endPosition, true); err != nil {
			return false, err
		}
		if _, err := d.findAndRead(fccSTRL, true, endPosition, true); err != nil {
			return false, err
		}
		return true, nil

	case fccAVIH:
		return true, d.parseAvih()

	case fccSTRL:
		found, err := d.findAndRead(fccSTRH, false, endPosition, false)
		if err != nil {
			return false, err
		}
		if !found {
			return false, nil
		}
		if _, err := d.findAndRead(fccSTRF, false, endPosition, true); err != nil {
			return false, err
		}
		return true, nil

	case fccSTRH:
		streamKind, err := d.br.readFourCC()
		if err != nil {
			return false, err
		}
		if streamKind != fccVIDS {
			d.reporter.Log("debug", "non-video stream '"+streamKind.String()+"' skipped")
			d.streamNumber++
			return false, nil
		}
		return true, d.parseStrh()

	case fccSTRF:
		return true, d.parseStrf(endPosition)

	case fccMOVI:
		return true, d.parseMovi(endPosition)
	}
	panic("avi: internal: readContents dispatched for unhandled target " + target.String())
}

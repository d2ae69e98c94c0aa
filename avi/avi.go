package avi

import (
	"io"
	"time"
)

// Decode scans for the 'movi' chunk and, per d.opts.IsVirtual, either
// decodes every matched frame in range eagerly (Result.Frames) or builds a
// VirtualIndex for on-demand decoding (Result.Index). Call exactly once per
// Decoder: the underlying source position is not rewindable afterwards.
func (d *Decoder) Decode() (*Result, error) {
	_, err := d.findAndRead(fccMOVI, true, d.br.length(), true)
	if err != nil {
		if err == errStopDecoding {
			err = nil
		} else {
			return nil, &Error{Op: "decode", Err: err}
		}
	}

	if d.opts.IsVirtual {
		return &Result{Index: &VirtualIndex{dec: d, records: d.pendingRecords}}, nil
	}
	return &Result{Frames: d.pendingFrames}, nil
}

// DecodeAll is a convenience wrapper for eager decoding: it forces
// IsVirtual off and returns the decoded frames directly.
func DecodeAll(r io.ReadSeeker, opts Options, reporter Reporter) ([]Frame, error) {
	opts.IsVirtual = false
	start := time.Now()
	d, err := Open(r, opts, reporter)
	if err != nil {
		return nil, err
	}
	result, err := d.Decode()
	if err != nil {
		return nil, err
	}
	d.reporter.Log("debug", "decode finished in "+time.Since(start).String())
	return result.Frames, nil
}

// BuildIndex is a convenience wrapper for lazy decoding: it forces
// IsVirtual on and returns the VirtualIndex directly.
func BuildIndex(r io.ReadSeeker, opts Options, reporter Reporter) (*VirtualIndex, error) {
	opts.IsVirtual = true
	start := time.Now()
	d, err := Open(r, opts, reporter)
	if err != nil {
		return nil, err
	}
	result, err := d.Decode()
	if err != nil {
		return nil, err
	}
	d.reporter.Log("debug", "index built in "+time.Since(start).String())
	return result.Index, nil
}

package avi

// VirtualIndex stores FrameRecords in discovery order for lazy, random-access
// decoding (component G). Frame numbering is 1-based; deletion preserves the
// order of surviving entries without renumbering them.
type VirtualIndex struct {
	dec     *Decoder
	records []FrameRecord
}

// Size returns the number of slices currently in the index.
func (v *VirtualIndex) Size() int { return len(v.records) }

// GetProcessor seeks the byte source and decodes slice n (1-based).
// Out-of-range n is a programming error, distinct from a data error.
func (v *VirtualIndex) GetProcessor(n int) (Frame, error) {
	if n < 1 || n > len(v.records) {
		return Frame{}, &IndexOutOfRangeError{N: n, Size: len(v.records)}
	}
	return v.dec.decodeFrame(v.records[n-1])
}

// SliceLabel returns the display label for slice n (1-based).
func (v *VirtualIndex) SliceLabel(n int) (string, error) {
	if n < 1 || n > len(v.records) {
		return "", &IndexOutOfRangeError{N: n, Size: len(v.records)}
	}
	return formatLabel(v.records[n-1].TimestampMicros), nil
}

// Delete removes slice n (1-based) from the index, preserving the relative
// order of the remaining slices.
func (v *VirtualIndex) Delete(n int) error {
	if n < 1 || n > len(v.records) {
		return &IndexOutOfRangeError{N: n, Size: len(v.records)}
	}
	v.records = append(v.records[:n-1], v.records[n:]...)
	return nil
}

// Record returns a copy of slice n's FrameRecord (1-based), for callers that
// need the raw offset/size/timestamp without decoding.
func (v *VirtualIndex) Record(n int) (FrameRecord, error) {
	if n < 1 || n > len(v.records) {
		return FrameRecord{}, &IndexOutOfRangeError{N: n, Size: len(v.records)}
	}
	return v.records[n-1], nil
}

package avi

// parseAvih reads the 56-byte main AVI header (component C). Field order is
// grounded on AVI_Reader.java's readAviHeader.
func (d *Decoder) parseAvih() error {
	vals := make([]uint32, 14)
	for i := range vals {
		v, err := d.br.readU32LE()
		if err != nil {
			return err
		}
		vals[i] = v
	}
	d.header = AviHeader{
		MicrosPerFrame:      vals[0],
		MaxBytesPerSec:      vals[1],
		PaddingGranularity:  vals[2],
		Flags:               vals[3],
		TotalFrames:         vals[4],
		InitialFrames:       vals[5],
		Streams:             vals[6],
		SuggestedBufferSize: vals[7],
		Width:               vals[8],
		Height:              vals[9],
		Scale:               vals[10],
		Rate:                vals[11],
		Start:               vals[12],
		Length:              vals[13],
	}
	d.reporter.Log("debug", "avih: parsed")
	return nil
}

// parseStrh reads the remaining fields of a 'strh' chunk whose stream type
// has already been confirmed 'vids' by readContents. Rejects multi-sample
// streams per spec.
func (d *Decoder) parseStrh() error {
	// Flags, Reserved1, InitialFrames, Scale, Rate, Start, Length,
	// SuggestedBufferSize, Quality, SampleSize -- rcFrame is ignored, like
	// the original; the scanner repositions past it regardless.
	var sampleSize uint32
	for i := 0; i < 10; i++ {
		v, err := d.br.readU32LE()
		if err != nil {
			return err
		}
		if i == 9 {
			sampleSize = v
		}
	}
	if sampleSize > 1 {
		return &UnsupportedMultisampleError{SampleSize: sampleSize}
	}
	d.streamHeader = StreamHeader{StreamKind: fccVIDS, SampleSize: sampleSize}
	d.reporter.Log("debug", "strh: video stream accepted")
	return nil
}

// parseStrf reads the 40-byte BITMAPINFOHEADER, resolves the DecodePlan
// (component D) and, for an IndexedPalette plan, reads the following palette.
func (d *Decoder) parseStrf(endPosition int64) error {
	if _, err := d.br.readU32LE(); err != nil { // biSize, unused
		return err
	}
	width, err := d.br.readI32LE()
	if err != nil {
		return err
	}
	height, err := d.br.readI32LE()
	if err != nil {
		return err
	}
	if _, err := d.br.readU16LE(); err != nil { // biPlanes
		return err
	}
	bitCount, err := d.br.readU16LE()
	if err != nil {
		return err
	}
	compression, err := d.br.readFourCC()
	if err != nil {
		return err
	}
	for i := 0; i < 3; i++ { // SizeImage, XPelsPerMeter, YPelsPerMeter
		if _, err := d.br.readU32LE(); err != nil {
			return err
		}
	}
	colorsUsed, err := d.br.readU32LE()
	if err != nil {
		return err
	}
	if _, err := d.br.readU32LE(); err != nil { // ClrImportant
		return err
	}

	bi := BitmapInfo{Width: width, Height: height, BitCount: bitCount, Compression: compression, ColorsUsed: colorsUsed}
	d.bitmapInfo = bi
	d.reporter.Log("debug", "strf: "+bi.Compression.String())

	plan, err := resolveFormat(bi)
	if err != nil {
		return err
	}

	if plan.Layout == LayoutIndexedPalette {
		used := int(colorsUsed)
		if used == 0 {
			used = 1 << bitCount
		}
		pos, err := d.br.tell()
		if err != nil {
			return err
		}
		available := endPosition - pos
		needed := int64(used) * 4
		if available < needed {
			return &TruncatedPaletteError{Available: available, Needed: needed}
		}
		pal := &Palette{Used: used}
		for i := 0; i < used; i++ {
			entry, err := d.br.readExact(4) // B, G, R, reserved
			if err != nil {
				return err
			}
			pal.B[i] = entry[0]
			pal.G[i] = entry[1]
			pal.R[i] = entry[2]
		}
		plan.Palette = pal
		d.reporter.Log("debug", "strf: read palette")
	}

	d.plan = plan
	d.planReady = true
	return nil
}

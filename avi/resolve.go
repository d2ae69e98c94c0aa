package avi

// resolveFormat maps a BitmapInfo to a normalized DecodePlan (component D),
// folding the compression aliases listed in §4.3. Any (compression,
// bit_count) combination outside the allowed matrix is rejected here, at
// plan time, per invariant 2.
func resolveFormat(bi BitmapInfo) (DecodePlan, error) {
	var layout Layout
	// topDownMode selects how TopDown is derived below: "declared" takes it
	// from the sign of bi.Height (the RGB family only); every other layout
	// hardcodes true or false per AVI_Reader.java's readBitMapInfo, which
	// only ever assigns dataTopDown=true for Gray8/UYVY/YUY2/YVYU and leaves
	// it at its false default for Y16/AYUV/cyuv/V422 regardless of the
	// file's declared height sign.
	const (
		topDownDeclared = iota
		topDownTrue
		topDownFalse
	)
	topDownMode := topDownDeclared

	switch bi.Compression {
	case compNone, compRGB, compRAW:
		switch bi.BitCount {
		case 8:
			layout = LayoutIndexedPalette
		case 24, 32:
			layout = LayoutRGB
		default:
			return DecodePlan{}, &UnsupportedBitCountError{Bits: bi.BitCount, Compression: bi.Compression}
		}
	case compY800, compY8, compGREY:
		if bi.BitCount != 8 {
			return DecodePlan{}, &UnsupportedBitCountError{Bits: bi.BitCount, Compression: bi.Compression}
		}
		layout = LayoutGray8
		topDownMode = topDownTrue
	case compY16:
		if bi.BitCount != 16 {
			return DecodePlan{}, &UnsupportedBitCountError{Bits: bi.BitCount, Compression: bi.Compression}
		}
		layout = LayoutGray16
		topDownMode = topDownFalse
	case compAYUV:
		if bi.BitCount != 32 {
			return DecodePlan{}, &UnsupportedBitCountError{Bits: bi.BitCount, Compression: bi.Compression}
		}
		layout = LayoutAYUV
		topDownMode = topDownFalse
	case compUYVY, compUYNV:
		if bi.BitCount != 16 {
			return DecodePlan{}, &UnsupportedBitCountError{Bits: bi.BitCount, Compression: bi.Compression}
		}
		layout = LayoutUYVY
		topDownMode = topDownTrue
	case compCYUV, compV422:
		if bi.BitCount != 16 {
			return DecodePlan{}, &UnsupportedBitCountError{Bits: bi.BitCount, Compression: bi.Compression}
		}
		layout = LayoutUYVY
		topDownMode = topDownFalse
	case compYUY2, compYUNV, compYUYV:
		if bi.BitCount != 16 {
			return DecodePlan{}, &UnsupportedBitCountError{Bits: bi.BitCount, Compression: bi.Compression}
		}
		layout = LayoutYUY2
		topDownMode = topDownTrue
	case compYVYU:
		if bi.BitCount != 16 {
			return DecodePlan{}, &UnsupportedBitCountError{Bits: bi.BitCount, Compression: bi.Compression}
		}
		layout = LayoutYVYU
		topDownMode = topDownTrue
	default:
		return DecodePlan{}, &UnsupportedCompressionError{Compression: bi.Compression}
	}

	var topDown bool
	switch topDownMode {
	case topDownTrue:
		topDown = true
	case topDownFalse:
		topDown = false
	default:
		topDown = bi.Height < 0
	}

	height := bi.Height
	if height < 0 {
		height = -height
	}
	width := bi.Width
	if width < 0 {
		width = -width
	}

	stride := ((int(width)*int(bi.BitCount) + 31) / 32) * 4

	return DecodePlan{
		Bits:    bi.BitCount,
		Layout:  layout,
		TopDown: topDown,
		Width:   int(width),
		Height:  int(height),
		Stride:  stride,
	}, nil
}

package avi

import "strconv"

// formatLabel renders a frame's timestamp the way the original reader's
// status line does: seconds with up to 3 decimal places, trailing zeros and
// a trailing decimal point trimmed, suffixed " s".
func formatLabel(micros uint64) string {
	seconds := float64(micros) / 1e6
	s := strconv.FormatFloat(seconds, 'f', 3, 64)
	s = trimTrailingZeros(s)
	return s + " s"
}

func trimTrailingZeros(s string) string {
	hasDot := false
	for _, c := range s {
		if c == '.' {
			hasDot = true
			break
		}
	}
	if !hasDot {
		return s
	}
	end := len(s)
	for end > 0 && s[end-1] == '0' {
		end--
	}
	if end > 0 && s[end-1] == '.' {
		end--
	}
	return s[:end]
}

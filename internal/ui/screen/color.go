package screen

import "image/color"

// ParseColor decodes a "#RGB" or "#RRGGBB" hex string. Configured colors
// are stored without validation, so anything unparseable falls back to
// the given color.
func ParseColor(value string, fallback color.NRGBA) color.NRGBA {
	if len(value) == 0 || value[0] != '#' {
		return fallback
	}
	digits := value[1:]

	switch len(digits) {
	case 3:
		r, okR := hexNibble(digits[0])
		g, okG := hexNibble(digits[1])
		b, okB := hexNibble(digits[2])
		if !okR || !okG || !okB {
			return fallback
		}
		return color.NRGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}
	case 6:
		r, okR := hexByte(digits[0:2])
		g, okG := hexByte(digits[2:4])
		b, okB := hexByte(digits[4:6])
		if !okR || !okG || !okB {
			return fallback
		}
		return color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return fallback
}

func hexByte(digits string) (uint8, bool) {
	high, okHigh := hexNibble(digits[0])
	low, okLow := hexNibble(digits[1])
	if !okHigh || !okLow {
		return 0, false
	}
	return high<<4 | low, true
}

func hexNibble(digit byte) (uint8, bool) {
	switch {
	case digit >= '0' && digit <= '9':
		return digit - '0', true
	case digit >= 'a' && digit <= 'f':
		return digit - 'a' + 10, true
	case digit >= 'A' && digit <= 'F':
		return digit - 'A' + 10, true
	}
	return 0, false
}

package core

import "strings"

// Color identifies a piece color.
type Color uint8

const (
	ColorBlue Color = iota
	ColorTeal
	ColorPurple
	ColorOrange
	ColorYellow
	ColorGreen
	ColorRed
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorTeal:
		return "teal"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	default:
		return "unknown"
	}
}

// Char returns a single character for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorBlue:
		return 'B'
	case ColorTeal:
		return 'T'
	case ColorPurple:
		return 'P'
	case ColorOrange:
		return 'O'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	case ColorRed:
		return 'R'
	default:
		return '?'
	}
}

// ParseColor converts a color name or its single-letter form to a Color.
// Returns ColorBlue and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue", "b":
		return ColorBlue, true
	case "teal", "t", "cyan":
		return ColorTeal, true
	case "purple", "p", "magenta":
		return ColorPurple, true
	case "orange", "o":
		return ColorOrange, true
	case "yellow", "y":
		return ColorYellow, true
	case "green", "g":
		return ColorGreen, true
	case "red", "r":
		return ColorRed, true
	default:
		return ColorBlue, false
	}
}

// colorFromChar is the inverse of Char.
func colorFromChar(r rune) (Color, bool) {
	for c := Color(0); c < ColorCount; c++ {
		if c.Char() == r {
			return c, true
		}
	}
	return ColorBlue, false
}

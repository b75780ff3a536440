package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

// ANSI returns the 256-color palette index for the color.
// ColorDefault returns -1, meaning "terminal default".
func (c Color) ANSI() int {
	switch c {
	case ColorDefault:
		return -1
	case ColorGray:
		return 245
	default:
		if c <= ColorWhite {
			return int(c - ColorRed + 1)
		}
		return int(c-ColorBrightRed) + 9
	}
}

package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorCyan
	ColorYellow
	ColorOrange
	ColorBlue
	ColorGreen
	ColorRed
	ColorPurple
	ColorWhite
	ColorGray
	ColorDim
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorCyan:
		return "cyan"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorPurple:
		return "purple"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorDim:
		return "dim"
	default:
		return "unknown"
	}
}

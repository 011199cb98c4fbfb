package core

// Color represents a foreground color for a screen cell.
// Values are mapped to ANSI 256-color codes by the platform layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorPurple
	ColorGray
)

// Cell is a single character on the screen together with its color.
type Cell struct {
	Rune  rune
	Color Color
}

package core

// Color represents a foreground color for a screen cell.
// The platform maps colors to terminal styles.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorGray
	ColorBrightCyan
	ColorBrightMagenta
	ColorBrightGreen
)

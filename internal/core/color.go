package core

// Color represents a foreground color for a screen cell.
// The platform maps these to terminal colors.
type Color uint8

// Palette for the runner playfield.
const (
	ColorDefault Color = iota
	ColorRed
	ColorOrange
	ColorAmber
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGray
)

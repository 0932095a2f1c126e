package core

import "strings"

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the maze renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorPink
	ColorOrange
	ColorGray
	ColorBrightBlue
)

var colorNames = map[string]Color{
	"default":     ColorDefault,
	"red":         ColorRed,
	"green":       ColorGreen,
	"yellow":      ColorYellow,
	"blue":        ColorBlue,
	"magenta":     ColorMagenta,
	"cyan":        ColorCyan,
	"white":       ColorWhite,
	"pink":        ColorPink,
	"orange":      ColorOrange,
	"gray":        ColorGray,
	"grey":        ColorGray,
	"bright_blue": ColorBrightBlue,
}

// ParseColor resolves a color name as written in config files.
// Matching is case-insensitive.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

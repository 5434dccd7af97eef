package core

import "fmt"

// Color is a 24-bit RGB color for a screen cell.
// The zero value means "terminal default" and is never emitted as a style.
type Color struct {
	R, G, B uint8
	Valid   bool
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Valid: true}
}

// NoColor leaves the terminal default in place.
var NoColor = Color{}

// Hex formats the color as #rrggbb. Returns an empty string for NoColor.
func (c Color) Hex() string {
	if !c.Valid {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Same reports whether two colors have identical channels.
// Validity is ignored so NoColor never equals a real color only by accident.
func (c Color) Same(other Color) bool {
	return c.Valid == other.Valid && c.R == other.R && c.G == other.G && c.B == other.B
}

// Common colors used by overlays and text.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorTitle = RGB(0, 100, 0)
	ColorAlert = RGB(200, 0, 0)
	ColorPause = RGB(0, 0, 150)
)

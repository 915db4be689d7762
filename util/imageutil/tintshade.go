package imageutil

import (
	"image/color"

	"github.com/gochoam/phosphor-splitpanel/util/mathutil"
)

// Moves c towards white by v percent (0.0, 1.0).
func Tint(c color.Color, v float64) color.Color {
	return tint(RgbaColor(c), v)
}

// Moves c towards black by v percent (0.0, 1.0).
func Shade(c color.Color, v float64) color.Color {
	return shade(RgbaColor(c), v)
}

// Shades light colors and tints dark ones, so the result contrasts with
// the input on any palette.
func TintOrShade(c color.Color, v float64) color.Color {
	c2 := RgbaColor(c)
	if isLighter(c2) {
		return shade(c2, v)
	}
	return tint(c2, v)
}

func isLighter(c color.RGBA) bool {
	u := int(c.R) + int(c.G) + int(c.B)
	return u > 256*3/2
}

func tint(c color.RGBA, v float64) color.RGBA {
	v = mathutil.Limit(v, 0, 1)
	c.R += uint8(v * float64(255-c.R))
	c.G += uint8(v * float64(255-c.G))
	c.B += uint8(v * float64(255-c.B))
	return c
}

func shade(c color.RGBA, v float64) color.RGBA {
	v = 1.0 - mathutil.Limit(v, 0, 1)
	c.R = uint8(v * float64(c.R))
	c.G = uint8(v * float64(c.G))
	c.B = uint8(v * float64(c.B))
	return c
}

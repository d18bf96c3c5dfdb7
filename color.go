package kmix

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA is a gamma-encoded sRGB display color with red, green, blue, and
// alpha components, each in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the color.Color interface. Components are returned
// alpha-premultiplied in the range [0, 65535].
func (c RGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R*c.A)*65535 + 0.5)
	g = uint32(clamp01(c.G*c.A)*65535 + 0.5)
	b = uint32(clamp01(c.B*c.A)*65535 + 0.5)
	a = uint32(clamp01(c.A)*65535 + 0.5)
	return
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// RGB creates an opaque color from RGB components in [0, 1].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Hex creates an opaque color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
// Malformed input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return RGBA{A: 1}
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Hex returns the color in "#RRGGBB" form, ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X",
		uint8(clamp255(c.R*255)+0.5),
		uint8(clamp255(c.G*255)+0.5),
		uint8(clamp255(c.B*255)+0.5))
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Linear returns the linear-light RGB channels of the color, decoding the
// sRGB gamma curve per channel.
func (c RGBA) Linear() (r, g, b float64) {
	return srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B)
}

// srgbToLinear decodes one gamma-encoded sRGB channel to linear light.
func srgbToLinear(v float64) float64 {
	v = clamp01(v)
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB encodes one linear-light channel with the sRGB piecewise
// gamma function.
func linearToSRGB(v float64) float64 {
	v = clamp01(v)
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// clamp255 restricts a value to the [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)

package kmix

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestHexParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"long form", "#3498DB", RGBA{R: 0x34 / 255.0, G: 0x98 / 255.0, B: 0xDB / 255.0, A: 1}},
		{"no hash", "3498DB", RGBA{R: 0x34 / 255.0, G: 0x98 / 255.0, B: 0xDB / 255.0, A: 1}},
		{"short form", "#FA0", RGBA{R: 1, G: 170 / 255.0, B: 0, A: 1}},
		{"lowercase", "#ff00ff", RGBA{R: 1, G: 0, B: 1, A: 1}},
		{"malformed", "#12345", RGBA{A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.in)
			if math.Abs(got.R-tt.want.R) > 1e-9 ||
				math.Abs(got.G-tt.want.G) > 1e-9 ||
				math.Abs(got.B-tt.want.B) > 1e-9 ||
				got.A != tt.want.A {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#000000", "#FFFFFF", "#3498DB", "#7A6548", "#010203"} {
		if got := Hex(s).Hex(); got != s {
			t.Errorf("Hex(%q).Hex() = %q", s, got)
		}
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	original := RGBA{R: 0.8, G: 0.3, B: 0.5, A: 1}
	r, g, b, a := original.RGBA()
	roundtripped := FromColor(color.NRGBA64{
		R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a),
	})
	const tolerance = 0.001
	if math.Abs(original.R-roundtripped.R) > tolerance ||
		math.Abs(original.G-roundtripped.G) > tolerance ||
		math.Abs(original.B-roundtripped.B) > tolerance {
		t.Errorf("roundtrip: %v -> %v", original, roundtripped)
	}
}

func TestGammaRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.001, 0.0031308, 0.04, 0.2, 0.5, 0.8, 1} {
		got := linearToSRGB(srgbToLinear(v))
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("gamma round trip of %v gave %v", v, got)
		}
	}
}

func TestLinear(t *testing.T) {
	r, g, b := White.Linear()
	if r != 1 || g != 1 || b != 1 {
		t.Errorf("White.Linear() = (%v, %v, %v), want (1, 1, 1)", r, g, b)
	}
	r, g, b = Black.Linear()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Black.Linear() = (%v, %v, %v), want (0, 0, 0)", r, g, b)
	}
}

func TestLerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 || mid.A != 1 {
		t.Errorf("Black.Lerp(White, 0.5) = %v", mid)
	}
	if got := Black.Lerp(White, 0); got != Black {
		t.Errorf("Lerp(0) = %v, want start", got)
	}
	if got := Black.Lerp(White, 1); got != White {
		t.Errorf("Lerp(1) = %v, want end", got)
	}
}

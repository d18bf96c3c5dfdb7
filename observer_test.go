package kmix

import (
	"math"
	"testing"
)

// A perfect reflector under D65 must normalize to Y = 1 and render as
// white.
func TestPerfectReflectorRendersWhite(t *testing.T) {
	var s Spectrum
	for i := range s {
		s[i] = 1
	}
	_, y, _ := s.XYZ()
	if math.Abs(y-1) > 1e-12 {
		t.Errorf("perfect reflector Y = %v, want 1", y)
	}
	c := s.Color()
	if math.Abs(c.R-1) > 0.01 || math.Abs(c.G-1) > 0.01 || math.Abs(c.B-1) > 0.01 {
		t.Errorf("perfect reflector rendered %v, want ~white", c)
	}
}

func TestZeroReflectanceRendersBlack(t *testing.T) {
	var s Spectrum
	c := s.Color()
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("zero spectrum rendered %v, want black", c)
	}
	if c.A != 1 {
		t.Errorf("alpha %v, want 1", c.A)
	}
}

// Conversion must saturate, never fail: wildly out-of-range spectra still
// produce channels in [0, 1].
func TestColorSaturates(t *testing.T) {
	var hot Spectrum
	for i := range hot {
		hot[i] = 25
	}
	c := hot.Color()
	for _, v := range []float64{c.R, c.G, c.B} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Errorf("channel %v out of range for over-range spectrum", v)
		}
	}
}

// A spectrum reflecting only at long wavelengths must render reddish, one
// reflecting only at short wavelengths bluish.
func TestColorSpectralRegions(t *testing.T) {
	var longEnd, shortEnd Spectrum
	for i := 28; i < Bands; i++ {
		longEnd[i] = 1
	}
	for i := 0; i < 8; i++ {
		shortEnd[i] = 1
	}

	red := longEnd.Color()
	if red.R <= red.B || red.R <= red.G {
		t.Errorf("long-wavelength spectrum rendered %v, want red-dominant", red)
	}
	blue := shortEnd.Color()
	if blue.B <= blue.R || blue.B <= blue.G {
		t.Errorf("short-wavelength spectrum rendered %v, want blue-dominant", blue)
	}
}

// The luma weights must peak mid-spectrum (photopic sensitivity near
// 555 nm) and fall off toward both ends.
func TestLumaWeightShape(t *testing.T) {
	peak := 0
	for i, w := range lumaWeight {
		if w > lumaWeight[peak] {
			peak = i
		}
	}
	if wl := Wavelength(peak); wl < 540 || wl > 570 {
		t.Errorf("luma weight peaks at %v nm, want near 555", wl)
	}
	if lumaWeight[peak] != 1 {
		t.Errorf("peak weight %v, want 1", lumaWeight[peak])
	}
	if lumaWeight[0] > 0.01 || lumaWeight[Bands-1] > 0.01 {
		t.Errorf("edge weights %v / %v, want near 0", lumaWeight[0], lumaWeight[Bands-1])
	}
}

package kmix

import (
	"math"
	"testing"
)

func TestWavelength(t *testing.T) {
	tests := []struct {
		band int
		want float64
	}{
		{0, 380},
		{1, 390},
		{Bands - 1, 730},
	}
	for _, tt := range tests {
		if got := Wavelength(tt.band); got != tt.want {
			t.Errorf("Wavelength(%d) = %v, want %v", tt.band, got, tt.want)
		}
	}
}

func TestRatioToReflectance(t *testing.T) {
	tests := []struct {
		name string
		k    float64
		want float64
	}{
		{"zero ratio reflects fully", 0, 1},
		{"negative ratio clamps to full reflectance", -3, 1},
		{"unit ratio", 1, 1 + 1 - math.Sqrt(3)},
		{"floor ratio maps near zero", RatioFloor, 1 + 100 - math.Sqrt(100*100+200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RatioToReflectance(tt.k)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("RatioToReflectance(%v) = %v, want %v", tt.k, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("RatioToReflectance(%v) = %v, out of [0,1]", tt.k, got)
			}
		})
	}
}

func TestReflectanceToRatioFloor(t *testing.T) {
	for _, r := range []float64{0, 0.0005, ReflectanceFloor, -0.2} {
		if got := ReflectanceToRatio(r); got != RatioFloor {
			t.Errorf("ReflectanceToRatio(%v) = %v, want floor %v", r, got, RatioFloor)
		}
	}
	if got := ReflectanceToRatio(1); got != 0 {
		t.Errorf("ReflectanceToRatio(1) = %v, want 0", got)
	}
}

// The ratio and reflectance conversions must invert each other outside the
// floored near-zero region.
func TestRatioReflectanceRoundTrip(t *testing.T) {
	for _, r := range []float64{0.002, 0.01, 0.05, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1} {
		got := RatioToReflectance(ReflectanceToRatio(r))
		if math.Abs(got-r) > 1e-9 {
			t.Errorf("round trip of R=%v gave %v", r, got)
		}
	}
	// Below the floor the round trip is intentionally lossy: everything
	// collapses onto the floor ratio.
	low := RatioToReflectance(ReflectanceToRatio(0.0001))
	floor := RatioToReflectance(RatioFloor)
	if low != floor {
		t.Errorf("sub-floor round trip = %v, want %v", low, floor)
	}
}

func TestSpectrumReflectance(t *testing.T) {
	var ks Spectrum
	for i := range ks {
		ks[i] = float64(i) * 0.1
	}
	refl := ks.Reflectance()
	for i := range refl {
		want := RatioToReflectance(ks[i])
		if refl[i] != want {
			t.Errorf("band %d: got %v, want %v", i, refl[i], want)
		}
	}
}

package kmix

import "math"

// Spectral sampling grid. Every spectrum in the system is sampled on this
// grid: pigment absorption/scattering tables, reflectance curves, and the
// standard-observer and illuminant tables.
const (
	// Bands is the number of wavelength bands per spectrum.
	Bands = 36

	// WavelengthMin is the wavelength of band 0 in nanometers.
	WavelengthMin = 380

	// WavelengthStep is the band spacing in nanometers.
	WavelengthStep = 10
)

// Spectrum is a fixed-length sequence of per-band values on the system
// sampling grid (380–730 nm at 10 nm). Depending on context the values are
// reflectances in [0, 1] or Kubelka–Munk absorption/scattering ratios ≥ 0.
// The array type guarantees every spectrum has the same band count.
type Spectrum [Bands]float64

// Wavelength returns the wavelength in nanometers of band i.
func Wavelength(i int) float64 {
	return WavelengthMin + float64(i)*WavelengthStep
}

// RatioToReflectance converts a Kubelka–Munk absorption/scattering ratio k
// to the reflectance of an opaque layer using the closed-form inverse of
// the K–M equation:
//
//	R = 1 + k - sqrt(k² + 2k)
//
// The result is clamped to [0, 1].
func RatioToReflectance(k float64) float64 {
	if k < 0 {
		k = 0
	}
	r := 1 + k - math.Sqrt(k*k+2*k)
	return clamp01(r)
}

// RatioFloor is the ratio substituted for reflectances at or below
// ReflectanceFloor, where the K–M ratio formula blows up.
const RatioFloor = 100.0

// ReflectanceFloor is the reflectance below which ReflectanceToRatio
// saturates to RatioFloor instead of dividing by a near-zero value.
const ReflectanceFloor = 0.001

// ReflectanceToRatio converts a reflectance R to a Kubelka–Munk
// absorption/scattering ratio:
//
//	k = (1 - R)² / (2R)
//
// Reflectances at or below ReflectanceFloor return RatioFloor; the round
// trip through RatioToReflectance is therefore lossy in that region.
func ReflectanceToRatio(r float64) float64 {
	if r <= ReflectanceFloor {
		return RatioFloor
	}
	if r > 1 {
		r = 1
	}
	return (1 - r) * (1 - r) / (2 * r)
}

// Reflectance converts a ratio spectrum to a reflectance spectrum band by
// band via RatioToReflectance.
func (s Spectrum) Reflectance() Spectrum {
	var out Spectrum
	for i, k := range s {
		out[i] = RatioToReflectance(k)
	}
	return out
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

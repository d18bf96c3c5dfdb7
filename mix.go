package kmix

import "math"

// Layer is one component of a mixture: a pigment and its relative amount.
// Amounts are relative weights; Mix normalizes them against their sum, so
// only the ratios between layers matter.
type Layer struct {
	Pigment Pigment
	Amount  float64
}

// Mix combines pigment layers into a single reflectance spectrum using the
// single-constant Kubelka–Munk model: per band, the pigments' ratios
// combine as a concentration-weighted sum, and the combined ratio k maps
// to reflectance through
//
//	R = 1 + k - sqrt(k² + 2k)
//
// clamped to [0, 1]. The boolean is false when no layers are given or the
// total amount is not positive; the spectrum is then the zero value.
func Mix(layers []Layer) (Spectrum, bool) {
	var total float64
	for _, l := range layers {
		if l.Amount > 0 {
			total += l.Amount
		}
	}
	if len(layers) == 0 || total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return Spectrum{}, false
	}

	var mixed Spectrum
	for _, l := range layers {
		if l.Amount <= 0 {
			continue
		}
		w := l.Amount / total
		for i, k := range l.Pigment.KS {
			mixed[i] += w * k
		}
	}
	for i, k := range mixed {
		mixed[i] = RatioToReflectance(k)
	}
	return mixed, true
}

// MixColor mixes the layers and renders the result as a display color.
// This is the direct-mix path: selected pigments and amounts in, one sRGB
// color out, with no search involved. The boolean is false on an invalid
// mixture.
func MixColor(layers []Layer) (RGBA, bool) {
	s, ok := Mix(layers)
	if !ok {
		return RGBA{}, false
	}
	return s.Color(), true
}

package kmix

import "math"

// Target approximation: mapping a display color backward to a plausible
// reflectance spectrum so it can be compared against catalog pigments.
//
// This is a heuristic, not a physical inverse. A display color carries
// three numbers; a spectrum carries Bands. Infinitely many spectra render
// to the same color (metamerism), so the curve produced here is one
// plausible choice, and search quality for targets outside the catalog is
// bounded by it.

// Tent centers as normalized band positions: the blue, green and red
// regions of the 380–730 nm grid (roughly 447, 531 and 653 nm). The
// geometry is chosen so that rendering an approximated spectrum recovers
// the input color almost exactly; every band keeps a positive total
// weight.
const (
	tentBlue  = 0.19
	tentGreen = 0.43
	tentRed   = 0.78
	tentWidth = 0.23
)

// tent is a triangular weighting function of normalized position t,
// peaking at center and falling to zero at center ± tentWidth.
func tent(t, center float64) float64 {
	return math.Max(0, 1-math.Abs(t-center)/tentWidth)
}

// ApproximateSpectrum estimates a reflectance spectrum for a display
// color. Per band, the color's three linear-light channels are blended
// with triangular weights centered on the blue, green and red regions,
// re-normalized to sum to 1 at each band. Each band value is clamped into
// (0.01, 0.99) so the downstream ratio conversion stays finite.
func ApproximateSpectrum(c RGBA) Spectrum {
	lr, lg, lb := c.Linear()

	var out Spectrum
	for i := range out {
		t := float64(i) / (Bands - 1)
		wb := tent(t, tentBlue)
		wg := tent(t, tentGreen)
		wr := tent(t, tentRed)
		sum := wb + wg + wr

		r := (wb*lb + wg*lg + wr*lr) / sum
		out[i] = math.Min(0.99, math.Max(0.01, r))
	}
	return out
}

// ApproximateRatios estimates a Kubelka–Munk ratio spectrum for a display
// color by converting the output of ApproximateSpectrum band by band.
func ApproximateRatios(c RGBA) Spectrum {
	refl := ApproximateSpectrum(c)
	var out Spectrum
	for i, r := range refl {
		out[i] = ReflectanceToRatio(r)
	}
	return out
}

package kmix

// Colorimetric conversion from reflectance spectra to display colors.
//
// A reflectance spectrum is integrated against the CIE 1931 2° standard
// observer under the D65 illuminant, band by band, giving tristimulus XYZ
// values normalized so a perfect reflector has Y = 1. XYZ then maps to
// linear sRGB through the D65-referenced matrix, is clamped per channel,
// and gamma-encoded. Conversion never fails; out-of-gamut values saturate.

// CIE 1931 2° standard observer color matching functions, sampled on the
// system grid (380–730 nm at 10 nm).
var (
	observerX = Spectrum{
		0.001368, 0.004243, 0.014310, 0.043510, 0.134380, 0.283900,
		0.348280, 0.336200, 0.290800, 0.195360, 0.095640, 0.032010,
		0.004900, 0.009300, 0.063270, 0.165500, 0.290400, 0.433450,
		0.594500, 0.762100, 0.916300, 1.026300, 1.062200, 1.002600,
		0.854450, 0.642400, 0.447900, 0.283500, 0.164900, 0.087400,
		0.046770, 0.022700, 0.011359, 0.005790, 0.002899, 0.001440,
	}
	observerY = Spectrum{
		0.000039, 0.000120, 0.000396, 0.001210, 0.004000, 0.011600,
		0.023000, 0.038000, 0.060000, 0.090980, 0.139020, 0.208020,
		0.323000, 0.503000, 0.710000, 0.862000, 0.954000, 0.994950,
		0.995000, 0.952000, 0.870000, 0.757000, 0.631000, 0.503000,
		0.381000, 0.265000, 0.175000, 0.107000, 0.061000, 0.032000,
		0.017000, 0.008210, 0.004102, 0.002091, 0.001047, 0.000520,
	}
	observerZ = Spectrum{
		0.006450, 0.020050, 0.067850, 0.207400, 0.645600, 1.385600,
		1.747060, 1.772110, 1.669200, 1.287640, 0.812950, 0.465180,
		0.272000, 0.158200, 0.078250, 0.042160, 0.020300, 0.008750,
		0.003900, 0.002100, 0.001650, 0.001100, 0.000800, 0.000340,
		0.000190, 0.000050, 0.000020, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	}
)

// CIE standard illuminant D65 relative spectral power distribution on the
// system grid.
var illuminantD65 = Spectrum{
	49.9755, 54.6482, 82.7549, 91.4860, 93.4318, 86.6823,
	104.8650, 117.0080, 117.8120, 114.8610, 115.9230, 108.8110,
	109.3540, 107.8020, 104.7900, 107.6890, 104.4050, 104.0460,
	100.0000, 96.3342, 95.7880, 88.6856, 90.0062, 89.5991,
	87.6987, 83.2886, 83.6992, 80.0268, 80.2146, 82.2778,
	78.2842, 69.7213, 71.6091, 74.3490, 61.6040, 69.8856,
}

// XYZ to linear sRGB, D65 reference white (IEC 61966-2-1).
var xyzToLinearRGB = [3][3]float64{
	{3.2406, -1.5372, -0.4986},
	{-0.9689, 1.8758, 0.0415},
	{0.0557, -0.2040, 1.0570},
}

// d65Norm is the illuminant's integral against the luminance curve, the
// normalization factor that puts Y of a perfect reflector at 1.
var d65Norm = func() float64 {
	var n float64
	for i := range illuminantD65 {
		n += illuminantD65[i] * observerY[i]
	}
	return n
}()

// lumaWeight holds, per band, the observer luminance sensitivity scaled so
// the peak band has weight 1. Spectral distance scoring weights bands by
// 1 + 2·lumaWeight, so bands near peak sensitivity count roughly 3× the
// spectral extremes.
var lumaWeight = func() Spectrum {
	peak := 0.0
	for _, y := range observerY {
		if y > peak {
			peak = y
		}
	}
	var w Spectrum
	for i, y := range observerY {
		w[i] = y / peak
	}
	return w
}()

// XYZ returns the tristimulus values of a reflectance spectrum under D65,
// normalized so a perfect reflector has Y = 1.
func (s Spectrum) XYZ() (x, y, z float64) {
	for i := range s {
		e := illuminantD65[i] * s[i]
		x += e * observerX[i]
		y += e * observerY[i]
		z += e * observerZ[i]
	}
	return x / d65Norm, y / d65Norm, z / d65Norm
}

// Color renders a reflectance spectrum as an sRGB display color. Channels
// are clamped to [0, 1] before gamma encoding; the alpha channel is 1.
func (s Spectrum) Color() RGBA {
	x, y, z := s.XYZ()
	var rgb [3]float64
	for i, row := range xyzToLinearRGB {
		rgb[i] = clamp01(row[0]*x + row[1]*y + row[2]*z)
	}
	return RGBA{
		R: linearToSRGB(rgb[0]),
		G: linearToSRGB(rgb[1]),
		B: linearToSRGB(rgb[2]),
		A: 1,
	}
}

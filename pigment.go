package kmix

// Medium classifies the vehicle a pigment is ground in. Search uses it to
// narrow the catalog to paints the caller can actually combine.
type Medium string

// Supported media.
const (
	MediumWatercolor Medium = "watercolor"
	MediumGouache    Medium = "gouache"
	MediumAcrylic    Medium = "acrylic"
	MediumOil        Medium = "oil"
)

// Pigment is one catalog entry: a single paint with its Kubelka–Munk
// absorption/scattering ratio spectrum. Entries are loaded once and never
// mutated; the engine copies them by value into results.
type Pigment struct {
	// ID uniquely identifies the entry within a catalog.
	ID string

	// Name is the display name, e.g. "Ultramarine Blue".
	Name string

	// Brand is the manufacturer or source label.
	Brand string

	// Medium is the paint vehicle classification.
	Medium Medium

	// Color is the approximate display color of the masstone, used for
	// swatches; the authoritative color comes from rendering KS.
	Color RGBA

	// Opacity is a coverage hint in [0, 1]; 1 is fully opaque.
	Opacity float64

	// KS is the absorption/scattering ratio per wavelength band.
	KS Spectrum
}

// Reflectance returns the pigment's masstone reflectance spectrum, derived
// from its ratio spectrum.
func (p Pigment) Reflectance() Spectrum {
	return p.KS.Reflectance()
}

// Catalog is an immutable set of pigments. Construct one with
// DefaultCatalog or from custom entries, then pass it by value to Search;
// the engine never modifies it.
type Catalog []Pigment

// ByMedium returns the pigments matching the given medium, preserving
// catalog order. An empty medium matches everything.
func (c Catalog) ByMedium(m Medium) Catalog {
	if m == "" {
		return c
	}
	var out Catalog
	for _, p := range c {
		if p.Medium == m {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the pigment with the given ID, or false if absent.
func (c Catalog) Find(id string) (Pigment, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return Pigment{}, false
}

// Package kmix implements a subtractive (pigment) color mixing engine
// based on Kubelka–Munk theory.
//
// # Overview
//
// kmix models how real paints combine: each pigment carries a per-wavelength
// absorption/scattering ratio, mixtures combine those ratios linearly by
// concentration (single-constant Kubelka–Munk), and the mixed spectrum is
// rendered to an sRGB display color through a CIE standard-observer / D65
// illuminant integration.
//
// On top of the forward model, Search runs a bounded combinatorial search
// over a pigment catalog: given a target color it scores single pigments,
// pigment pairs at a fixed set of ratio splits, and pigment triples at one
// split, then returns the closest recipes ranked by a luma-weighted spectral
// distance.
//
// # Quick Start
//
//	import "github.com/paintsci/kmix"
//
//	cat := kmix.DefaultCatalog()
//
//	// Find watercolor recipes for a teal target.
//	recipes := kmix.Search(cat, kmix.Hex("#2A7F7A"),
//		kmix.WithMedium(kmix.MediumWatercolor),
//		kmix.WithTopResults(5))
//
//	// Or mix exact pigments directly.
//	c, ok := kmix.MixColor([]kmix.Layer{
//		{Pigment: cat[1], Amount: 0.7},
//		{Pigment: cat[8], Amount: 0.3},
//	})
//
// # Model Limits
//
// The engine uses the single-layer, two-flux Kubelka–Munk approximation:
// no glazing, layering, viscosity or drying shifts. Target colors are
// mapped to spectra through a heuristic inverse (ApproximateSpectrum) that
// is deliberately lossy; many distinct spectra share one display color, so
// search quality for out-of-catalog targets is bounded by that heuristic.
//
// The search itself is bounded, not exhaustive: candidate prefixes and
// ratio grids are fixed so a call performs a small constant number of
// spectral evaluations. Results are deterministic for identical inputs.
//
// # Concurrency
//
// Every function is a pure mapping over an immutable catalog. The engine
// spawns no goroutines, keeps no mutable state and offers no cancellation;
// interactive callers should invoke Search from a non-blocking point of
// their own event loop.
package kmix

// Version is the current version of the library.
const Version = "0.1.0"

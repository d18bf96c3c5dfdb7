package kmix

import (
	"sort"
	"strings"
)

// Part is one pigment's share of a recipe, as an integer percentage.
// A recipe's percentages sum to 100.
type Part struct {
	Pigment Pigment
	Percent int
}

// Recipe is one search result: pigments with their shares, the display
// color the mixture renders to, and its spectral distance to the target.
// Lower distance is better.
type Recipe struct {
	Parts    []Part
	Color    RGBA
	Distance float64
}

// Search bounds. Candidate pigments are ranked by their individual
// distance to the target; passes beyond the first draw combinations from
// fixed prefixes of that ranking, and mixtures are sampled on fixed ratio
// grids. The bounds trade optimality for a small constant number of
// spectral evaluations per call; changing them changes result ordering.
const (
	pairPrefix    = 12
	triplePrefixA = 6
	triplePrefixB = 8
	triplePrefixC = 10
)

// pairSplits are the ratio splits sampled for two-pigment mixtures.
var pairSplits = [][2]int{{20, 80}, {33, 67}, {50, 50}, {67, 33}, {80, 20}}

// tripleSplit is the single ratio split sampled for three-pigment mixtures.
var tripleSplit = [3]int{50, 30, 20}

// candidate pairs a catalog pigment with its precomputed masstone
// reflectance and its individual distance to the target.
type candidate struct {
	pigment Pigment
	refl    Spectrum
	dist    float64
}

// Search finds pigment recipes that approximate the target display color.
//
// The catalog is filtered to the requested medium, the target is mapped to
// an approximate reflectance spectrum, and candidate mixtures are scored
// by luma-weighted spectral distance against it: every pigment alone, then
// pairs and triples drawn from bounded prefixes of the individually-ranked
// candidates. Results come back sorted ascending by distance, deduplicated
// so no pigment combination appears twice, and truncated to the configured
// count.
//
// Search is deterministic: identical inputs return identical results. An
// empty candidate pool yields an empty list, not an error.
func Search(cat Catalog, target RGBA, opts ...SearchOption) []Recipe {
	o := defaultSearchOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pool := cat.ByMedium(o.medium)
	if len(pool) == 0 {
		return nil
	}

	targetRefl := ApproximateSpectrum(target)

	candidates := make([]candidate, len(pool))
	for i, p := range pool {
		refl := p.Reflectance()
		candidates[i] = candidate{
			pigment: p,
			refl:    refl,
			dist:    spectralDistance(targetRefl, refl),
		}
	}

	var recipes []Recipe

	// Single-pigment pass: every candidate alone.
	for _, c := range candidates {
		recipes = append(recipes, Recipe{
			Parts:    []Part{{Pigment: c.pigment, Percent: 100}},
			Color:    c.refl.Color(),
			Distance: c.dist,
		})
	}

	// Rank candidates by individual distance; the pair and triple passes
	// draw from fixed prefixes of this ranking.
	ranked := make([]candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].dist < ranked[j].dist
	})

	if o.maxPigments >= 2 {
		recipes = append(recipes, searchPairs(ranked, targetRefl)...)
	}
	if o.maxPigments >= 3 {
		recipes = append(recipes, searchTriples(ranked, targetRefl)...)
	}

	Logger().Debug("recipe search",
		"pool", len(pool),
		"evaluated", len(recipes),
		"medium", string(o.medium),
		"maxPigments", o.maxPigments)

	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].Distance < recipes[j].Distance
	})
	recipes = dedupByPigmentSet(recipes)

	if len(recipes) > o.topResults {
		recipes = recipes[:o.topResults]
	}
	return recipes
}

// searchPairs evaluates every unordered pair from the top pairPrefix
// ranked candidates at each of the fixed ratio splits.
func searchPairs(ranked []candidate, targetRefl Spectrum) []Recipe {
	n := min(pairPrefix, len(ranked))
	var out []Recipe
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for _, split := range pairSplits {
				r, ok := evaluate(targetRefl,
					Part{Pigment: ranked[i].pigment, Percent: split[0]},
					Part{Pigment: ranked[j].pigment, Percent: split[1]})
				if ok {
					out = append(out, r)
				}
			}
		}
	}
	return out
}

// searchTriples evaluates triples from nested prefixes of the ranked
// candidates (first 6 × 8 × 10) at the single fixed split.
func searchTriples(ranked []candidate, targetRefl Spectrum) []Recipe {
	na := min(triplePrefixA, len(ranked))
	nb := min(triplePrefixB, len(ranked))
	nc := min(triplePrefixC, len(ranked))
	var out []Recipe
	for i := 0; i < na; i++ {
		for j := i + 1; j < nb; j++ {
			for k := j + 1; k < nc; k++ {
				r, ok := evaluate(targetRefl,
					Part{Pigment: ranked[i].pigment, Percent: tripleSplit[0]},
					Part{Pigment: ranked[j].pigment, Percent: tripleSplit[1]},
					Part{Pigment: ranked[k].pigment, Percent: tripleSplit[2]})
				if ok {
					out = append(out, r)
				}
			}
		}
	}
	return out
}

// evaluate mixes the parts, renders the result and scores it against the
// target reflectance. Invalid mixtures (zero total) are skipped by
// returning false.
func evaluate(targetRefl Spectrum, parts ...Part) (Recipe, bool) {
	layers := make([]Layer, len(parts))
	for i, p := range parts {
		layers[i] = Layer{Pigment: p.Pigment, Amount: float64(p.Percent)}
	}
	mixed, ok := Mix(layers)
	if !ok {
		return Recipe{}, false
	}
	return Recipe{
		Parts:    parts,
		Color:    mixed.Color(),
		Distance: spectralDistance(targetRefl, mixed),
	}, true
}

// spectralDistance scores how far a candidate reflectance spectrum is from
// the target: a sum of squared per-band differences, weighted by
// 1 + 2·lumaWeight so bands near peak luminous sensitivity dominate the
// spectral extremes. Not a Euclidean metric; result ordering depends on
// the weighting.
func spectralDistance(target, candidate Spectrum) float64 {
	var d float64
	for i := range target {
		diff := target[i] - candidate[i]
		d += (1 + 2*lumaWeight[i]) * diff * diff
	}
	return d
}

// dedupByPigmentSet removes recipes whose pigment combination already
// appeared earlier in the slice. Input must be sorted by distance, so the
// first occurrence kept is the best-scoring one.
func dedupByPigmentSet(recipes []Recipe) []Recipe {
	seen := make(map[string]bool, len(recipes))
	out := recipes[:0]
	for _, r := range recipes {
		key := pigmentSetKey(r.Parts)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

// pigmentSetKey builds an order-independent key from the recipe's pigment
// IDs.
func pigmentSetKey(parts []Part) string {
	ids := make([]string, len(parts))
	for i, p := range parts {
		ids[i] = p.Pigment.ID
	}
	sort.Strings(ids)
	return strings.Join(ids, "+")
}

package kmix

// SearchOption configures a recipe search.
//
// Example:
//
//	// Default: any medium, up to 3 pigments, top 10 recipes.
//	recipes := kmix.Search(cat, target)
//
//	// Watercolor only, single pigments, best 5.
//	recipes := kmix.Search(cat, target,
//		kmix.WithMedium(kmix.MediumWatercolor),
//		kmix.WithMaxPigments(1),
//		kmix.WithTopResults(5))
type SearchOption func(*searchOptions)

// searchOptions holds optional configuration for Search.
type searchOptions struct {
	medium      Medium
	maxPigments int
	topResults  int
}

// defaultSearchOptions returns the default search options.
func defaultSearchOptions() searchOptions {
	return searchOptions{
		medium:      "", // all media
		maxPigments: 3,
		topResults:  10,
	}
}

// WithMedium restricts the search to pigments of the given medium.
// The empty medium searches the whole catalog.
func WithMedium(m Medium) SearchOption {
	return func(o *searchOptions) {
		o.medium = m
	}
}

// WithMaxPigments limits how many pigments a recipe may combine, from 1 to
// 3. Values outside that range are clamped. With 1, only the
// single-pigment pass runs; with 2, pairs are added; with 3, triples too.
func WithMaxPigments(n int) SearchOption {
	return func(o *searchOptions) {
		if n < 1 {
			n = 1
		}
		if n > 3 {
			n = 3
		}
		o.maxPigments = n
	}
}

// WithTopResults sets how many ranked recipes Search returns.
// Non-positive values are ignored.
func WithTopResults(n int) SearchOption {
	return func(o *searchOptions) {
		if n > 0 {
			o.topResults = n
		}
	}
}

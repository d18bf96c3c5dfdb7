package kmix

import "testing"

// BenchmarkSearch measures a full search over the default catalog at each
// pigment-count bound. The search space is fixed, so these also document
// the worst-case evaluation cost.
func BenchmarkSearch(b *testing.B) {
	cat := DefaultCatalog()
	target := Hex("#2A7F7A")

	for _, maxPigments := range []int{1, 2, 3} {
		b.Run(map[int]string{1: "singles", 2: "pairs", 3: "triples"}[maxPigments], func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Search(cat, target, WithMaxPigments(maxPigments))
			}
		})
	}
}

func BenchmarkMix(b *testing.B) {
	cat := DefaultCatalog()
	layers := []Layer{
		{Pigment: cat[0], Amount: 50},
		{Pigment: cat[1], Amount: 30},
		{Pigment: cat[2], Amount: 20},
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := Mix(layers); !ok {
			b.Fatal("mix failed")
		}
	}
}

func BenchmarkApproximateSpectrum(b *testing.B) {
	c := Hex("#B05080")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ApproximateSpectrum(c)
	}
}

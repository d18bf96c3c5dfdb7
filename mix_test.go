package kmix

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// testPigment builds a synthetic pigment with a constant ratio spectrum.
func testPigment(id string, k float64) Pigment {
	var ks Spectrum
	for i := range ks {
		ks[i] = k
	}
	return Pigment{ID: id, Name: id, Medium: MediumWatercolor, KS: ks}
}

// Mixing a single pigment at full concentration must reproduce the
// pigment's own reflectance spectrum.
func TestMixSinglePigmentIdentity(t *testing.T) {
	for _, p := range DefaultCatalog()[:4] {
		got, ok := Mix([]Layer{{Pigment: p, Amount: 1}})
		if !ok {
			t.Fatalf("%s: Mix returned not ok", p.ID)
		}
		want := p.Reflectance()
		for i := range got {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Errorf("%s band %d: got %v, want %v", p.ID, i, got[i], want[i])
			}
		}
	}
}

// Only the ratios between layer amounts matter: scaling all amounts by a
// common factor must not change the result.
func TestMixNormalization(t *testing.T) {
	a := testPigment("a", 0.8)
	b := testPigment("b", 0.1)

	base, ok := Mix([]Layer{{a, 1}, {b, 1}})
	if !ok {
		t.Fatal("base mix failed")
	}
	variants := [][]Layer{
		{{a, 2}, {b, 2}},
		{{a, 0.5}, {b, 0.5}},
		{{a, 37}, {b, 37}},
	}
	for _, layers := range variants {
		got, ok := Mix(layers)
		if !ok {
			t.Fatalf("mix %v failed", layers)
		}
		if diff := cmp.Diff(base, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("scaled mix differs (-base +got):\n%s", diff)
		}
	}
}

func TestMixInvalid(t *testing.T) {
	p := testPigment("p", 0.5)
	tests := []struct {
		name   string
		layers []Layer
	}{
		{"no layers", nil},
		{"zero amounts", []Layer{{p, 0}, {p, 0}}},
		{"negative amounts", []Layer{{p, -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Mix(tt.layers); ok {
				t.Error("Mix accepted an invalid mixture")
			}
			if _, ok := MixColor(tt.layers); ok {
				t.Error("MixColor accepted an invalid mixture")
			}
		})
	}
}

// A pigment that neither absorbs nor scatters (ratio ~0 in every band) is
// a perfect reflector: its mixture must reflect fully in every band and
// render close to pure white.
func TestMixPerfectReflector(t *testing.T) {
	white := testPigment("white", 0)
	refl, ok := Mix([]Layer{{white, 1}})
	if !ok {
		t.Fatal("mix failed")
	}
	for i, r := range refl {
		if math.Abs(r-1) > 1e-12 {
			t.Errorf("band %d: reflectance %v, want 1", i, r)
		}
	}

	c, ok := MixColor([]Layer{{white, 1}})
	if !ok {
		t.Fatal("MixColor failed")
	}
	if math.Abs(c.R-1) > 0.01 || math.Abs(c.G-1) > 0.01 || math.Abs(c.B-1) > 0.01 {
		t.Errorf("perfect reflector rendered %v, want ~white", c)
	}
}

// Heavier ratios absorb more light: a mixture dominated by a dark pigment
// must render darker than one dominated by a light pigment.
func TestMixConcentrationShifts(t *testing.T) {
	light := testPigment("light", 0.05)
	dark := testPigment("dark", 5)

	mostlyLight, ok := MixColor([]Layer{{light, 0.8}, {dark, 0.2}})
	if !ok {
		t.Fatal("mix failed")
	}
	mostlyDark, ok := MixColor([]Layer{{light, 0.2}, {dark, 0.8}})
	if !ok {
		t.Fatal("mix failed")
	}
	if mostlyLight.G <= mostlyDark.G {
		t.Errorf("mostly-light mix (%v) not brighter than mostly-dark mix (%v)",
			mostlyLight, mostlyDark)
	}
}

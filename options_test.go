package kmix

import "testing"

func TestDefaultSearchOptions(t *testing.T) {
	o := defaultSearchOptions()
	if o.medium != "" {
		t.Errorf("default medium = %q, want all media", o.medium)
	}
	if o.maxPigments != 3 {
		t.Errorf("default maxPigments = %d, want 3", o.maxPigments)
	}
	if o.topResults != 10 {
		t.Errorf("default topResults = %d, want 10", o.topResults)
	}
}

func TestWithMaxPigmentsClamps(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{2, 2},
		{3, 3},
		{7, 3},
	}
	for _, tt := range tests {
		o := defaultSearchOptions()
		WithMaxPigments(tt.in)(&o)
		if o.maxPigments != tt.want {
			t.Errorf("WithMaxPigments(%d) set %d, want %d", tt.in, o.maxPigments, tt.want)
		}
	}
}

func TestWithTopResultsIgnoresNonPositive(t *testing.T) {
	o := defaultSearchOptions()
	WithTopResults(0)(&o)
	if o.topResults != 10 {
		t.Errorf("WithTopResults(0) changed default to %d", o.topResults)
	}
	WithTopResults(-3)(&o)
	if o.topResults != 10 {
		t.Errorf("WithTopResults(-3) changed default to %d", o.topResults)
	}
	WithTopResults(4)(&o)
	if o.topResults != 4 {
		t.Errorf("WithTopResults(4) set %d", o.topResults)
	}
}

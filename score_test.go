package skipgram

import (
	"math"
	"testing"
)

func TestMacroF1(t *testing.T) {
	tests := []struct {
		name  string
		truth []float64
		pred  []float64
		want  float64
	}{
		{
			name:  "perfect",
			truth: []float64{0, 1, 0, 0},
			pred:  []float64{0.1, 0.9, 0.2, 0},
			want:  1,
		},
		{
			name:  "all rounded to zero",
			truth: []float64{0, 1, 0, 0},
			pred:  []float64{0.1, 0.2, 0.3, 0.1},
			want:  3.0 / 7.0,
		},
		{
			name:  "single label",
			truth: []float64{0, 0, 0},
			pred:  []float64{0.2, 0.1, 0.4},
			want:  1,
		},
		{
			name:  "half rounds to even",
			truth: []float64{0, 1},
			pred:  []float64{0.5, 0.5},
			want:  1.0 / 3.0,
		},
		{
			name:  "empty",
			truth: nil,
			pred:  nil,
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MacroF1(tt.truth, tt.pred); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MacroF1() = %v, want %v", got, tt.want)
			}
		})
	}
}

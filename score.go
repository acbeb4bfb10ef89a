package skipgram

import (
	"math"
	"sort"
)

// MacroF1 rounds both vectors to the nearest integer (half to even) and
// returns the unweighted mean F1 over every label present in either one.
func MacroF1(truth, pred []float64) float64 {
	if len(truth) == 0 {
		return 0
	}

	type counts struct{ tp, fp, fn int }
	perLabel := map[float64]*counts{}
	get := func(l float64) *counts {
		c, ok := perLabel[l]
		if !ok {
			c = &counts{}
			perLabel[l] = c
		}
		return c
	}

	for i := range truth {
		t := math.RoundToEven(truth[i])
		p := math.RoundToEven(pred[i])
		if t == p {
			get(t).tp++
			continue
		}
		get(p).fp++
		get(t).fn++
	}

	labels := make([]float64, 0, len(perLabel))
	for l := range perLabel {
		labels = append(labels, l)
	}
	sort.Float64s(labels)

	var sum float64
	for _, l := range labels {
		c := perLabel[l]
		denom := 2*c.tp + c.fp + c.fn
		if denom == 0 {
			continue
		}
		sum += 2 * float64(c.tp) / float64(denom)
	}
	return sum / float64(len(labels))
}

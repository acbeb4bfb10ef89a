package skipgram

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Softmax converts raw scores into a probability distribution.
// The maximum score is subtracted first so large inputs do not overflow.
func Softmax(scores []float64) []float64 {
	out := make([]float64, len(scores))
	if len(scores) == 0 {
		return out
	}
	mx := floats.Max(scores)
	for i, v := range scores {
		out[i] = math.Exp(v - mx)
	}
	floats.Scale(1/floats.Sum(out), out)
	return out
}

package skipgram

import "math"

// logEps keeps log(p) finite when a probability underflows to zero.
const logEps = 1e-12

// CrossEntropyLoss returns the element-wise cross-entropy -t_i * log(p_i)
// between predicted probabilities and a one-hot target. Summing the result
// gives the scalar cross-entropy.
func CrossEntropyLoss(probs, target []float64) []float64 {
	out := make([]float64, len(probs))
	for i, p := range probs {
		if target[i] == 0 {
			continue
		}
		out[i] = -target[i] * math.Log(p+logEps)
	}
	return out
}

// SquaredError returns (t_i - p_i)^2 for every position.
func SquaredError(probs, target []float64) []float64 {
	out := make([]float64, len(probs))
	for i, p := range probs {
		d := target[i] - p
		out[i] = d * d
	}
	return out
}

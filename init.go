package skipgram

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Initializer returns a freshly sampled rows x cols weight matrix.
type Initializer func(rows, cols int) *mat.Dense

// xavierLimit is sqrt(3 * scale) with scale = 1 / max(1, mean(rows, cols)).
func xavierLimit(rows, cols int) float64 {
	scale := 1 / math.Max(1, float64(rows+cols)/2)
	return math.Sqrt(3.0 * scale)
}

// XavierInit samples a rows x cols matrix uniformly from [-limit, limit].
func XavierInit(rows, cols int) *mat.Dense {
	limit := xavierLimit(rows, cols)
	dist := distuv.Uniform{
		Min: -limit,
		Max: limit,
	}

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = dist.Rand()
	}
	return mat.NewDense(rows, cols, data)
}

// GlorotInit draws the matrix through gorgonia's Glorot uniform initializer.
func GlorotInit(rows, cols int) *mat.Dense {
	data := gorgonia.GlorotU(1.0)(tensor.Float64, rows, cols).([]float64)
	return mat.NewDense(rows, cols, data)
}

func initializerFor(name string) (Initializer, error) {
	switch name {
	case "", InitXavier:
		return XavierInit, nil
	case InitGlorot:
		return GlorotInit, nil
	}
	return nil, errors.Wrapf(ErrInvalidConfig, "unknown init %q", name)
}

package skipgram

import (
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// HiddenTensor copies the hidden embedding matrix into a gorgonia tensor of
// shape (vocabSize, embDim), ready to seed a gorgonia graph.
func (t *Trainer) HiddenTensor() *tensor.Dense {
	return denseToTensor(t.HiddenWeight())
}

// OutputTensor is HiddenTensor for the output embedding matrix.
func (t *Trainer) OutputTensor() *tensor.Dense {
	return denseToTensor(t.OutputWeight())
}

func denseToTensor(m *mat.Dense) *tensor.Dense {
	r, c := m.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		copy(data[i*c:(i+1)*c], m.RawRowView(i))
	}
	return tensor.New(tensor.WithShape(r, c), tensor.WithBacking(data))
}

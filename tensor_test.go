package skipgram

import (
	"testing"

	"gorgonia.org/tensor"
)

func TestHiddenTensor(t *testing.T) {
	tr := newTestTrainer(t, testConfig(5, 3))
	want := tr.HiddenWeight()

	tt := tr.HiddenTensor()
	if !tt.Shape().Eq(tensor.Shape{5, 3}) {
		t.Fatalf("HiddenTensor() shape = %v, want (5, 3)", tt.Shape())
	}
	data := tt.Data().([]float64)
	for i := 0; i < 5; i++ {
		for j := 0; j < 3; j++ {
			if got := data[i*3+j]; got != want.At(i, j) {
				t.Errorf("HiddenTensor()[%d][%d] = %v, want %v", i, j, got, want.At(i, j))
			}
		}
	}
}

func TestOutputTensorIsCopy(t *testing.T) {
	tr := newTestTrainer(t, testConfig(2, 2))
	tt := tr.OutputTensor()
	tt.Data().([]float64)[0] = 42
	if tr.OutputWeight().At(0, 0) == 42 {
		t.Error("OutputTensor() shares storage with the trainer")
	}
}

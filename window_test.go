package skipgram

import (
	"reflect"
	"testing"
)

func TestContextRange(t *testing.T) {
	tests := []struct {
		target, window, length int
		start, end             int
	}{
		{0, 1, 5, 0, 1},
		{2, 1, 5, 1, 3},
		{4, 1, 5, 3, 5},
		{3, 2, 5, 1, 5},
		{0, 0, 3, 0, 0},
	}
	for _, tt := range tests {
		start, end := ContextRange(tt.target, tt.window, tt.length)
		if start != tt.start || end != tt.end {
			t.Errorf("ContextRange(%d, %d, %d) = [%d, %d], want [%d, %d]",
				tt.target, tt.window, tt.length, start, end, tt.start, tt.end)
		}
	}
}

func TestContextPositions(t *testing.T) {
	tests := []struct {
		target, window, length int
		want                   []int
	}{
		{0, 1, 5, []int{1}},
		{4, 1, 5, []int{3}},
		{2, 1, 5, []int{1, 3}},
		{1, 2, 4, []int{0, 2, 3}},
		{0, 0, 5, nil},
		{0, 3, 1, nil},
	}
	for _, tt := range tests {
		got := ContextPositions(tt.target, tt.window, tt.length)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ContextPositions(%d, %d, %d) = %v, want %v", tt.target, tt.window, tt.length, got, tt.want)
		}
	}
}

func TestContextPositionsCount(t *testing.T) {
	const length, window = 7, 2
	for target := 0; target < length; target++ {
		start, end := ContextRange(target, window, length)
		want := min(end, length-1) - start
		if got := len(ContextPositions(target, window, length)); got != want {
			t.Errorf("target %d: %d positions, want %d", target, got, want)
		}
	}
}

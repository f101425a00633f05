package dusk

import "testing"

func TestQuadIndices(t *testing.T) {
	got := QuadIndices(nil, 2)
	want := []uint16{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("indices = %v, want %v", got, want)
		}
	}
	if n := len(QuadIndices(got[:0], 0)); n != 0 {
		t.Errorf("zero quads produced %d indices", n)
	}
}

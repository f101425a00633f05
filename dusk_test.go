package dusk

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestRectOverlaps(t *testing.T) {
	view := Rect{Width: 100, Height: 50}
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{10, 10, 5, 5}, true},
		{"covers", Rect{-10, -10, 200, 200}, true},
		{"partial", Rect{90, 40, 20, 20}, true},
		{"touching left", Rect{-10, 10, 10, 10}, false},
		{"touching right", Rect{100, 10, 10, 10}, false},
		{"touching top", Rect{10, -10, 10, 10}, false},
		{"touching bottom", Rect{10, 50, 10, 10}, false},
		{"far away", Rect{500, 500, 10, 10}, false},
	}
	for _, tt := range tests {
		if got := tt.r.Overlaps(view); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
		if got := view.Overlaps(tt.r); got != tt.want {
			t.Errorf("%s: reversed Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBlendModeEbitenBlend(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want ebiten.Blend
	}{
		{BlendDefault, ebiten.BlendCopy},
		{BlendAdd, ebiten.BlendLighter},
		{BlendNone, ebiten.BlendCopy},
	}
	for _, tt := range tests {
		if got := tt.mode.EbitenBlend(); got != tt.want {
			t.Errorf("BlendMode(%d).EbitenBlend() = %+v, want %+v", tt.mode, got, tt.want)
		}
	}
}

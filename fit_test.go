package dusk

import "testing"

func TestFitTargetSize(t *testing.T) {
	limit := Point{720, 405}
	tests := []struct {
		name  string
		image Point
		limit Point
		want  Point
	}{
		{"no limit", Point{1920, 1080}, Point{}, Point{1920, 1080}},
		{"same aspect, larger", Point{1920, 1080}, limit, Point{720, 405}},
		{"same aspect, smaller", Point{640, 360}, limit, Point{640, 360}},
		{"wider", Point{1920, 800}, limit, Point{720, 300}},
		{"taller", Point{800, 1200}, limit, Point{270, 405}},
		{"taller and small", Point{200, 300}, limit, Point{200, 300}},
		{"empty image", Point{0, 0}, limit, Point{0, 0}},
	}
	for _, tt := range tests {
		if got := FitTargetSize(tt.image, tt.limit); got != tt.want {
			t.Errorf("%s: FitTargetSize(%v, %v) = %v, want %v", tt.name, tt.image, tt.limit, got, tt.want)
		}
	}
}

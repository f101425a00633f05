package dusk

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"level-1.boss", "level-1.boss"},
		{"boss fight!", "boss_fight_"},
		{"a/b\\c", "a_b_c"},
		{" padded ", "padded"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadTextureUnpremultiplies(t *testing.T) {
	dev := newFakeDevice()
	tex := NewTexture("t", PixelFormatColor, FilterNearest)
	if err := tex.resize(dev, 2, 1); err != nil {
		t.Fatal(err)
	}
	// Half-transparent red, then opaque green.
	pix := []byte{128, 0, 0, 128, 0, 255, 0, 255}
	if err := tex.Native().WritePixels(pix); err != nil {
		t.Fatal(err)
	}

	img, err := ReadTexture(tex)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Pix[:4]; got[0] != 255 || got[3] != 128 {
		t.Errorf("pixel 0 = %v, want [255 0 0 128]", got)
	}
	if got := img.Pix[4:8]; got[1] != 255 || got[3] != 255 {
		t.Errorf("pixel 1 = %v, want [0 255 0 255]", got)
	}
}

func TestReadTextureUnallocated(t *testing.T) {
	if _, err := ReadTexture(NewTexture("t", PixelFormatColor, FilterNearest)); err == nil {
		t.Error("expected error for unallocated texture")
	}
}

func TestWritePNG(t *testing.T) {
	dev := newFakeDevice()
	tex := NewTexture("t", PixelFormatColor, FilterNearest)
	if err := tex.resize(dev, 3, 2); err != nil {
		t.Fatal(err)
	}
	img, err := ReadTexture(tex)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := decoded.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("decoded size = %dx%d, want 3x2", b.Dx(), b.Dy())
	}
}

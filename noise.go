package dusk

import (
	"image"
	"image/color"
	"math/rand/v2"

	"golang.org/x/image/draw"
)

const (
	defaultNoiseSize = 256
	noiseGridSize    = 16
)

// GenerateNoise builds a smooth size x size value-noise image. The R, G, and B
// channels hold independent noise fields; alpha is opaque. The same seed
// always produces the same image.
func GenerateNoise(size int, seed uint64) *image.RGBA {
	if size < 1 {
		size = 1
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	grid := image.NewRGBA(image.Rect(0, 0, noiseGridSize, noiseGridSize))
	for y := 0; y < noiseGridSize; y++ {
		for x := 0; x < noiseGridSize; x++ {
			grid.SetRGBA(x, y, color.RGBA{
				R: uint8(rng.UintN(256)),
				G: uint8(rng.UintN(256)),
				B: uint8(rng.UintN(256)),
				A: 255,
			})
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), grid, grid.Bounds(), draw.Src, nil)
	return dst
}

// toRGBA returns img as a tightly packed *image.RGBA anchored at the origin.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// newNoiseTexture uploads img (or generated noise when img is nil) into a
// linear-filtered texture.
func newNoiseTexture(dev Device, img image.Image, size int, seed uint64) (*Texture, error) {
	if img == nil {
		if size <= 0 {
			size = defaultNoiseSize
		}
		img = GenerateNoise(size, seed)
	}
	rgba := toRGBA(img)
	b := rgba.Bounds()

	tex := NewTexture("noise", PixelFormatColor, FilterLinear)
	if err := tex.resize(dev, b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	if err := tex.native.WritePixels(rgba.Pix); err != nil {
		tex.Dispose()
		return nil, deviceErr("upload noise", err)
	}
	return tex, nil
}

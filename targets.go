package dusk

import "fmt"

// PyramidLevels is the number of blur pyramid levels. Level 0 is full
// resolution; each following level halves the previous one.
const PyramidLevels = 3

// TargetPool owns every offscreen target the pipeline renders into and keeps
// them sized to the current render resolution.
type TargetPool struct {
	dev  Device
	size Point

	mainTex, normalTex, lightingTex, finalTex *Texture

	Main     *RenderTarget
	Lighting *RenderTarget
	Final    *RenderTarget

	// PingPongA holds the blurred result at each level after a pyramid
	// build; PingPongB is scratch for the horizontal pass.
	PingPongA [PyramidLevels]*RenderTarget
	PingPongB [PyramidLevels]*RenderTarget
}

// NewTargetPool creates the pool's targets without allocating storage.
// Storage is created by the first EnsureSize.
func NewTargetPool(dev Device) *TargetPool {
	p := &TargetPool{
		dev:         dev,
		mainTex:     NewTexture("main", PixelFormatColor, FilterNearest),
		normalTex:   NewTexture("normal", PixelFormatRGB, FilterNearest),
		lightingTex: NewTexture("lighting", PixelFormatDual, FilterNearest),
		finalTex:    NewTexture("final", PixelFormatColor, FilterNearest),
	}
	p.Main = NewRenderTarget("main", p.mainTex, p.normalTex)
	p.Lighting = NewRenderTarget("lighting", p.lightingTex)
	p.Final = NewRenderTarget("final", p.finalTex)
	for i := 0; i < PyramidLevels; i++ {
		p.PingPongA[i] = NewRenderTarget(fmt.Sprintf("blur_a%d", i),
			NewTexture(fmt.Sprintf("blur_a%d", i), PixelFormatColor, FilterLinear))
		p.PingPongB[i] = NewRenderTarget(fmt.Sprintf("blur_b%d", i),
			NewTexture(fmt.Sprintf("blur_b%d", i), PixelFormatColor, FilterLinear))
	}
	return p
}

// Size returns the last size successfully applied by EnsureSize.
func (p *TargetPool) Size() Point { return p.size }

// MainTexture returns the scene color texture.
func (p *TargetPool) MainTexture() *Texture { return p.mainTex }

// NormalTexture returns the normal/aux texture attached to the main target.
func (p *TargetPool) NormalTexture() *Texture { return p.normalTex }

// LightingTexture returns the lighting accumulation texture.
func (p *TargetPool) LightingTexture() *Texture { return p.lightingTex }

// FinalTexture returns the composite texture.
func (p *TargetPool) FinalTexture() *Texture { return p.finalTex }

// BlurTexture returns the color texture of pyramid level i in set A.
func (p *TargetPool) BlurTexture(i int) *Texture {
	return p.PingPongA[i].Texture(0)
}

// LevelSize returns the size of pyramid level i for a base size: each
// dimension is floor-divided by 2^i and clamped to at least one pixel.
func LevelSize(base Point, level int) Point {
	w, h := base.X>>level, base.Y>>level
	return Point{max(w, 1), max(h, 1)}
}

// EnsureSize resizes the main, lighting, and final targets to size and the
// blur pyramid to its per-level sizes. It is a no-op when size matches the
// last applied size. A size with a zero or negative dimension returns
// ErrInvalidTargetSize and keeps the previous size. The returned bool
// reports whether anything was reallocated.
func (p *TargetPool) EnsureSize(size Point) (bool, error) {
	if size.Empty() {
		return false, fmt.Errorf("ensure size %dx%d: %w", size.X, size.Y, ErrInvalidTargetSize)
	}
	if size == p.size {
		return false, nil
	}

	for _, rt := range [...]*RenderTarget{p.Main, p.Lighting, p.Final} {
		if _, err := rt.Resize(p.dev, size.X, size.Y); err != nil {
			return false, err
		}
	}
	for i := 0; i < PyramidLevels; i++ {
		ls := LevelSize(size, i)
		if _, err := p.PingPongA[i].Resize(p.dev, ls.X, ls.Y); err != nil {
			return false, err
		}
		if _, err := p.PingPongB[i].Resize(p.dev, ls.X, ls.Y); err != nil {
			return false, err
		}
	}

	p.size = size
	Logger().Debug("dusk: render targets resized", "width", size.X, "height", size.Y)
	return true, nil
}

// Dispose releases every target. The pool can be reused after another
// EnsureSize.
func (p *TargetPool) Dispose() {
	p.Main.Dispose()
	p.Lighting.Dispose()
	p.Final.Dispose()
	for i := 0; i < PyramidLevels; i++ {
		p.PingPongA[i].Dispose()
		p.PingPongB[i].Dispose()
	}
	p.size = Point{}
}

package dusk

// Blur directions for the separable passes.
var (
	blurHorizontal = Vec2{1, 0}
	blurVertical   = Vec2{0, 1}
)

// BlurPyramid downsamples a source texture into progressively smaller
// targets and blurs each level, producing glow sources at several scales.
// Results live in set A; set B is scratch for the horizontal pass.
type BlurPyramid struct {
	copy, downsample, blur Technique
	a, b                   *[PyramidLevels]*RenderTarget
}

// NewBlurPyramid creates a pyramid over the pool's ping-pong targets.
func NewBlurPyramid(copyTech, downsample, blur Technique, pool *TargetPool) *BlurPyramid {
	return &BlurPyramid{
		copy:       copyTech,
		downsample: downsample,
		blur:       blur,
		a:          &pool.PingPongA,
		b:          &pool.PingPongB,
	}
}

// Level returns the blurred texture at level i.
func (p *BlurPyramid) Level(i int) *Texture {
	return p.a[i].Texture(0)
}

// Build copies src into level 0, downsamples into each following level, then
// blurs every level horizontally into set B and vertically back into set A.
// Every pass fully overwrites its destination, so no state carries over
// between builds.
func (p *BlurPyramid) Build(dev Device, src *Texture) error {
	m := NewMaterial(p.copy)
	m.Blend = BlendNone
	m.SetMainTexture(src)
	if err := blitFull(dev, p.a[0], &m); err != nil {
		return deviceErr("pyramid copy", err)
	}

	for i := 1; i < PyramidLevels; i++ {
		prev := p.a[i-1].Texture(0)
		m := NewMaterial(p.downsample)
		m.Blend = BlendNone
		m.SetMainTexture(prev)
		m.SetVec2(UniformPixelOffset, prev.TexelSize())
		if err := blitFull(dev, p.a[i], &m); err != nil {
			return deviceErr("pyramid downsample", err)
		}
	}

	for i := 0; i < PyramidLevels; i++ {
		texA := p.a[i].Texture(0)
		m := NewMaterial(p.blur)
		m.Blend = BlendNone
		m.SetMainTexture(texA)
		m.SetVec2(UniformBlurDirection, blurHorizontal)
		m.SetVec2(UniformPixelOffset, texA.TexelSize())
		if err := blitFull(dev, p.b[i], &m); err != nil {
			return deviceErr("pyramid blur", err)
		}

		texB := p.b[i].Texture(0)
		m.SetMainTexture(texB)
		m.SetVec2(UniformBlurDirection, blurVertical)
		m.SetVec2(UniformPixelOffset, texB.TexelSize())
		if err := blitFull(dev, p.a[i], &m); err != nil {
			return deviceErr("pyramid blur", err)
		}
	}
	return nil
}

// blitFull blits m over the whole of dst.
func blitFull(dev Device, dst *RenderTarget, m *Material) error {
	return dev.Blit(dst, m, Rect{Width: float64(dst.Width()), Height: float64(dst.Height())})
}

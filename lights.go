package dusk

import "github.com/go-gl/mathgl/mgl32"

// LightAccumulator renders the lighting buffer: an ambient fill followed by
// one additive quad per light that reaches the view.
type LightAccumulator struct {
	solid, noise, fill Technique
	normal, noiseTex   *Texture

	solidVerts []Vertex
	noiseVerts []Vertex

	// Drawn and Culled count lights from the last Accumulate call.
	Drawn, Culled int
}

// NewLightAccumulator creates an accumulator using the given techniques.
// normal is bound as "normalBuffer" to both lighting techniques; noiseTex is
// bound as "noiseTex" to the noise technique.
func NewLightAccumulator(solid, noise, fill Technique, normal, noiseTex *Texture) *LightAccumulator {
	return &LightAccumulator{
		solid:    solid,
		noise:    noise,
		fill:     fill,
		normal:   normal,
		noiseTex: noiseTex,
	}
}

// lightVisible reports whether a light at screen position pos with the given
// far radius reaches the view rectangle [0, 0, viewW, viewH]. Touching an edge
// does not count as visible.
func lightVisible(pos Vec2, radiusFar float64, viewSize Vec2) bool {
	bounds := Rect{X: pos.X - radiusFar, Y: pos.Y - radiusFar, Width: 2 * radiusFar, Height: 2 * radiusFar}
	return bounds.Overlaps(Rect{Width: viewSize.X, Height: viewSize.Y})
}

// LightQuad builds the four vertices for a light at screen position pos.
// The center is carried in TexCoord.XY, near/far radius in TexCoord.ZW,
// intensity in Color.R and brightness in Color.G.
func LightQuad(pos Vec2, l *LightEmitter) [4]Vertex {
	left := float32(pos.X - l.RadiusFar)
	top := float32(pos.Y - l.RadiusFar)
	right := float32(pos.X + l.RadiusFar)
	bottom := float32(pos.Y + l.RadiusFar)

	tc := mgl32.Vec4{float32(pos.X), float32(pos.Y), float32(l.RadiusNear), float32(l.RadiusFar)}
	c := ColorRGBA{
		R: uint8(clamp01(l.Intensity) * 255),
		G: uint8(clamp01(l.Brightness) * 255),
	}

	return [4]Vertex{
		{Pos: mgl32.Vec3{left, top, 0}, TexCoord: tc, Color: c},
		{Pos: mgl32.Vec3{left, bottom, 0}, TexCoord: tc, Color: c},
		{Pos: mgl32.Vec3{right, bottom, 0}, TexCoord: tc, Color: c},
		{Pos: mgl32.Vec3{right, top, 0}, TexCoord: tc, Color: c},
	}
}

// Accumulate fills target with the ambient level and draws every light of
// objects that reaches the view. viewOffset is subtracted from world
// positions to get screen positions.
func (a *LightAccumulator) Accumulate(dev Device, target *RenderTarget, objects []Object, viewOffset, viewSize Vec2, ambient float64) error {
	a.Drawn, a.Culled = 0, 0

	// Ambient fill must land before any light is added on top of it.
	fill := NewMaterial(a.fill)
	fill.MainColor = Color{R: clamp01(ambient), A: 1}
	fill.Blend = BlendNone
	area := Rect{Width: float64(target.Width()), Height: float64(target.Height())}
	if err := dev.Blit(target, &fill, area); err != nil {
		return deviceErr("ambient fill", err)
	}

	a.solidVerts = a.solidVerts[:0]
	a.noiseVerts = a.noiseVerts[:0]
	for _, obj := range objects {
		src, ok := obj.(LightSource)
		if !ok {
			continue
		}
		l := src.Light()
		if l == nil {
			continue
		}
		pos := obj.Position().Sub(viewOffset)
		if !lightVisible(pos, l.RadiusFar, viewSize) {
			a.Culled++
			continue
		}
		quad := LightQuad(pos, l)
		switch l.Type {
		case LightWithNoise:
			a.noiseVerts = append(a.noiseVerts, quad[:]...)
		default:
			a.solidVerts = append(a.solidVerts, quad[:]...)
		}
		a.Drawn++
	}

	if len(a.solidVerts) > 0 {
		m := NewMaterial(a.solid)
		m.Blend = BlendAdd
		m.SetTexture(SlotNormalBuffer, a.normal)
		if err := dev.DrawQuads(target, &m, a.solidVerts); err != nil {
			return deviceErr("draw lights", err)
		}
	}
	if len(a.noiseVerts) > 0 {
		m := NewMaterial(a.noise)
		m.Blend = BlendAdd
		m.SetTexture(SlotNormalBuffer, a.normal)
		m.SetTexture(SlotNoiseTex, a.noiseTex)
		if err := dev.DrawQuads(target, &m, a.noiseVerts); err != nil {
			return deviceErr("draw noise lights", err)
		}
	}
	return nil
}

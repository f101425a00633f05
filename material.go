package dusk

import "github.com/go-gl/mathgl/mgl32"

// Technique names. These identify shader programs to the Device and must
// stay stable for shader compatibility.
const (
	TechniqueSolid             = "Solid"
	TechniqueLighting          = "Lighting"
	TechniqueLightingNoise     = "LightingNoise"
	TechniqueDownsample        = "Downsample"
	TechniqueBlur              = "Blur"
	TechniqueCombineScene      = "CombineScene"
	TechniqueCombineSceneWater = "CombineSceneWater"
	TechniqueResizeHQ2x        = "ResizeHQ2x"
	TechniqueResize3xBRZ       = "Resize3xBRZ"
	TechniqueResize4xBRZ       = "Resize4xBRZ"
	TechniqueResizeCRT         = "ResizeCRT"
)

// Texture slot names.
const (
	SlotMainTex         = "mainTex"
	SlotNormalBuffer    = "normalBuffer"
	SlotNoiseTex        = "noiseTex"
	SlotLightTex        = "lightTex"
	SlotBlurHalfTex     = "blurHalfTex"
	SlotBlurQuarterTex  = "blurQuarterTex"
	SlotDisplacementTex = "displacementTex"
)

// Uniform names.
const (
	UniformAmbientLight  = "ambientLight"
	UniformDarknessColor = "darknessColor"
	UniformWaterLevel    = "waterLevel"
	UniformPixelOffset   = "pixelOffset"
	UniformBlurDirection = "blurDirection"
	UniformMainTexSize   = "mainTexSize"
)

const (
	maxTextureSlots = 8
	maxUniforms     = 8
)

// UniformKind identifies the shape of a uniform value.
type UniformKind uint8

const (
	UniformFloat UniformKind = iota + 1
	UniformVec2
	UniformVec4
)

// Uniform is a small shader constant: a float, vec2, or vec4. Unused
// components of V are zero.
type Uniform struct {
	Kind UniformKind
	V    mgl32.Vec4
}

// Floats returns the meaningful components of u.
func (u Uniform) Floats() []float32 {
	switch u.Kind {
	case UniformFloat:
		return u.V[:1]
	case UniformVec2:
		return u.V[:2]
	case UniformVec4:
		return u.V[:4]
	}
	return nil
}

// TextureBinding binds a texture to a named slot.
type TextureBinding struct {
	Slot    string
	Texture *Texture
}

// UniformBinding binds a value to a named uniform.
type UniformBinding struct {
	Name  string
	Value Uniform
}

// Material binds a technique to named textures and uniform values for a
// single draw. It is a plain value with fixed-capacity storage: build one per
// draw call and let it go. Copies never alias each other's bindings.
type Material struct {
	Technique Technique
	// MainColor tints the draw. The zero value is treated as white.
	MainColor Color
	Blend     BlendMode

	textures    [maxTextureSlots]TextureBinding
	numTextures int
	uniforms    [maxUniforms]UniformBinding
	numUniforms int
}

// NewMaterial returns a material using t with a white main color.
func NewMaterial(t Technique) Material {
	return Material{Technique: t, MainColor: ColorWhite}
}

// TechniqueName returns the name of the material's technique, or "" if none.
func (m *Material) TechniqueName() string {
	if m.Technique == nil {
		return ""
	}
	return m.Technique.Name()
}

// SetTexture binds tex to slot, replacing any previous binding for the slot.
// Bindings beyond the fixed capacity are dropped.
func (m *Material) SetTexture(slot string, tex *Texture) {
	for i := 0; i < m.numTextures; i++ {
		if m.textures[i].Slot == slot {
			m.textures[i].Texture = tex
			return
		}
	}
	if m.numTextures == maxTextureSlots {
		return
	}
	m.textures[m.numTextures] = TextureBinding{Slot: slot, Texture: tex}
	m.numTextures++
}

// Texture returns the texture bound to slot, or nil.
func (m *Material) Texture(slot string) *Texture {
	for i := 0; i < m.numTextures; i++ {
		if m.textures[i].Slot == slot {
			return m.textures[i].Texture
		}
	}
	return nil
}

// MainTexture returns the texture bound to SlotMainTex.
func (m *Material) MainTexture() *Texture {
	return m.Texture(SlotMainTex)
}

// SetMainTexture binds tex to SlotMainTex.
func (m *Material) SetMainTexture(tex *Texture) {
	m.SetTexture(SlotMainTex, tex)
}

// Textures returns the bound textures in binding order. The returned slice
// aliases m and MUST NOT be mutated.
func (m *Material) Textures() []TextureBinding {
	return m.textures[:m.numTextures]
}

// SetValue sets a uniform, replacing any previous value with the same name.
func (m *Material) SetValue(name string, v Uniform) {
	for i := 0; i < m.numUniforms; i++ {
		if m.uniforms[i].Name == name {
			m.uniforms[i].Value = v
			return
		}
	}
	if m.numUniforms == maxUniforms {
		return
	}
	m.uniforms[m.numUniforms] = UniformBinding{Name: name, Value: v}
	m.numUniforms++
}

// SetFloat sets a scalar uniform.
func (m *Material) SetFloat(name string, v float64) {
	m.SetValue(name, Uniform{Kind: UniformFloat, V: mgl32.Vec4{float32(v)}})
}

// SetVec2 sets a two-component uniform.
func (m *Material) SetVec2(name string, v Vec2) {
	m.SetValue(name, Uniform{Kind: UniformVec2, V: mgl32.Vec4{float32(v.X), float32(v.Y)}})
}

// SetColor sets a four-component uniform from a non-premultiplied color.
func (m *Material) SetColor(name string, c Color) {
	m.SetValue(name, Uniform{Kind: UniformVec4, V: mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}})
}

// Value returns the uniform named name.
func (m *Material) Value(name string) (Uniform, bool) {
	for i := 0; i < m.numUniforms; i++ {
		if m.uniforms[i].Name == name {
			return m.uniforms[i].Value, true
		}
	}
	return Uniform{}, false
}

// Uniforms returns the set uniforms in order. The returned slice aliases m
// and MUST NOT be mutated.
func (m *Material) Uniforms() []UniformBinding {
	return m.uniforms[:m.numUniforms]
}

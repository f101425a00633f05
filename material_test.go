package dusk

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMaterialTextures(t *testing.T) {
	tech := &fakeTechnique{name: "T"}
	m := NewMaterial(tech)
	if m.MainColor != ColorWhite {
		t.Errorf("MainColor = %v, want white", m.MainColor)
	}
	if m.TechniqueName() != "T" {
		t.Errorf("TechniqueName() = %q", m.TechniqueName())
	}

	a := NewTexture("a", PixelFormatColor, FilterNearest)
	b := NewTexture("b", PixelFormatColor, FilterNearest)
	m.SetMainTexture(a)
	m.SetTexture(SlotLightTex, b)
	m.SetMainTexture(b)

	if m.MainTexture() != b {
		t.Error("SetMainTexture did not replace the binding")
	}
	if len(m.Textures()) != 2 {
		t.Errorf("len(Textures()) = %d, want 2", len(m.Textures()))
	}
	if m.Texture(SlotNoiseTex) != nil {
		t.Error("unbound slot should be nil")
	}
}

func TestMaterialCapacity(t *testing.T) {
	var m Material
	for i := 0; i < maxTextureSlots+2; i++ {
		m.SetTexture(string(rune('a'+i)), nil)
	}
	if len(m.Textures()) != maxTextureSlots {
		t.Errorf("len(Textures()) = %d, want %d", len(m.Textures()), maxTextureSlots)
	}
	if m.TechniqueName() != "" {
		t.Errorf("TechniqueName() = %q, want empty", m.TechniqueName())
	}
}

func TestMaterialUniforms(t *testing.T) {
	var m Material
	m.SetFloat(UniformAmbientLight, 0.5)
	m.SetVec2(UniformPixelOffset, Vec2{0.25, 0.125})
	m.SetColor(UniformDarknessColor, Color{0.1, 0.2, 0.3, 1})
	m.SetFloat(UniformAmbientLight, 0.75)

	if len(m.Uniforms()) != 3 {
		t.Fatalf("len(Uniforms()) = %d, want 3", len(m.Uniforms()))
	}
	tests := []struct {
		name string
		want []float32
	}{
		{UniformAmbientLight, []float32{0.75}},
		{UniformPixelOffset, []float32{0.25, 0.125}},
		{UniformDarknessColor, []float32{0.1, 0.2, 0.3, 1}},
	}
	for _, tt := range tests {
		u, ok := m.Value(tt.name)
		if !ok {
			t.Errorf("%s missing", tt.name)
			continue
		}
		got := u.Floats()
		if len(got) != len(tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
	if _, ok := m.Value(UniformWaterLevel); ok {
		t.Error("unset uniform reported present")
	}
}

func TestMaterialCopiesDoNotAlias(t *testing.T) {
	m := NewMaterial(nil)
	m.SetFloat(UniformWaterLevel, 0.1)
	c := m
	c.SetFloat(UniformWaterLevel, 0.9)
	if u, _ := m.Value(UniformWaterLevel); u.V[0] != float32(0.1) {
		t.Errorf("original changed to %v", u.V[0])
	}
}

func TestUniformComponents(t *testing.T) {
	var m Material
	m.SetVec2(UniformPixelOffset, Vec2{0.5, 0.25})
	m.SetColor(UniformDarknessColor, Color{R: 1, G: 0.5, B: 0.25, A: 1})

	off, _ := m.Value(UniformPixelOffset)
	if off.V != (mgl32.Vec4{0.5, 0.25, 0, 0}) {
		t.Errorf("pixelOffset V = %v, want (0.5, 0.25, 0, 0)", off.V)
	}
	if got := off.Floats(); len(got) != 2 {
		t.Errorf("vec2 Floats len = %d, want 2", len(got))
	}

	dark, _ := m.Value(UniformDarknessColor)
	if !dark.V.ApproxEqual(mgl32.Vec4{1, 0.5, 0.25, 1}) {
		t.Errorf("darknessColor V = %v", dark.V)
	}
	if got := dark.Floats(); len(got) != 4 || got[3] != 1 {
		t.Errorf("vec4 Floats = %v", got)
	}
}

package dusk

import "testing"

func TestSlotSourcesWaterKeepsDisplacement(t *testing.T) {
	dev := newFakeDevice()
	pool := newSizedPool(dev, 320, 180)
	c := NewCompositor(mustTech(dev, TechniqueCombineScene), mustTech(dev, TechniqueCombineSceneWater))
	in := testCompositeInputs(pool, 90, 180)
	m, underwater := c.Material(in)
	if !underwater {
		t.Fatal("water technique not selected")
	}

	slots := builtinSlots[TechniqueCombineSceneWater]
	want := [4][]*Texture{
		{in.Main},
		{in.Lighting},
		{in.Blur[1], in.Blur[2]},
		{in.Displacement},
	}
	for i, slot := range slots {
		got := slotSources(nil, slot, &m)
		if len(got) != len(want[i]) {
			t.Errorf("image %d (%s): %d sources, want %d", i, slot, len(got), len(want[i]))
			continue
		}
		for j := range got {
			if got[j] != want[i][j] {
				t.Errorf("image %d (%s) source %d = %s, want %s", i, slot, j, got[j].Name(), want[i][j].Name())
			}
		}
	}
}

func TestSlotSourcesDry(t *testing.T) {
	dev := newFakeDevice()
	pool := newSizedPool(dev, 320, 180)
	c := NewCompositor(mustTech(dev, TechniqueCombineScene), mustTech(dev, TechniqueCombineSceneWater))
	in := testCompositeInputs(pool, 500, 180)
	m, _ := c.Material(in)

	slots := builtinSlots[TechniqueCombineScene]
	want := [4]*Texture{in.Main, in.Lighting, in.Blur[1], in.Blur[2]}
	for i, slot := range slots {
		got := slotSources(nil, slot, &m)
		if len(got) != 1 || got[0] != want[i] {
			t.Errorf("image %d (%s) = %v, want [%s]", i, slot, got, want[i].Name())
		}
	}
}

func TestSlotSourcesUnbound(t *testing.T) {
	var m Material
	if got := slotSources(nil, "", &m); len(got) != 0 {
		t.Errorf("empty slot sources = %d, want 0", len(got))
	}
	if got := slotSources(nil, slotGlowMix, &m); len(got) != 0 {
		t.Errorf("unbound mixed slot sources = %d, want 0", len(got))
	}
	half := NewTexture("half", PixelFormatColor, FilterLinear)
	m.SetTexture(SlotBlurHalfTex, half)
	if got := slotSources(nil, slotGlowMix, &m); len(got) != 1 || got[0] != half {
		t.Errorf("partly bound mixed slot = %v, want [half]", got)
	}
}

func TestKageUniformName(t *testing.T) {
	tests := []struct{ in, want string }{
		{UniformAmbientLight, "AmbientLight"},
		{UniformWaterLevel, "WaterLevel"},
		{"Already", "Already"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := kageUniformName(tt.in); got != tt.want {
			t.Errorf("kageUniformName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

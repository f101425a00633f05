package dusk

import "testing"

func newTestAccumulator(dev *fakeDevice, pool *TargetPool, noise *Texture) *LightAccumulator {
	return NewLightAccumulator(
		mustTech(dev, TechniqueLighting),
		mustTech(dev, TechniqueLightingNoise),
		mustTech(dev, TechniqueSolid),
		pool.NormalTexture(),
		noise,
	)
}

func lightActor(x, y, far float64) *Actor {
	a := NewActor(x, y)
	a.Emitter = &LightEmitter{Intensity: 1, Brightness: 0.5, RadiusNear: far / 2, RadiusFar: far}
	return a
}

func TestLightVisible(t *testing.T) {
	view := Vec2{320, 180}
	tests := []struct {
		name string
		pos  Vec2
		far  float64
		want bool
	}{
		{"inside", Vec2{100, 100}, 10, true},
		{"partial left", Vec2{-5, 50}, 10, true},
		{"partial bottom right", Vec2{325, 185}, 10, true},
		{"outside left", Vec2{-60, 50}, 50, false},
		{"outside above", Vec2{50, -20}, 10, false},
		{"outside right", Vec2{340, 50}, 10, false},
		{"outside below", Vec2{50, 200}, 10, false},
		{"touching left edge", Vec2{-10, 50}, 10, false},
		{"touching right edge", Vec2{330, 50}, 10, false},
		{"larger than view", Vec2{160, 90}, 1000, true},
	}
	for _, tt := range tests {
		if got := lightVisible(tt.pos, tt.far, view); got != tt.want {
			t.Errorf("%s: lightVisible(%v, %v) = %v, want %v", tt.name, tt.pos, tt.far, got, tt.want)
		}
	}
}

func TestLightQuadEncoding(t *testing.T) {
	l := &LightEmitter{Intensity: 0.5, Brightness: 1, RadiusNear: 8, RadiusFar: 20}
	q := LightQuad(Vec2{30, 40}, l)

	wantPos := [4][2]float32{{10, 20}, {10, 60}, {50, 60}, {50, 20}}
	for i, v := range q {
		if v.Pos.X() != wantPos[i][0] || v.Pos.Y() != wantPos[i][1] {
			t.Errorf("vertex %d pos = (%v,%v), want %v", i, v.Pos.X(), v.Pos.Y(), wantPos[i])
		}
		if v.TexCoord.X() != 30 || v.TexCoord.Y() != 40 || v.TexCoord.Z() != 8 || v.TexCoord.W() != 20 {
			t.Errorf("vertex %d texcoord = %v, want (30,40,8,20)", i, v.TexCoord)
		}
		if v.Color.R != 127 || v.Color.G != 255 {
			t.Errorf("vertex %d color = %+v, want R=127 G=255", i, v.Color)
		}
	}
}

func TestAccumulateAmbientFillFirst(t *testing.T) {
	dev := newFakeDevice()
	pool := newSizedPool(dev, 320, 180)
	acc := newTestAccumulator(dev, pool, nil)

	objs := []Object{lightActor(100, 100, 20)}
	if err := acc.Accumulate(dev, pool.Lighting, objs, Vec2{}, Vec2{320, 180}, 0.25); err != nil {
		t.Fatal(err)
	}
	if len(dev.calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(dev.calls))
	}

	fill := dev.calls[0]
	if fill.kind != callBlit || fill.dst != pool.Lighting || fill.tech() != TechniqueSolid {
		t.Errorf("first call = %+v, want Solid blit into lighting", fill)
	}
	if fill.mat.MainColor != (Color{R: 0.25, A: 1}) {
		t.Errorf("ambient color = %+v, want R=0.25", fill.mat.MainColor)
	}
	if fill.mat.Blend != BlendNone {
		t.Errorf("ambient blend = %v, want BlendNone", fill.mat.Blend)
	}
	if fill.area != (Rect{Width: 320, Height: 180}) {
		t.Errorf("ambient area = %v, want full target", fill.area)
	}

	lights := dev.calls[1]
	if lights.kind != callQuads || lights.tech() != TechniqueLighting {
		t.Errorf("second call = %+v, want Lighting quads", lights)
	}
	if lights.mat.Blend != BlendAdd {
		t.Errorf("light blend = %v, want BlendAdd", lights.mat.Blend)
	}
	if lights.mat.Texture(SlotNormalBuffer) != pool.NormalTexture() {
		t.Error("normalBuffer not bound to the main target's aux texture")
	}
}

func TestAccumulateCullsOffscreenLight(t *testing.T) {
	dev := newFakeDevice()
	pool := newSizedPool(dev, 320, 180)
	acc := newTestAccumulator(dev, pool, nil)

	// World (100,100) with the view offset at (160,50) lands on screen at
	// (-60,50); the right edge is -10.
	objs := []Object{lightActor(100, 100, 50)}
	if err := acc.Accumulate(dev, pool.Lighting, objs, Vec2{160, 50}, Vec2{320, 180}, 0); err != nil {
		t.Fatal(err)
	}
	if n := len(dev.callsOfKind(callQuads)); n != 0 {
		t.Errorf("quad draws = %d, want 0", n)
	}
	if len(dev.callsOfKind(callBlit)) != 1 {
		t.Error("ambient fill should still run")
	}
	if acc.Drawn != 0 || acc.Culled != 1 {
		t.Errorf("Drawn, Culled = %d, %d; want 0, 1", acc.Drawn, acc.Culled)
	}
}

func TestAccumulatePartialOverlapOneQuad(t *testing.T) {
	dev := newFakeDevice()
	pool := newSizedPool(dev, 320, 180)
	acc := newTestAccumulator(dev, pool, nil)

	objs := []Object{lightActor(110, 100, 50)} // screen (-50,50), right edge 0 is culled
	objs = append(objs, lightActor(115, 100, 50))
	if err := acc.Accumulate(dev, pool.Lighting, objs, Vec2{160, 50}, Vec2{320, 180}, 0); err != nil {
		t.Fatal(err)
	}
	quads := dev.callsOfKind(callQuads)
	if len(quads) != 1 {
		t.Fatalf("quad draws = %d, want 1", len(quads))
	}
	if len(quads[0].verts) != 4 {
		t.Errorf("vertices = %d, want 4", len(quads[0].verts))
	}
	v := quads[0].verts[0]
	if v.TexCoord.X() != -45 || v.TexCoord.Y() != 50 {
		t.Errorf("light center = (%v,%v), want (-45,50)", v.TexCoord.X(), v.TexCoord.Y())
	}
}

func TestAccumulateSplitsByType(t *testing.T) {
	dev := newFakeDevice()
	pool := newSizedPool(dev, 320, 180)
	noise := NewTexture("noise", PixelFormatColor, FilterLinear)
	acc := newTestAccumulator(dev, pool, noise)

	solidA := lightActor(50, 50, 10)
	solidB := lightActor(80, 50, 10)
	noisy := lightActor(120, 60, 10)
	noisy.Emitter.Type = LightWithNoise
	dark := NewActor(10, 10) // no emitter
	objs := []Object{solidA, noisy, dark, solidB}

	if err := acc.Accumulate(dev, pool.Lighting, objs, Vec2{}, Vec2{320, 180}, 0.1); err != nil {
		t.Fatal(err)
	}
	quads := dev.callsOfKind(callQuads)
	if len(quads) != 2 {
		t.Fatalf("quad draws = %d, want 2", len(quads))
	}
	if quads[0].tech() != TechniqueLighting || len(quads[0].verts) != 8 {
		t.Errorf("solid draw = %s with %d verts, want Lighting with 8", quads[0].tech(), len(quads[0].verts))
	}
	if quads[1].tech() != TechniqueLightingNoise || len(quads[1].verts) != 4 {
		t.Errorf("noise draw = %s with %d verts, want LightingNoise with 4", quads[1].tech(), len(quads[1].verts))
	}
	if quads[1].mat.Texture(SlotNoiseTex) != noise {
		t.Error("noiseTex not bound for noise lights")
	}
	if quads[0].mat.Texture(SlotNoiseTex) != nil {
		t.Error("noiseTex bound for solid lights")
	}
	if acc.Drawn != 3 {
		t.Errorf("Drawn = %d, want 3", acc.Drawn)
	}
}

func TestAccumulateDeviceError(t *testing.T) {
	dev := newFakeDevice()
	pool := newSizedPool(dev, 64, 64)
	acc := newTestAccumulator(dev, pool, nil)
	dev.failOn = func(c drawCall) bool { return c.kind == callQuads }

	err := acc.Accumulate(dev, pool.Lighting, []Object{lightActor(32, 32, 8)}, Vec2{}, Vec2{64, 64}, 0)
	de, ok := err.(*DeviceError)
	if !ok {
		t.Fatalf("err = %v, want *DeviceError", err)
	}
	if de.Op != "draw lights" {
		t.Errorf("Op = %q, want %q", de.Op, "draw lights")
	}
}

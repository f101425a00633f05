package dusk

import (
	"errors"
	"fmt"
)

// --- Recording fake device used across the package tests ---

type fakeTechnique struct{ name string }

func (t *fakeTechnique) Name() string { return t.name }

type fakeTexture struct {
	w, h     int
	pix      []byte
	disposed bool
	dev      *fakeDevice
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

func (t *fakeTexture) WritePixels(pix []byte) error {
	if len(pix) != len(t.pix) {
		return fmt.Errorf("write %d bytes into %d", len(pix), len(t.pix))
	}
	copy(t.pix, pix)
	return nil
}

func (t *fakeTexture) ReadPixels(pix []byte) error {
	if len(pix) != len(t.pix) {
		return fmt.Errorf("read %d bytes from %d", len(pix), len(t.pix))
	}
	copy(pix, t.pix)
	return nil
}

func (t *fakeTexture) Dispose() {
	if !t.disposed {
		t.disposed = true
		t.dev.live--
	}
}

type callKind uint8

const (
	callBlit callKind = iota
	callQuads
	callObjects
)

type drawCall struct {
	kind  callKind
	dst   *RenderTarget
	mat   Material
	area  Rect
	verts []Vertex
	pass  ObjectPass
}

func (c drawCall) tech() string { return c.mat.TechniqueName() }

type fakeDevice struct {
	techniques map[string]*fakeTechnique
	// missing names techniques that fail to load.
	missing map[string]bool

	created int
	live    int
	calls   []drawCall

	// failOn, when set, makes the matching call return errFake.
	failOn func(c drawCall) bool
}

var errFake = errors.New("fake device failure")

func newFakeDevice(missing ...string) *fakeDevice {
	d := &fakeDevice{
		techniques: make(map[string]*fakeTechnique),
		missing:    make(map[string]bool),
	}
	for _, name := range missing {
		d.missing[name] = true
	}
	return d
}

func (d *fakeDevice) CreateTexture(w, h int, _ PixelFormat, _ FilterMode) (NativeTexture, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidTargetSize
	}
	d.created++
	d.live++
	return &fakeTexture{w: w, h: h, pix: make([]byte, 4*w*h), dev: d}, nil
}

func (d *fakeDevice) Technique(name string) (Technique, error) {
	if d.missing[name] {
		return nil, fmt.Errorf("%w: %s", ErrShaderUnavailable, name)
	}
	t, ok := d.techniques[name]
	if !ok {
		t = &fakeTechnique{name: name}
		d.techniques[name] = t
	}
	return t, nil
}

func (d *fakeDevice) record(c drawCall) error {
	if d.failOn != nil && d.failOn(c) {
		return errFake
	}
	d.calls = append(d.calls, c)
	return nil
}

func (d *fakeDevice) Blit(dst *RenderTarget, m *Material, area Rect) error {
	return d.record(drawCall{kind: callBlit, dst: dst, mat: *m, area: area})
}

func (d *fakeDevice) DrawQuads(dst *RenderTarget, m *Material, verts []Vertex) error {
	return d.record(drawCall{kind: callQuads, dst: dst, mat: *m, verts: append([]Vertex(nil), verts...)})
}

func (d *fakeDevice) DrawObjects(dst *RenderTarget, pass ObjectPass) error {
	pass.Objects = append([]Object(nil), pass.Objects...)
	return d.record(drawCall{kind: callObjects, dst: dst, pass: pass})
}

func (d *fakeDevice) reset() { d.calls = d.calls[:0] }

// callsOfKind returns the recorded calls of kind k.
func (d *fakeDevice) callsOfKind(k callKind) []drawCall {
	var out []drawCall
	for _, c := range d.calls {
		if c.kind == k {
			out = append(out, c)
		}
	}
	return out
}

// mustTech resolves a technique on a fake device.
func mustTech(d *fakeDevice, name string) Technique {
	t, err := d.Technique(name)
	if err != nil {
		panic(err)
	}
	return t
}

// newSizedPool returns a pool sized to w x h on d.
func newSizedPool(d *fakeDevice, w, h int) *TargetPool {
	p := NewTargetPool(d)
	if _, err := p.EnsureSize(Point{w, h}); err != nil {
		panic(err)
	}
	return p
}

package dusk

// Texture is a 2D pixel buffer owned by a RenderTarget or by the pipeline.
// Resizing reallocates the native storage but keeps the *Texture pointer,
// so materials built from it stay valid across frames.
type Texture struct {
	name   string
	w, h   int
	format PixelFormat
	filter FilterMode
	native NativeTexture
}

// NewTexture describes a texture without allocating storage. Storage is
// created by the first resize.
func NewTexture(name string, format PixelFormat, filter FilterMode) *Texture {
	return &Texture{name: name, format: format, filter: filter}
}

// Name returns the debug name of the texture.
func (t *Texture) Name() string { return t.name }

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.w }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.h }

// Size returns the texture dimensions.
func (t *Texture) Size() Point { return Point{t.w, t.h} }

// Format returns the pixel format.
func (t *Texture) Format() PixelFormat { return t.format }

// Filter returns the sampling filter.
func (t *Texture) Filter() FilterMode { return t.filter }

// Native returns the backend handle, or nil before the first allocation.
func (t *Texture) Native() NativeTexture { return t.native }

// TexelSize returns (1/width, 1/height), the "pixelOffset" uniform value.
func (t *Texture) TexelSize() Vec2 {
	if t.w == 0 || t.h == 0 {
		return Vec2{}
	}
	return Vec2{1 / float64(t.w), 1 / float64(t.h)}
}

// resize reallocates the native storage at (w, h). The old storage is only
// released after the new one was created, so a failed resize leaves the
// texture usable at its previous size.
func (t *Texture) resize(dev Device, w, h int) error {
	if w <= 0 || h <= 0 {
		return ErrInvalidTargetSize
	}
	if t.native != nil && t.w == w && t.h == h {
		return nil
	}
	native, err := dev.CreateTexture(w, h, t.format, t.filter)
	if err != nil {
		return deviceErr("create texture "+t.name, err)
	}
	if t.native != nil {
		t.native.Dispose()
	}
	t.native = native
	t.w = w
	t.h = h
	return nil
}

// Dispose releases the native storage.
func (t *Texture) Dispose() {
	if t.native != nil {
		t.native.Dispose()
		t.native = nil
	}
	t.w, t.h = 0, 0
}

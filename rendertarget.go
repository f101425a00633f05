package dusk

// RenderTarget is an offscreen destination owning one or more textures of
// equal size. Texture 0 is the color attachment; further textures are
// auxiliary attachments (e.g. the normal buffer of the main target).
// A RenderTarget keeps its identity across resizes.
type RenderTarget struct {
	name     string
	textures []*Texture
	w, h     int
}

// NewRenderTarget creates an unallocated render target over textures.
func NewRenderTarget(name string, textures ...*Texture) *RenderTarget {
	return &RenderTarget{name: name, textures: textures}
}

// Name returns the debug name of the target.
func (rt *RenderTarget) Name() string { return rt.name }

// Texture returns attachment i, or nil when out of range.
func (rt *RenderTarget) Texture(i int) *Texture {
	if i < 0 || i >= len(rt.textures) {
		return nil
	}
	return rt.textures[i]
}

// Textures returns all attachments. The returned slice MUST NOT be mutated.
func (rt *RenderTarget) Textures() []*Texture { return rt.textures }

// Width returns the target width in pixels.
func (rt *RenderTarget) Width() int { return rt.w }

// Height returns the target height in pixels.
func (rt *RenderTarget) Height() int { return rt.h }

// Size returns the target dimensions.
func (rt *RenderTarget) Size() Point { return Point{rt.w, rt.h} }

// Resize reallocates every attachment at (w, h). It reports whether any
// reallocation happened; resizing to the current size is a no-op. A
// non-positive dimension returns ErrInvalidTargetSize and leaves the target
// at its last valid size.
func (rt *RenderTarget) Resize(dev Device, w, h int) (bool, error) {
	if w <= 0 || h <= 0 {
		return false, ErrInvalidTargetSize
	}
	if rt.w == w && rt.h == h && rt.allocated() {
		return false, nil
	}
	for _, tex := range rt.textures {
		if err := tex.resize(dev, w, h); err != nil {
			return false, err
		}
	}
	rt.w = w
	rt.h = h
	return true, nil
}

func (rt *RenderTarget) allocated() bool {
	for _, tex := range rt.textures {
		if tex.native == nil {
			return false
		}
	}
	return true
}

// Dispose releases every attachment. The target should not be drawn to
// afterwards until it is resized again.
func (rt *RenderTarget) Dispose() {
	for _, tex := range rt.textures {
		tex.Dispose()
	}
	rt.w, rt.h = 0, 0
}

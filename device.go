package dusk

// Device is the graphics backend the pipeline draws through. All calls are
// made from the goroutine driving the frame; implementations need no locking.
type Device interface {
	// CreateTexture allocates backing storage for a texture.
	CreateTexture(width, height int, format PixelFormat, filter FilterMode) (NativeTexture, error)
	// Technique resolves a named shader technique. Unknown or broken
	// techniques return an error wrapping ErrShaderUnavailable.
	// TechniqueSolid must always resolve.
	Technique(name string) (Technique, error)
	// Blit draws a single quad covering area of dst using m. A nil dst
	// targets the display surface.
	Blit(dst *RenderTarget, m *Material, area Rect) error
	// DrawQuads draws verts, four per quad, into dst using m.
	DrawQuads(dst *RenderTarget, m *Material, verts []Vertex) error
	// DrawObjects runs a generic "draw visible objects" pass into dst.
	DrawObjects(dst *RenderTarget, pass ObjectPass) error
}

// NativeTexture is the backend's handle for a texture's pixel storage.
type NativeTexture interface {
	Size() (width, height int)
	// WritePixels replaces the texture contents with premultiplied RGBA bytes.
	WritePixels(pix []byte) error
	// ReadPixels copies premultiplied RGBA bytes into pix.
	ReadPixels(pix []byte) error
	Dispose()
}

// Technique is an opaque shader program with named texture and uniform slots.
type Technique interface {
	Name() string
}

// ObjectPass describes a generic draw of scene objects into a target.
type ObjectPass struct {
	Objects    []Object
	Matrix     MatrixMode
	Clear      ClearFlag
	ClearColor Color
	// ViewOffset is subtracted from world positions when Matrix is
	// MatrixWorldSpace.
	ViewOffset Vec2
	ViewSize   Vec2
	// Input, when non-nil, is the material the step was configured with.
	Input *Material
}

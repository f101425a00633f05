package dusk

import "errors"

// ResizeMode selects the upscaling filter applied when the composite is
// drawn to the display.
type ResizeMode uint8

const (
	ResizeNone  ResizeMode = iota // plain passthrough
	ResizeHQ2x                    // hq2x edge-preserving upscale
	ResizeXBRZ3                   // 3x xBRZ
	ResizeXBRZ4                   // 4x xBRZ
	ResizeCRT                     // CRT scanline emulation
)

// TechniqueName returns the technique implementing the mode.
func (m ResizeMode) TechniqueName() string {
	switch m {
	case ResizeHQ2x:
		return TechniqueResizeHQ2x
	case ResizeXBRZ3:
		return TechniqueResize3xBRZ
	case ResizeXBRZ4:
		return TechniqueResize4xBRZ
	case ResizeCRT:
		return TechniqueResizeCRT
	default:
		return TechniqueSolid
	}
}

func (m ResizeMode) String() string {
	switch m {
	case ResizeHQ2x:
		return "hq2x"
	case ResizeXBRZ3:
		return "xbrz3"
	case ResizeXBRZ4:
		return "xbrz4"
	case ResizeCRT:
		return "crt"
	default:
		return "none"
	}
}

// ParseResizeMode maps a mode name (as returned by String) to a ResizeMode.
func ParseResizeMode(s string) (ResizeMode, error) {
	for m := ResizeNone; m <= ResizeCRT; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return ResizeNone, errors.New("dusk: unknown resize mode " + s)
}

// ResizeFilter draws the final composite onto the display surface.
type ResizeFilter struct {
	tech Technique
}

// NewResizeFilter creates a filter drawing with tech.
func NewResizeFilter(tech Technique) *ResizeFilter {
	return &ResizeFilter{tech: tech}
}

// Technique returns the technique in use, which may be the Solid fallback.
func (f *ResizeFilter) Technique() Technique { return f.tech }

// Apply blits src to the display surface over area, passing the source size
// as "mainTexSize" for texel-accurate sampling.
func (f *ResizeFilter) Apply(dev Device, src *Texture, area Rect) error {
	m := NewMaterial(f.tech)
	m.Blend = BlendNone
	m.SetMainTexture(src)
	m.SetVec2(UniformMainTexSize, src.Size().Vec2())
	if err := dev.Blit(nil, &m, area); err != nil {
		return deviceErr("resize", err)
	}
	return nil
}

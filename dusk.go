package dusk

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black, the default darkness color.
var ColorBlack = Color{0, 0, 0, 1}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Point is an integer pixel size or position.
type Point struct {
	X, Y int
}

// Vec2 converts p to a floating-point vector.
func (p Point) Vec2() Vec2 {
	return Vec2{float64(p.X), float64(p.Y)}
}

// Empty reports whether either dimension is non-positive.
func (p Point) Empty() bool {
	return p.X <= 0 || p.Y <= 0
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Overlaps reports whether r and other share interior area. Rectangles
// that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height &&
		other.Y < r.Y+r.Height
}

// BlendMode selects how a draw combines with its target.
type BlendMode uint8

const (
	BlendDefault BlendMode = iota // plain copy
	BlendAdd                      // additive, used by light quads
	BlendNone                     // opaque copy for full-target passes
)

// EbitenBlend returns the ebiten.Blend for b.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	if b == BlendAdd {
		return ebiten.BlendLighter
	}
	return ebiten.BlendCopy
}

// PixelFormat describes the channel layout of a texture.
type PixelFormat uint8

const (
	PixelFormatColor PixelFormat = iota // RGBA, 8 bits per channel
	PixelFormatRGB                      // RGB, used for the normal/aux buffer
	PixelFormatDual                     // two channels (light intensity, brightness)
)

// FilterMode selects texture sampling.
type FilterMode uint8

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

// MatrixMode selects the coordinate space a render step draws in.
type MatrixMode uint8

const (
	MatrixWorldSpace  MatrixMode = iota // positions are offset by the view
	MatrixScreenSpace                   // positions are in target pixels
)

// ClearFlag is a bitmask of buffers cleared before a step draws.
type ClearFlag uint8

const (
	ClearColor ClearFlag = 1 << iota
	ClearDepth

	ClearNone ClearFlag = 0
	ClearAll            = ClearColor | ClearDepth
)

// VisibilityFlag is a bitmask that objects and render steps use to decide
// which objects a step draws.
type VisibilityFlag uint32

const (
	VisibilityGroup0 VisibilityFlag = 1 << iota
	VisibilityGroup1
	VisibilityGroup2
	VisibilityGroup3

	VisibilityNone VisibilityFlag = 0

	// VisibilityScreenOverlay marks UI/overlay objects drawn after composition.
	VisibilityScreenOverlay VisibilityFlag = 1 << 31

	VisibilityAllGroups VisibilityFlag = VisibilityScreenOverlay - 1
	VisibilityAll                      = VisibilityAllGroups | VisibilityScreenOverlay
)

// ColorRGBA is an 8-bit premultiplied color. It implements color.Color so it
// can be passed to image.Fill directly.
type ColorRGBA struct {
	R, G, B, A uint8
}

func (c ColorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

// toRGBA converts a Color to a premultiplied ColorRGBA.
func (c Color) toRGBA() ColorRGBA {
	return ColorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

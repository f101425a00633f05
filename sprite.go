package dusk

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is an Actor drawn by the Ebitengine backend. A nil Image draws a
// solid Width x Height rectangle in Color.
type Sprite struct {
	Actor

	Image *ebiten.Image
	// Width and Height size a solid sprite; image sprites use the image size
	// scaled by ScaleX/ScaleY.
	Width, Height  float64
	ScaleX, ScaleY float64
	// PivotX and PivotY are the normalized anchor placed at Pos.
	PivotX, PivotY float64
	Color          Color
}

// NewSprite creates a sprite at (x, y) in VisibilityGroup0. img may be nil.
func NewSprite(x, y float64, img *ebiten.Image) *Sprite {
	return &Sprite{
		Actor:  *NewActor(x, y),
		Image:  img,
		ScaleX: 1,
		ScaleY: 1,
		Color:  ColorWhite,
	}
}

// NewSolidSprite creates a w x h rectangle sprite at (x, y).
func NewSolidSprite(x, y, w, h float64, c Color) *Sprite {
	s := NewSprite(x, y, nil)
	s.Width, s.Height = w, h
	s.Color = c
	return s
}

// Size returns the drawn size in world units.
func (s *Sprite) Size() Vec2 {
	if s.Image == nil {
		return Vec2{s.Width * s.ScaleX, s.Height * s.ScaleY}
	}
	b := s.Image.Bounds()
	return Vec2{float64(b.Dx()) * s.ScaleX, float64(b.Dy()) * s.ScaleY}
}

// DrawTo implements EbitenDrawer.
func (s *Sprite) DrawTo(dst *ebiten.Image, offset Vec2, tint Color) {
	size := s.Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	x := s.Pos.X - offset.X - size.X*s.PivotX
	y := s.Pos.Y - offset.Y - size.Y*s.PivotY

	c := Color{s.Color.R * tint.R, s.Color.G * tint.G, s.Color.B * tint.B, s.Color.A * tint.A}

	var op ebiten.DrawImageOptions
	src := s.Image
	if src == nil {
		src = whitePixel()
		op.GeoM.Scale(size.X, size.Y)
	} else {
		op.GeoM.Scale(s.ScaleX, s.ScaleY)
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	dst.DrawImage(src, &op)
}

var whitePixelImage *ebiten.Image

// whitePixel returns a shared 1x1 white image, created on first use.
func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorRGBA{255, 255, 255, 255})
	}
	return whitePixelImage
}

package dusk

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the view reference point. X and Y are the world position shown
// at the center of the render target.
type Camera struct {
	X, Y float64

	// BoundsEnabled clamps the camera so the visible area stays within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to.
	Bounds Rect

	followTarget  Object
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	scrollTween *scrollAnim
}

// NewCamera creates a camera centered on (x, y).
func NewCamera(x, y float64) *Camera {
	return &Camera{X: x, Y: y}
}

// Follow makes the camera track target with the given offset and lerp factor.
// A lerp of 1.0 snaps immediately; lower values give smoother following.
func (c *Camera) Follow(target Object, offsetX, offsetY, lerp float64) {
	c.followTarget = target
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances follow and scroll animations by dt seconds and clamps the
// camera to its bounds for a view of viewSize.
func (c *Camera) Update(dt float32, viewSize Vec2) {
	if c.followTarget != nil {
		p := c.followTarget.Position()
		c.X += (p.X + c.followOffsetX - c.X) * c.followLerp
		c.Y += (p.Y + c.followOffsetY - c.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds(viewSize)
	}
}

// clampToBounds restricts the camera so a view of viewSize stays within Bounds.
func (c *Camera) clampToBounds(viewSize Vec2) {
	halfW := viewSize.X / 2
	halfH := viewSize.Y / 2

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// Bounds smaller than the view center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// Offset returns the world position of the view's top-left corner for a
// view of viewSize. Subtracting it converts world to screen coordinates.
func (c *Camera) Offset(viewSize Vec2) Vec2 {
	return Vec2{c.X - viewSize.X/2, c.Y - viewSize.Y/2}
}

// WorldToScreen converts world coordinates to view coordinates.
func (c *Camera) WorldToScreen(wx, wy float64, viewSize Vec2) (sx, sy float64) {
	o := c.Offset(viewSize)
	return wx - o.X, wy - o.Y
}

// ScreenToWorld converts view coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64, viewSize Vec2) (wx, wy float64) {
	o := c.Offset(viewSize)
	return sx + o.X, sy + o.Y
}

// VisibleBounds returns the world-space rectangle covered by a view of viewSize.
func (c *Camera) VisibleBounds(viewSize Vec2) Rect {
	o := c.Offset(viewSize)
	return Rect{X: o.X, Y: o.Y, Width: viewSize.X, Height: viewSize.Y}
}

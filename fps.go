package dusk

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSWidget is a screen overlay object showing the current FPS and TPS.
// The text is refreshed every half second by Update.
type FPSWidget struct {
	X, Y float64

	img        *ebiten.Image
	lastUpdate float64
	dirty      bool
}

// NewFPSWidget creates a widget at the top-left corner.
func NewFPSWidget() *FPSWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &FPSWidget{img: ebiten.NewImage(100, 32), dirty: true}
}

// Position implements Object.
func (w *FPSWidget) Position() Vec2 { return Vec2{w.X, w.Y} }

// Visibility implements Object. The widget is drawn after composition.
func (w *FPSWidget) Visibility() VisibilityFlag { return VisibilityScreenOverlay }

// Update advances the refresh timer by dt seconds.
func (w *FPSWidget) Update(dt float64) {
	w.lastUpdate += dt
	if w.lastUpdate >= 0.5 {
		w.lastUpdate = 0
		w.dirty = true
	}
}

// DrawTo implements EbitenDrawer.
func (w *FPSWidget) DrawTo(dst *ebiten.Image, offset Vec2, tint Color) {
	if w.dirty {
		w.dirty = false
		w.img.Clear()
		// Semi-transparent background for readability
		w.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(w.X-offset.X, w.Y-offset.Y)
	op.ColorScale.ScaleWithColor(tint.toRGBA())
	dst.DrawImage(w.img, &op)
}

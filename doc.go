// Package dusk is a 2D deferred-lighting renderer for [Ebitengine].
//
// Dusk draws a scene into a set of pooled render targets, accumulates the
// light of every visible light source into a light buffer, blurs that buffer
// into a half and quarter resolution pyramid, and composites scene, light,
// and blur into a final image that is optionally upscaled with a pixel-art
// resize filter.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	level := dusk.NewLevel(0.1)
//	torch := dusk.NewSolidSprite(100, 80, 8, 8, dusk.ColorWhite)
//	torch.Emitter = &dusk.LightEmitter{Intensity: 1, RadiusNear: 16, RadiusFar: 96}
//	level.AddObject(torch)
//	dusk.Run(level, dusk.NewCamera(100, 80), dusk.RunConfig{
//		Title: "My Game", Width: 640, Height: 360,
//	})
//
// For full control, create an [EbitenDevice] and a [Pipeline] yourself and
// call [Pipeline.Render] from your own Draw:
//
//	dev := dusk.NewEbitenDevice()
//	p, err := dusk.NewPipeline(dev, world, cam, dusk.Config{Resize: dusk.ResizeHQ2x})
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		dev.SetScreen(screen)
//		b := screen.Bounds()
//		p.Render(dusk.Rect{Width: float64(b.Dx()), Height: float64(b.Dy())}, dusk.Point{X: b.Dx(), Y: b.Dy()})
//	}
//
// # Frame layout
//
// A frame is a list of [RenderStep] values run in order by the [Sequencer].
// The default list draws world objects into the main target, combines the
// scene with its light, draws screen overlays, and resizes the result to the
// display. Steps can be replaced or reordered, and any step kind can be
// given a custom handler with [Sequencer.Handle].
//
// Render targets are sized by [FitTargetSize] so that the display is an
// integer multiple of the target, and are reallocated only when that size
// changes.
//
// # Worlds
//
// The pipeline reads its objects through the [World] interface. [Level] is a
// simple in-memory world; the dusk/ecs package adapts a [Donburi] world.
// Ambient light fades are driven by [gween] tweens.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package dusk

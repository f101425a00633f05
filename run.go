package dusk

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	// Update, when set, is called once per tick with the elapsed seconds
	// before the camera and world are advanced.
	Update func(dt float32) error
	// Pipeline configures the renderer.
	Pipeline Config
	// OnPipeline, when set, is called once with the pipeline after it is
	// created on the first tick.
	OnPipeline func(p *Pipeline)
}

// updater is implemented by worlds that animate, such as Level.
type updater interface {
	Update(dt float32)
}

// game adapts a Pipeline to ebiten.Game.
type game struct {
	cfg      RunConfig
	world    World
	camera   *Camera
	dev      *EbitenDevice
	pipeline *Pipeline
	fps      *FPSWidget
}

// Run opens a window and renders world through a new pipeline until the
// window is closed. cam may be nil. Frames that fail to render are logged
// and skipped.
func Run(world World, cam *Camera, cfg RunConfig) error {
	if world == nil {
		return errors.New("dusk: nil world")
	}
	if cfg.Width <= 0 {
		cfg.Width = 720
	}
	if cfg.Height <= 0 {
		cfg.Height = 405
	}
	g := &game{
		cfg:    cfg,
		world:  world,
		camera: cam,
		dev:    NewEbitenDevice(),
	}
	if cfg.ShowFPS {
		g.fps = NewFPSWidget()
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	defer g.dispose()
	return ebiten.RunGame(g)
}

func (g *game) Update() error {
	if g.pipeline == nil {
		p, err := NewPipeline(g.dev, g.world, g.camera, g.cfg.Pipeline)
		if err != nil {
			return err
		}
		g.pipeline = p
		if g.cfg.OnPipeline != nil {
			g.cfg.OnPipeline(p)
		}
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	if g.cfg.Update != nil {
		if err := g.cfg.Update(dt); err != nil {
			return err
		}
	}
	if u, ok := g.world.(updater); ok {
		u.Update(dt)
	}
	if g.camera != nil {
		g.camera.Update(dt, g.pipeline.Targets().Size().Vec2())
	}
	if g.fps != nil {
		g.fps.Update(float64(dt))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.pipeline == nil {
		return
	}
	g.dev.SetScreen(screen)
	b := screen.Bounds()
	viewport := Rect{Width: float64(b.Dx()), Height: float64(b.Dy())}
	if err := g.pipeline.Render(viewport, Point{b.Dx(), b.Dy()}); err != nil {
		Logger().Warn("dusk: frame skipped", "err", err)
	}
	if g.fps != nil {
		g.fps.DrawTo(screen, Vec2{}, ColorWhite)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *game) dispose() {
	if g.pipeline != nil {
		g.pipeline.Dispose()
	}
	g.dev.Dispose()
}

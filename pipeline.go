package dusk

import (
	"errors"
	"fmt"
	"image"
	"time"
)

const defaultCaptureDir = "screenshots"

// Config controls pipeline construction. The zero value is usable.
type Config struct {
	// Resize selects the filter used to draw the composite to the display.
	Resize ResizeMode
	// MaxTargetSize caps the internal render resolution while keeping the
	// output aspect ratio. Zero renders at the output size.
	MaxTargetSize Point
	// NoiseImage overrides the generated noise/displacement texture.
	NoiseImage image.Image
	// NoiseSize is the edge length of the generated noise texture. Default 256.
	NoiseSize int
	// NoiseSeed seeds the generated noise texture.
	NoiseSeed uint64
	// CaptureDir is where Capture writes PNG files. Default "screenshots".
	CaptureDir string
	// Debug enables per-frame stats logging at debug level.
	Debug bool
}

func (c Config) withDefaults() Config {
	if c.CaptureDir == "" {
		c.CaptureDir = defaultCaptureDir
	}
	if c.NoiseSize <= 0 {
		c.NoiseSize = defaultNoiseSize
	}
	return c
}

// Frame is the per-frame state handed to every render step. It is rebuilt
// by each Render call and only valid during it.
type Frame struct {
	Viewport   Rect
	ImageSize  Point
	TargetSize Point
	// ViewOffset is the world position of the view's top-left corner.
	ViewOffset Vec2
	ViewSize   Vec2
	Objects    []Object
	Ambient    float64
	Darkness   Color
	// WaterLevel is the water surface in view space.
	WaterLevel float64
}

// Pipeline is the deferred lighting renderer. It owns every target and
// texture it allocates and borrows the world's objects for one frame at a
// time. A Pipeline is not safe for concurrent use; drive it from the
// goroutine that owns the Device.
type Pipeline struct {
	dev    Device
	cfg    Config
	world  World
	camera *Camera

	pool       *TargetPool
	noise      *Texture
	lights     *LightAccumulator
	pyramid    *BlurPyramid
	compositor *Compositor
	resize     *ResizeFilter
	seq        *Sequencer

	frame   Frame
	visible []Object

	captureQueue []string
	observer     FrameObserver
	stats        FrameStats
	frameCount   uint64
}

// NewPipeline loads every technique from dev, uploads the noise texture, and
// builds the default step sequence. Techniques that fail to load fall back
// to TechniqueSolid; only a missing Solid technique is fatal. cam may be nil,
// in which case world coordinates are used as view coordinates.
func NewPipeline(dev Device, world World, cam *Camera, cfg Config) (*Pipeline, error) {
	if dev == nil {
		return nil, errors.New("dusk: nil device")
	}
	if world == nil {
		return nil, errors.New("dusk: nil world")
	}
	cfg = cfg.withDefaults()

	solid, err := dev.Technique(TechniqueSolid)
	if err != nil {
		return nil, fmt.Errorf("dusk: load %s technique: %w", TechniqueSolid, err)
	}

	noise, err := newNoiseTexture(dev, cfg.NoiseImage, cfg.NoiseSize, cfg.NoiseSeed)
	if err != nil {
		return nil, fmt.Errorf("dusk: noise texture: %w", err)
	}

	p := &Pipeline{
		dev:    dev,
		cfg:    cfg,
		world:  world,
		camera: cam,
		pool:   NewTargetPool(dev),
		noise:  noise,
	}
	p.lights = NewLightAccumulator(
		loadTechnique(dev, TechniqueLighting, solid),
		loadTechnique(dev, TechniqueLightingNoise, solid),
		solid,
		p.pool.NormalTexture(),
		noise,
	)
	p.pyramid = NewBlurPyramid(
		solid,
		loadTechnique(dev, TechniqueDownsample, solid),
		loadTechnique(dev, TechniqueBlur, solid),
		p.pool,
	)
	p.compositor = NewCompositor(
		loadTechnique(dev, TechniqueCombineScene, solid),
		loadTechnique(dev, TechniqueCombineSceneWater, solid),
	)
	p.resize = NewResizeFilter(loadTechnique(dev, cfg.Resize.TechniqueName(), solid))

	p.seq = NewSequencer(DefaultSteps(p.pool))
	p.seq.Handle(StepGeneric, p.drawObjects)
	p.seq.Handle(StepCombineScene, p.combineScene)
	p.seq.Handle(StepResize, p.resizeToDisplay)

	Logger().Info("dusk: pipeline ready",
		"resize", cfg.Resize,
		"resizeTechnique", p.resize.Technique().Name(),
		"noise", noise.Size(),
	)
	return p, nil
}

// loadTechnique resolves name, falling back to solid when it is unavailable.
func loadTechnique(dev Device, name string, solid Technique) Technique {
	if name == TechniqueSolid {
		return solid
	}
	t, err := dev.Technique(name)
	if err != nil {
		Logger().Warn("dusk: technique unavailable, using "+TechniqueSolid,
			"technique", name, "err", err)
		return solid
	}
	return t
}

// Render draws one frame: it sizes the targets for imageSize, then runs the
// step sequence with viewport as the display area. On error the frame is
// abandoned; pipeline state stays valid for the next call.
func (p *Pipeline) Render(viewport Rect, imageSize Point) error {
	start := time.Now()
	p.frameCount++
	p.stats = FrameStats{Frame: p.frameCount}

	targetSize := FitTargetSize(imageSize, p.cfg.MaxTargetSize)
	resized, err := p.pool.EnsureSize(targetSize)
	if err != nil {
		if !errors.Is(err, ErrInvalidTargetSize) || p.pool.Size().Empty() {
			return fmt.Errorf("dusk: render: %w", err)
		}
		Logger().Warn("dusk: keeping previous target size",
			"requested", targetSize, "current", p.pool.Size())
	}
	p.stats.Resized = resized
	p.stats.TargetSize = p.pool.Size()

	p.beginFrame(viewport, imageSize)
	err = p.seq.Run(&p.frame)
	p.frame.Objects = nil
	clear(p.visible[:cap(p.visible)])
	p.visible = p.visible[:0]
	if err != nil {
		return fmt.Errorf("dusk: render: %w", err)
	}

	p.flushCaptures()
	p.stats.TotalTime = time.Since(start)
	if p.observer != nil {
		p.observer.FrameRendered(p.stats)
	}
	p.debugLog(&p.stats)
	return nil
}

// beginFrame snapshots the world and camera into p.frame.
func (p *Pipeline) beginFrame(viewport Rect, imageSize Point) {
	size := p.pool.Size()
	viewSize := size.Vec2()
	var offset Vec2
	if p.camera != nil {
		offset = p.camera.Offset(viewSize)
	}
	p.frame = Frame{
		Viewport:   viewport,
		ImageSize:  imageSize,
		TargetSize: size,
		ViewOffset: offset,
		ViewSize:   viewSize,
		Objects:    p.world.Objects(),
		Ambient:    clamp01(p.world.AmbientLight()),
		Darkness:   p.world.DarknessColor(),
		WaterLevel: p.world.WaterLevel() - offset.Y,
	}
}

// drawObjects is the generic step handler. A step whose visibility mask
// selects no object still clears its output; it is skipped only when it
// has nothing to clear.
func (p *Pipeline) drawObjects(step *RenderStep, f *Frame) error {
	p.visible = selectVisible(p.visible[:0], f.Objects, step.Visibility)
	if len(p.visible) == 0 && step.Clear == ClearNone {
		p.stats.StepsSkipped++
		return nil
	}
	pass := ObjectPass{
		Objects:    p.visible,
		Matrix:     step.Matrix,
		Clear:      step.Clear,
		ClearColor: step.ClearColor,
		ViewSize:   f.ViewSize,
		Input:      step.Input,
	}
	if step.Matrix == MatrixWorldSpace {
		pass.ViewOffset = f.ViewOffset
	}
	if err := p.dev.DrawObjects(step.Output, pass); err != nil {
		return deviceErr("draw objects", err)
	}
	p.stats.ObjectsDrawn += len(p.visible)
	return nil
}

// combineScene accumulates lights, builds the glow pyramid from the main
// scene, and composites everything into the step's output.
func (p *Pipeline) combineScene(step *RenderStep, f *Frame) error {
	t := time.Now()
	if err := p.lights.Accumulate(p.dev, p.pool.Lighting, f.Objects, f.ViewOffset, f.ViewSize, f.Ambient); err != nil {
		return err
	}
	p.stats.LightsDrawn = p.lights.Drawn
	p.stats.LightsCulled = p.lights.Culled
	p.stats.LightTime = time.Since(t)

	t = time.Now()
	if err := p.pyramid.Build(p.dev, p.pool.MainTexture()); err != nil {
		return err
	}
	p.stats.PyramidTime = time.Since(t)

	t = time.Now()
	in := CompositeInputs{
		Main:         p.pool.MainTexture(),
		Lighting:     p.pool.LightingTexture(),
		Displacement: p.noise,
		Ambient:      f.Ambient,
		Darkness:     f.Darkness,
		WaterLevel:   f.WaterLevel,
		ViewHeight:   f.ViewSize.Y,
	}
	for i := range in.Blur {
		in.Blur[i] = p.pyramid.Level(i)
	}
	dst := step.Output
	if dst == nil {
		dst = p.pool.Final
	}
	underwater, err := p.compositor.Combine(p.dev, dst, in)
	if err != nil {
		return err
	}
	p.stats.Underwater = underwater
	p.stats.CompositeTime = time.Since(t)
	return nil
}

// resizeToDisplay draws the final composite onto the display over the
// frame's viewport.
func (p *Pipeline) resizeToDisplay(_ *RenderStep, f *Frame) error {
	return p.resize.Apply(p.dev, p.pool.FinalTexture(), f.Viewport)
}

// FinalTexture returns the composite of the last rendered frame. It is
// read-only for callers.
func (p *Pipeline) FinalTexture() *Texture { return p.pool.FinalTexture() }

// Targets returns the pipeline's target pool.
func (p *Pipeline) Targets() *TargetPool { return p.pool }

// Sequencer returns the step sequencer. Handlers may be replaced to
// customize individual step kinds.
func (p *Pipeline) Sequencer() *Sequencer { return p.seq }

// Camera returns the camera, which may be nil.
func (p *Pipeline) Camera() *Camera { return p.camera }

// SetCamera replaces the camera. Nil uses world coordinates as view
// coordinates.
func (p *Pipeline) SetCamera(cam *Camera) { p.camera = cam }

// Config returns the configuration with defaults applied.
func (p *Pipeline) Config() Config { return p.cfg }

// Stats returns the stats of the last frame.
func (p *Pipeline) Stats() FrameStats { return p.stats }

// Dispose releases every target and the noise texture.
func (p *Pipeline) Dispose() {
	p.pool.Dispose()
	if p.noise != nil {
		p.noise.Dispose()
	}
}

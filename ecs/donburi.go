package ecs

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/dusk"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Components read by World. Entities need Position and Visibility to be
// drawn; Light and Sprite are optional.
var (
	Position   = donburi.NewComponentType[dusk.Vec2]()
	Visibility = donburi.NewComponentType[dusk.VisibilityFlag]()
	Light      = donburi.NewComponentType[dusk.LightEmitter]()
	Sprite     = donburi.NewComponentType[dusk.Sprite]()
)

// FrameEventType is the Donburi event type for rendered frame stats.
// Subscribe to this in your ECS systems to receive per-frame metrics.
var FrameEventType = events.NewEventType[dusk.FrameStats]()

// World implements dusk.World over a Donburi world. Objects are produced in
// query order each time Objects is called.
type World struct {
	world donburi.World
	query *donburi.Query

	ambient    *dusk.AmbientFader
	waterLevel float64
	darkness   dusk.Color

	entities []entityObject
	objects  []dusk.Object
}

// NewWorld creates a dusk.World reading entities from w, with the given
// ambient light, no water, and black darkness.
func NewWorld(w donburi.World, ambient float64) *World {
	return &World{
		world:      w,
		query:      donburi.NewQuery(filter.Contains(Position, Visibility)),
		ambient:    dusk.NewAmbientFader(ambient),
		waterLevel: math.Inf(1),
		darkness:   dusk.ColorBlack,
	}
}

// Donburi returns the underlying Donburi world.
func (w *World) Donburi() donburi.World { return w.world }

// Objects implements dusk.World. The returned slice is reused by the next
// call.
func (w *World) Objects() []dusk.Object {
	w.entities = w.entities[:0]
	w.query.Each(w.world, func(e *donburi.Entry) {
		w.entities = append(w.entities, entityObject{entry: e})
	})
	w.objects = w.objects[:0]
	for i := range w.entities {
		w.objects = append(w.objects, &w.entities[i])
	}
	return w.objects
}

// AmbientLight implements dusk.World.
func (w *World) AmbientLight() float64 { return w.ambient.Current() }

// Ambient returns the ambient fader.
func (w *World) Ambient() *dusk.AmbientFader { return w.ambient }

// WaterLevel implements dusk.World.
func (w *World) WaterLevel() float64 { return w.waterLevel }

// SetWaterLevel sets the world-space Y of the water surface.
func (w *World) SetWaterLevel(y float64) { w.waterLevel = y }

// DarknessColor implements dusk.World.
func (w *World) DarknessColor() dusk.Color { return w.darkness }

// SetDarknessColor sets the color unlit areas fade to.
func (w *World) SetDarknessColor(c dusk.Color) { w.darkness = c }

// Update advances the ambient fade by dt seconds.
func (w *World) Update(dt float32) { w.ambient.Update(dt) }

// entityObject exposes a Donburi entry as a dusk.LightSource and
// dusk.EbitenDrawer.
type entityObject struct {
	entry *donburi.Entry
}

func (o *entityObject) Position() dusk.Vec2 {
	return Position.GetValue(o.entry)
}

func (o *entityObject) Visibility() dusk.VisibilityFlag {
	return Visibility.GetValue(o.entry)
}

func (o *entityObject) Light() *dusk.LightEmitter {
	if !o.entry.HasComponent(Light) {
		return nil
	}
	return Light.Get(o.entry)
}

func (o *entityObject) DrawTo(dst *ebiten.Image, offset dusk.Vec2, tint dusk.Color) {
	if !o.entry.HasComponent(Sprite) {
		return
	}
	s := Sprite.Get(o.entry)
	s.Pos = Position.GetValue(o.entry)
	s.DrawTo(dst, offset, tint)
}

// NewLight creates an entity at pos in group 0 emitting l.
func NewLight(w donburi.World, pos dusk.Vec2, l dusk.LightEmitter) donburi.Entity {
	e := w.Create(Position, Visibility, Light)
	entry := w.Entry(e)
	Position.SetValue(entry, pos)
	Visibility.SetValue(entry, dusk.VisibilityGroup0)
	Light.SetValue(entry, l)
	return e
}

// NewSprite creates an entity drawing s at its position with the given
// visibility.
func NewSprite(w donburi.World, s dusk.Sprite, vis dusk.VisibilityFlag) donburi.Entity {
	e := w.Create(Position, Visibility, Sprite)
	entry := w.Entry(e)
	Position.SetValue(entry, s.Pos)
	Visibility.SetValue(entry, vis)
	Sprite.SetValue(entry, s)
	return e
}

type donburiObserver struct {
	world donburi.World
}

// NewDonburiObserver creates a FrameObserver that publishes frame stats to
// FrameEventType. Events are delivered by FrameEventType.ProcessEvents.
func NewDonburiObserver(world donburi.World) dusk.FrameObserver {
	return &donburiObserver{world: world}
}

func (o *donburiObserver) FrameRendered(stats dusk.FrameStats) {
	FrameEventType.Publish(o.world, stats)
}

package dusk

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Level is a ready-made World: an ordered object list plus ambient light,
// water, and darkness state.
type Level struct {
	objects    []Object
	ambient    *AmbientFader
	waterLevel float64
	darkness   Color
}

// NewLevel creates an empty level with the given ambient light, no water,
// and black darkness.
func NewLevel(ambient float64) *Level {
	return &Level{
		ambient:    NewAmbientFader(ambient),
		waterLevel: math.Inf(1),
		darkness:   ColorBlack,
	}
}

// AddObject appends obj to the draw order.
func (l *Level) AddObject(obj Object) {
	l.objects = append(l.objects, obj)
}

// RemoveObject removes obj. No-op if obj is not in the level.
func (l *Level) RemoveObject(obj Object) {
	for i, existing := range l.objects {
		if existing == obj {
			l.objects = append(l.objects[:i], l.objects[i+1:]...)
			return
		}
	}
}

// ClearObjects removes every object.
func (l *Level) ClearObjects() {
	clear(l.objects)
	l.objects = l.objects[:0]
}

// Objects implements World. The returned slice MUST NOT be mutated.
func (l *Level) Objects() []Object {
	return l.objects
}

// AmbientLight implements World.
func (l *Level) AmbientLight() float64 {
	return l.ambient.Current()
}

// Ambient returns the level's ambient fader.
func (l *Level) Ambient() *AmbientFader {
	return l.ambient
}

// SetAmbientLight fades the ambient light to level over duration seconds.
func (l *Level) SetAmbientLight(level float64, duration float32, easeFn ease.TweenFunc) {
	l.ambient.FadeTo(level, duration, easeFn)
}

// WaterLevel implements World.
func (l *Level) WaterLevel() float64 {
	return l.waterLevel
}

// SetWaterLevel sets the world-space Y of the water surface. Use +Inf for a
// level without water.
func (l *Level) SetWaterLevel(y float64) {
	l.waterLevel = y
}

// DarknessColor implements World.
func (l *Level) DarknessColor() Color {
	return l.darkness
}

// SetDarknessColor sets the color unlit areas fade to.
func (l *Level) SetDarknessColor(c Color) {
	l.darkness = c
}

// Update advances the ambient fade by dt seconds.
func (l *Level) Update(dt float32) {
	l.ambient.Update(dt)
}

package dusk

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AmbientFader animates the ambient light level toward a target value.
// There is no global animation manager; the owner calls Update each tick.
type AmbientFader struct {
	current float64
	target  float64
	tween   *gween.Tween
}

// NewAmbientFader creates a fader resting at level.
func NewAmbientFader(level float64) *AmbientFader {
	level = clamp01(level)
	return &AmbientFader{current: level, target: level}
}

// Current returns the level to render with this frame.
func (f *AmbientFader) Current() float64 { return f.current }

// Target returns the level the fader is heading to.
func (f *AmbientFader) Target() float64 { return f.target }

// Fading reports whether a fade is in progress.
func (f *AmbientFader) Fading() bool { return f.tween != nil }

// Set jumps to level immediately, cancelling any fade.
func (f *AmbientFader) Set(level float64) {
	level = clamp01(level)
	f.current = level
	f.target = level
	f.tween = nil
}

// FadeTo starts a fade from the current level to level over duration
// seconds. A non-positive duration jumps immediately.
func (f *AmbientFader) FadeTo(level float64, duration float32, easeFn ease.TweenFunc) {
	level = clamp01(level)
	if duration <= 0 {
		f.Set(level)
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	f.target = level
	f.tween = gween.New(float32(f.current), float32(level), duration, easeFn)
}

// Update advances the fade by dt seconds.
func (f *AmbientFader) Update(dt float32) {
	if f.tween == nil {
		return
	}
	val, done := f.tween.Update(dt)
	f.current = clamp01(float64(val))
	if done {
		f.current = f.target
		f.tween = nil
	}
}

// Package ecs provides Donburi adapters for dusk.
//
// [NewWorld] feeds a [Donburi] world to a dusk pipeline: every entity with
// [Position] and [Visibility] is a scene object, [Light] makes it a light
// source, and [Sprite] draws it with the Ebitengine backend.
// [NewDonburiObserver] publishes per-frame stats as typed events; subscribe
// to [FrameEventType] in your ECS systems to receive them.
//
// Usage:
//
//	w := donburi.NewWorld()
//	ecs.NewLight(w, dusk.Vec2{X: 100, Y: 80}, dusk.LightEmitter{Intensity: 1, RadiusFar: 64})
//	p, err := dusk.NewPipeline(dev, ecs.NewWorld(w, 0.2), cam, dusk.Config{})
//	p.SetObserver(ecs.NewDonburiObserver(w))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

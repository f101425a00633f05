package dusk

// Object is a visible scene object supplied by the world each frame. The
// pipeline only borrows objects for the duration of a frame.
type Object interface {
	// Position returns the object's world-space position.
	Position() Vec2
	// Visibility returns the groups the object belongs to.
	Visibility() VisibilityFlag
}

// LightSource is an Object that may emit light. Light returns nil when the
// object currently emits none.
type LightSource interface {
	Object
	Light() *LightEmitter
}

// World supplies per-frame scene state to the pipeline.
type World interface {
	// Objects returns the visible objects in draw order. The slice is only
	// read during the frame.
	Objects() []Object
	// AmbientLight returns the current ambient light level in [0, 1].
	AmbientLight() float64
	// WaterLevel returns the world-space Y of the water surface.
	WaterLevel() float64
	// DarknessColor returns the color unlit areas fade to.
	DarknessColor() Color
}

// LightType selects the lighting technique for a light.
type LightType uint8

const (
	LightSolid     LightType = iota // smooth radial falloff
	LightWithNoise                  // falloff modulated by the noise texture
)

// LightEmitter describes the light an object emits. The pipeline reads it
// and never modifies it.
type LightEmitter struct {
	// Intensity in [0, 1] controls how much the light cancels darkness.
	Intensity float64
	// Brightness in [0, 1] controls the additive glow on top of the scene.
	Brightness float64
	// RadiusNear is the radius of full strength.
	RadiusNear float64
	// RadiusFar is the radius where the light fades out. It also bounds
	// the quad drawn for the light.
	RadiusFar float64
	Type      LightType
}

// Actor is a minimal LightSource for callers without their own object model.
type Actor struct {
	Pos     Vec2
	Group   VisibilityFlag
	Emitter *LightEmitter
}

// NewActor creates an actor at (x, y) in VisibilityGroup0.
func NewActor(x, y float64) *Actor {
	return &Actor{Pos: Vec2{x, y}, Group: VisibilityGroup0}
}

// Position implements Object.
func (a *Actor) Position() Vec2 { return a.Pos }

// Visibility implements Object.
func (a *Actor) Visibility() VisibilityFlag { return a.Group }

// Light implements LightSource.
func (a *Actor) Light() *LightEmitter { return a.Emitter }

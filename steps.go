package dusk

import "fmt"

// Step identifiers of the default sequence.
const (
	StepIDScene        = "Scene"
	StepIDCombineScene = "CombineScene"
	StepIDOverlay      = "Overlay"
	StepIDResize       = "Resize"
)

// StepKind selects which handler runs a step.
type StepKind uint8

const (
	StepGeneric      StepKind = iota // draw visible objects into the output
	StepCombineScene                 // lights, pyramid, and composition
	StepResize                       // upscale the composite to the display
)

func (k StepKind) String() string {
	switch k {
	case StepCombineScene:
		return "combine-scene"
	case StepResize:
		return "resize"
	default:
		return "generic"
	}
}

// RenderStep is one stage of the per-frame sequence.
type RenderStep struct {
	ID         string
	Kind       StepKind
	Matrix     MatrixMode
	Visibility VisibilityFlag
	Clear      ClearFlag
	ClearColor Color
	// Input is an optional material the step was configured with.
	Input *Material
	// Output is the destination; nil means the display surface.
	Output *RenderTarget
}

// StepHandler runs a single step for a frame.
type StepHandler func(step *RenderStep, f *Frame) error

// Sequencer runs a fixed, ordered list of steps once per frame, dispatching
// each by kind.
type Sequencer struct {
	steps    []RenderStep
	handlers map[StepKind]StepHandler
}

// NewSequencer creates a sequencer over steps. The slice is copied.
func NewSequencer(steps []RenderStep) *Sequencer {
	return &Sequencer{
		steps:    append([]RenderStep(nil), steps...),
		handlers: make(map[StepKind]StepHandler, 3),
	}
}

// Handle installs h for every step of kind, replacing any previous handler.
func (s *Sequencer) Handle(kind StepKind, h StepHandler) {
	s.handlers[kind] = h
}

// Handler returns the handler installed for kind.
func (s *Sequencer) Handler(kind StepKind) StepHandler {
	return s.handlers[kind]
}

// Steps returns the step list. The returned slice MUST NOT be mutated.
func (s *Sequencer) Steps() []RenderStep {
	return s.steps
}

// Run executes every step in order and stops at the first error.
func (s *Sequencer) Run(f *Frame) error {
	for i := range s.steps {
		step := &s.steps[i]
		h := s.handlers[step.Kind]
		if h == nil {
			return fmt.Errorf("dusk: no handler for %s step %q", step.Kind, step.ID)
		}
		if err := h(step, f); err != nil {
			return fmt.Errorf("step %q: %w", step.ID, err)
		}
	}
	return nil
}

// DefaultSteps returns the standard sequence: the world-space scene into the
// main target, composition into the final target, screen-space overlay into
// the final target, then the resize to the display.
func DefaultSteps(pool *TargetPool) []RenderStep {
	return []RenderStep{
		{
			ID:         StepIDScene,
			Kind:       StepGeneric,
			Matrix:     MatrixWorldSpace,
			Visibility: VisibilityAllGroups,
			Clear:      ClearAll,
			Output:     pool.Main,
		},
		{
			ID:         StepIDCombineScene,
			Kind:       StepCombineScene,
			Matrix:     MatrixScreenSpace,
			Visibility: VisibilityNone,
			Clear:      ClearNone,
			Output:     pool.Final,
		},
		{
			ID:         StepIDOverlay,
			Kind:       StepGeneric,
			Matrix:     MatrixScreenSpace,
			Visibility: VisibilityScreenOverlay,
			Clear:      ClearNone,
			Output:     pool.Final,
		},
		{
			ID:         StepIDResize,
			Kind:       StepResize,
			Matrix:     MatrixScreenSpace,
			Visibility: VisibilityNone,
			Clear:      ClearNone,
		},
	}
}

// selectVisible appends to dst the objects matching mask.
func selectVisible(dst, objects []Object, mask VisibilityFlag) []Object {
	if mask == VisibilityNone {
		return dst
	}
	for _, obj := range objects {
		if obj.Visibility()&mask != 0 {
			dst = append(dst, obj)
		}
	}
	return dst
}

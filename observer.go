package dusk

// FrameObserver receives stats after every successfully rendered frame.
type FrameObserver interface {
	FrameRendered(stats FrameStats)
}

// FrameObserverFunc adapts a function to FrameObserver.
type FrameObserverFunc func(stats FrameStats)

// FrameRendered implements FrameObserver.
func (f FrameObserverFunc) FrameRendered(stats FrameStats) { f(stats) }

// SetObserver installs o to receive stats after each frame. Nil removes it.
func (p *Pipeline) SetObserver(o FrameObserver) {
	p.observer = o
}

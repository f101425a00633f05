package dusk

import "time"

// FrameStats holds per-frame metrics for the last rendered frame.
type FrameStats struct {
	Frame        uint64
	TargetSize   Point
	Resized      bool
	LightsDrawn  int
	LightsCulled int
	Underwater   bool
	// ObjectsDrawn counts objects passed to generic steps.
	ObjectsDrawn int
	StepsSkipped int

	LightTime     time.Duration
	PyramidTime   time.Duration
	CompositeTime time.Duration
	TotalTime     time.Duration
}

// debugLog writes frame stats at debug level.
func (p *Pipeline) debugLog(stats *FrameStats) {
	if !p.cfg.Debug {
		return
	}
	Logger().Debug("dusk: frame",
		"frame", stats.Frame,
		"size", stats.TargetSize,
		"resized", stats.Resized,
		"lights", stats.LightsDrawn,
		"culled", stats.LightsCulled,
		"underwater", stats.Underwater,
		"objects", stats.ObjectsDrawn,
		"skipped", stats.StepsSkipped,
		"lightTime", stats.LightTime,
		"pyramidTime", stats.PyramidTime,
		"compositeTime", stats.CompositeTime,
		"total", stats.TotalTime,
	)
}

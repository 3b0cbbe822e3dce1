package parameter

import "time"

// Frame Loop Timing
const (
	// FrameInterval is the target frame interval (~60 FPS)
	FrameInterval = time.Second / 60

	// EventQueueSize bounds terminal events waiting for the frame loop
	EventQueueSize = 64
)

// Design Space
const (
	// DesignWidth and DesignHeight of zero make scenes lay out in viewport units
	DesignWidth  = 0
	DesignHeight = 0

	// DevicePixelRatio of the headless exporter
	DevicePixelRatio = 1.0
)

// Performance Governor
const (
	// GovernorThreshold is the mean FPS below which 3D is abandoned
	GovernorThreshold = 20.0

	// GovernorRecover is the hysteresis bound for a return to 3D
	// Reserved: automatic recovery is not performed
	GovernorRecover = 30.0

	// GovernorWindow is the wall-clock span of FPS samples averaged
	GovernorWindow = 2 * time.Second

	// GovernorWarmUp delays the first check after a scene starts
	GovernorWarmUp = 3 * time.Second
)

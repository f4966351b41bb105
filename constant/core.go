package constant

import "time"

// Simulation Loop Timing
const (
	// TickInterval is the delay between simulation ticks
	TickInterval = 100 * time.Millisecond

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// System priorities, lower runs first
const (
	PriorityMovement  = 10
	PriorityCollision = 20
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "ricochet.log"

	// MaxLogSize triggers rotation of the previous log on startup
	MaxLogSize = 10 * 1024 * 1024
)

package parameter

import "time"

// Simulation tuning constants. Values match the scenario scale the default
// systems are authored for; changing TimeStep changes every precomputed path.

const (
	// TrajectoryLen is the fixed precompute horizon per body, in time indices
	TrajectoryLen = 12000

	// TimeStep is the integration step in simulation seconds
	// Fixed and independent of wall-clock frame rate
	TimeStep = 0.005

	// DefaultGravitationalConst is used when a scenario does not set one
	DefaultGravitationalConst = 1.0

	// MinSeparationSq is the squared distance below which a body pair is
	// skipped during acceleration accumulation. Keeps coincident bodies from
	// injecting non-finite values into the trajectory buffers
	MinSeparationSq = 1e-12

	// TickInterval is the physics scheduler period (240 Hz)
	TickInterval = time.Second / 240

	// FrameInterval is the render loop period, decoupled from physics
	FrameInterval = time.Second / 60
)

const (
	// EventQueueSize is the command ring capacity, must be a power of 2
	EventQueueSize = 1024

	// EventBufferMask wraps ring indices without modulo
	EventBufferMask = EventQueueSize - 1
)

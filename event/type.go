package event

import "github.com/lixenwraith/orbitarium/vmath"

// Type identifies a command flowing through the queue. Commands originate in
// the front end and are consumed by the scheduler at the edit phase boundary,
// never concurrently with an integration pass.
type Type int

const (
	// === Playback commands ===

	// TypeTogglePlayback flips Paused <-> Playing
	// Payload: nil
	TypeTogglePlayback Type = iota

	// TypeStep requests a single Step-state tick (auto-returns to Paused)
	// Payload: nil
	TypeStep

	// TypeAdvanceOnce requests one manual cursor advance, legal in any state
	// Payload: nil
	TypeAdvanceOnce

	// === Body edits that invalidate precomputed trajectories ===

	// TypeSetMass replaces a body's mass
	// Payload: BodyScalar
	TypeSetMass

	// TypeSetPosition replaces a body's current position
	// Payload: BodyVec
	TypeSetPosition

	// TypeSetVelocity replaces a body's current velocity
	// Payload: BodyVec
	TypeSetVelocity

	// TypeSetGravity replaces the global gravitational constant
	// Payload: Scalar
	TypeSetGravity

	// TypeSpawnBody adds a body to the simulation
	// Payload: Spawn
	TypeSpawnBody

	// TypeRemoveBody removes a body and drops its trajectory
	// Payload: BodyIndex
	TypeRemoveBody

	// === Body edits with no trajectory effect ===

	// TypeSetName renames a body
	// Payload: BodyName
	TypeSetName

	// TypeToggleTrajectory flips a body's trajectory visibility
	// Payload: BodyIndex
	TypeToggleTrajectory
)

// Event is one queued command with the tick it was emitted on
type Event struct {
	Type    Type
	Payload any
	Tick    int64
}

// BodyIndex addresses a body by arena index
type BodyIndex struct {
	Index int
}

// BodyScalar carries a per-body scalar edit
type BodyScalar struct {
	Index int
	Value float64
}

// BodyVec carries a per-body vector edit
type BodyVec struct {
	Index int
	Value vmath.Vec2
}

// BodyName carries a rename
type BodyName struct {
	Index int
	Name  string
}

// Scalar carries a global scalar edit
type Scalar struct {
	Value float64
}

// Spawn carries a full new-body definition
type Spawn struct {
	Name   string
	Mass   float64
	Radius float64
	Color  string
	Pos    vmath.Vec2
	Vel    vmath.Vec2
}
